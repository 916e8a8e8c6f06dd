// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	game "go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/pkg/logger"
)

// MenuState: стартовый экран и экран окончания забега.
type MenuState struct {
	sm    *StateMachine
	start StartFunc
	face  font.Face
	last  *game.Stats
	err   error
}

// NewMenuState shows the title screen, or the summary of last when it is
// not nil.
func NewMenuState(sm *StateMachine, start StartFunc, face font.Face, last *game.Stats) *MenuState {
	return &MenuState{sm: sm, start: start, face: face, last: last}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	g, err := m.start()
	if err != nil {
		m.err = err
		logger.WithSystem("menu").WithError(err).Error("could not start a run")
		return
	}
	m.sm.SetState(NewGameState(m.sm, g, m.start, m.face))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	x, y := config.ScreenWidth/2-120, config.ScreenHeight/2-40

	title := "GO SURVIVORS"
	if m.last != nil {
		title = "YOU DIED"
	}
	text.Draw(screen, title, m.face, x, y, config.TextLightColor)

	if m.last != nil {
		t := int(m.last.Time)
		y += 24
		text.Draw(screen, fmt.Sprintf("survived %02d:%02d  level %d  kills %d", t/60, t%60, m.last.Level, m.last.Killed), m.face, x, y, config.TextLightColor)
	}
	y += 24
	text.Draw(screen, "press SPACE to start", m.face, x, y, config.TextLightColor)
	if m.err != nil {
		y += 24
		text.Draw(screen, m.err.Error(), m.face, x, y, config.EnemyColor)
	}
}

func (m *MenuState) Exit() {}
