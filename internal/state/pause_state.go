// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	game "go-survivors/internal/app"
	"go-survivors/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyP) && !inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return
	}
	// При выходе из паузы снимаем паузу и в самой игре
	if gs, ok := s.previousState.(GameInterface); ok {
		if g := gs.GetGame(); g != nil && g.IsPaused() {
			g.TogglePause()
		}
	}
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	w := font.MeasureString(s.font, pauseText).Ceil()
	text.Draw(screen, pauseText, s.font, (config.ScreenWidth-w)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}

func (s *PauseState) GetGame() *game.Game {
	if gs, ok := s.previousState.(GameInterface); ok {
		return gs.GetGame()
	}
	return nil
}
