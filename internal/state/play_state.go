// internal/state/play_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	game "go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/level"
	"go-survivors/internal/ui"
	"go-survivors/pkg/utils"
)

// StartFunc builds a fresh run.
type StartFunc func() (*game.Game, error)

// GameInterface is implemented by states that wrap a running game.
type GameInterface interface {
	GetGame() *game.Game
}

var upgradeKeys = [game.UpgradeChoices]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameState: состояние игры: ввод, шаг симуляции и отрисовка.
type GameState struct {
	sm    *StateMachine
	game  *game.Game
	start StartFunc
	face  font.Face

	health *ui.PlayerHealthIndicator
	level  *ui.PlayerLevelIndicator
}

func NewGameState(sm *StateMachine, g *game.Game, start StartFunc, face font.Face) *GameState {
	return &GameState{
		sm:     sm,
		game:   g,
		start:  start,
		face:   face,
		health: ui.NewPlayerHealthIndicator(30, 12, face),
		level:  ui.NewPlayerLevelIndicator(30, 30),
	}
}

func (s *GameState) GetGame() *game.Game { return s.game }

func (s *GameState) Enter() {}

func (s *GameState) Exit() {}

func (s *GameState) Update(deltaTime float64) {
	g := s.game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.TogglePause()
		s.sm.SetState(NewPauseState(s.sm, s, s.face))
		return
	}

	if g.AwaitingUpgrade() {
		for i, key := range upgradeKeys {
			if inpututil.IsKeyJustPressed(key) {
				g.ChooseUpgrade(i)
				break
			}
		}
		return
	}

	g.SetIntent(readIntent())
	g.Update(deltaTime)

	if g.IsOver() {
		stats := g.Stats()
		g.Close()
		s.sm.SetState(NewMenuState(s.sm, s.start, s.face, &stats))
	}
}

// readIntent maps WASD and the arrow keys to a movement intent.
func readIntent() component.MoveIntent {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return component.MoveIntent{
		Up:    pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: pressed(ebiten.KeyD, ebiten.KeyArrowRight),
	}
}

func fillRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (s *GameState) Draw(screen *ebiten.Image) {
	g := s.game
	screen.Fill(config.BackgroundColor)

	for _, z := range g.Level.Zones {
		clr := config.RoomColor
		if z.Category == level.CategoryCorridor {
			clr = config.CorridorColor
		}
		fillRect(screen, z.Bounds, clr)
	}
	for _, o := range g.Level.Obstacles {
		fillRect(screen, o, config.WallColor)
	}

	reg := g.Registry
	for _, h := range reg.ActiveOrbs() {
		o := reg.Orb(h)
		c := o.Center()
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(o.Hitbox.W/2), config.OrbColor, true)
	}
	for _, h := range reg.ActiveEnemies() {
		e := reg.Enemy(h)
		clr := color.Color(config.EnemyColor)
		if e.IsImmune() {
			clr = color.White
		}
		fillRect(screen, e.Hitbox, clr)
	}
	for _, h := range reg.ActiveProjectiles() {
		fillRect(screen, reg.Projectile(h).Hitbox, config.ProjectileColor)
	}

	p := g.Player
	// Мигание во время неуязвимости
	if !p.IsImmune() || int(p.ImmunityTimer*20)%2 == 0 {
		fillRect(screen, p.Hitbox, config.PlayerColor)
	}

	s.drawHUD(screen)
	if g.AwaitingUpgrade() {
		s.drawUpgradeMenu(screen)
	}
}

func (s *GameState) drawHUD(screen *ebiten.Image) {
	g := s.game
	p := g.Player

	s.health.Draw(screen, p.HP, p.MaxHP)
	s.level.Draw(screen, p.Level, p.XP, p.XPToNext)

	t := int(g.GetGameTime())
	hud := fmt.Sprintf("LV %d   KILLS %d   %02d:%02d", p.Level, p.MobKilled, t/60, t%60)
	if p.Weapon != nil {
		hud += fmt.Sprintf("   %s +%d", p.Weapon.Kind, p.Weapon.Level-1)
	}
	y := int(s.level.Y+s.level.GetHeight()) + 16
	text.Draw(screen, hud, s.face, int(s.level.X), y, config.TextLightColor)
}

func (s *GameState) drawUpgradeMenu(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 140}, false)
	x, y := config.ScreenWidth/2-80, config.ScreenHeight/2-30
	text.Draw(screen, "LEVEL UP", s.face, x, y, config.TextLightColor)
	for i, u := range s.game.UpgradeOffer() {
		y += 20
		text.Draw(screen, fmt.Sprintf("%d) %s", i+1, u), s.face, x, y, config.TextLightColor)
	}
}
