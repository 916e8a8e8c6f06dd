// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/level"
	"go-survivors/internal/system"
	"go-survivors/internal/utils"
	"go-survivors/pkg/logger"
)

// UpgradeChoices is how many upgrades a level-up offers.
const UpgradeChoices = 3

// Game holds the main game state and owns every collaborator of a run.
type Game struct {
	SessionID uuid.UUID
	Cfg       config.Config
	Lib       *defs.Library
	Level     *level.Level
	Registry  *entity.Registry
	Player    *component.Player
	Arsenal   *system.Arsenal
	Rng       *utils.PRNGService

	EventDispatcher  *event.Dispatcher
	PlayerSystem     *system.PlayerSystem
	FlowSystem       *system.FlowSystem
	SpawnManager     *system.SpawnManager
	EnemySystem      *system.EnemySystem
	CombatSystem     *system.CombatSystem
	WeaponSystem     *system.WeaponSystem
	ProjectileSystem *system.ProjectileSystem
	OrbSystem        *system.OrbSystem

	// Game state
	gameTime        float64
	isPaused        bool
	isOver          bool
	closed          bool
	pendingUpgrades int
	offer           []component.Upgrade

	log *logrus.Entry
}

// NewGame wires a run on lvl. The player starts at the level's start point
// with the configured weapon; spawning opens after the grace period.
func NewGame(cfg config.Config, lib *defs.Library, lvl *level.Level) (*Game, error) {
	if lvl == nil {
		return nil, errors.New("level cannot be nil")
	}
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	startWeapon, ok := defs.ParseWeaponKind(cfg.Player.StartWeapon)
	if !ok {
		return nil, fmt.Errorf("unknown start weapon %q", cfg.Player.StartWeapon)
	}

	g := &Game{
		SessionID:       uuid.New(),
		Cfg:             cfg,
		Lib:             lib,
		Level:           lvl,
		Registry:        entity.NewRegistry(cfg, lib),
		Player:          component.NewPlayer(cfg.Player, lvl.PlayerStart),
		Arsenal:         system.NewArsenal(lib),
		Rng:             utils.NewPRNGService(cfg.Seed),
		EventDispatcher: event.NewDispatcher(),
		offer:           make([]component.Upgrade, 0, UpgradeChoices),
	}
	g.log = logger.Get().WithFields(logrus.Fields{
		"system":  "game",
		"session": g.SessionID.String(),
	})
	if lvl.IsColliding(g.Player.Bounds()) {
		return nil, fmt.Errorf("player start %v collides with the level", lvl.PlayerStart)
	}
	g.Arsenal.Equip(g.Player, startWeapon)

	// Порядок подписки важен: игрок получает опыт раньше, чем игра
	// узнаёт о новом уровне.
	g.PlayerSystem = system.NewPlayerSystem(g.Player, lvl, g.EventDispatcher)
	g.FlowSystem = system.NewFlowSystem(cfg.Flow, lvl)
	g.SpawnManager = system.NewSpawnManager(cfg.Spawn, lib, lvl, g.Registry, g.Rng)
	g.EnemySystem = system.NewEnemySystem(cfg.Enemy, g.Registry, lvl, g.FlowSystem)
	g.CombatSystem = system.NewCombatSystem(g.Registry, g.EventDispatcher)
	g.WeaponSystem = system.NewWeaponSystem(g.Registry, g.Rng)
	g.ProjectileSystem = system.NewProjectileSystem(g.Registry)
	g.OrbSystem = system.NewOrbSystem(cfg.Orb, g.Registry, g.EventDispatcher)

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.PlayerLevelUp, listener)
	g.EventDispatcher.Subscribe(event.PlayerDied, listener)

	g.log.WithFields(logrus.Fields{
		"seed":   g.Rng.Seed(),
		"weapon": startWeapon.String(),
	}).Info("session started")
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerLevelUp:
		if data, ok := e.Data.(event.LevelUpData); ok {
			l.game.queueUpgrades(data.Gained)
		}
	case event.PlayerDied:
		l.game.isOver = true
	}
}

// SetIntent passes the host's movement input to the player.
func (g *Game) SetIntent(m component.MoveIntent) {
	g.PlayerSystem.SetIntent(m)
}

// Update runs one simulation tick. Nothing moves while the game is paused,
// over, closed or waiting for an upgrade pick.
func (g *Game) Update(deltaTime float64) {
	if g.closed || g.isPaused || g.isOver || g.AwaitingUpgrade() || deltaTime <= 0 {
		return
	}
	dt := deltaTime
	g.gameTime += dt

	if !g.SpawnManager.Unlocked() && g.gameTime >= g.Cfg.Spawn.GraceSeconds {
		g.SpawnManager.Unlock()
		g.log.Debug("spawning unlocked")
	}

	g.PlayerSystem.Update(dt)
	// Поле потока пересчитывается до того, как враги по нему пойдут.
	g.FlowSystem.Update(dt, g.Player.Center())
	g.SpawnManager.Update(dt, g.Player)
	g.EnemySystem.Update(dt, g.Player)
	g.CombatSystem.ContactDamage(g.Player)
	g.WeaponSystem.Update(dt, g.Player)
	g.ProjectileSystem.Update(dt)
	g.CombatSystem.ReapDead()
	g.OrbSystem.Update(dt, g.Player)
	g.PlayerSystem.CheckDeath()
}

func (g *Game) queueUpgrades(n int) {
	if n <= 0 {
		return
	}
	g.pendingUpgrades += n
	if len(g.offer) == 0 {
		g.rollOffer()
	}
}

// rollOffer picks distinct upgrades for the next choice.
func (g *Game) rollOffer() {
	var pool [component.UpgradeCount]component.Upgrade
	for i := range pool {
		pool[i] = component.Upgrade(i)
	}
	remaining := pool[:]
	g.offer = g.offer[:0]
	for len(g.offer) < UpgradeChoices && len(remaining) > 0 {
		i := g.Rng.Intn(len(remaining))
		g.offer = append(g.offer, remaining[i])
		remaining[i] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
}

// AwaitingUpgrade reports whether a level-up choice is pending.
func (g *Game) AwaitingUpgrade() bool {
	return g.pendingUpgrades > 0 && !g.isOver
}

// UpgradeOffer lists the upgrades on offer. The slice is reused.
func (g *Game) UpgradeOffer() []component.Upgrade {
	if !g.AwaitingUpgrade() {
		return nil
	}
	return g.offer
}

// ChooseUpgrade applies the i-th offered upgrade. Invalid picks are
// ignored.
func (g *Game) ChooseUpgrade(i int) bool {
	if !g.AwaitingUpgrade() || i < 0 || i >= len(g.offer) {
		return false
	}
	u := g.offer[i]
	g.Player.ApplyUpgrade(u)
	g.pendingUpgrades--
	g.log.WithFields(logrus.Fields{
		"upgrade": u.String(),
		"pending": g.pendingUpgrades,
	}).Info("upgrade chosen")

	g.offer = g.offer[:0]
	if g.pendingUpgrades > 0 {
		g.rollOffer()
	}
	return true
}

// TogglePause pauses or resumes the run.
func (g *Game) TogglePause() {
	if g.isOver {
		return
	}
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool       { return g.isPaused }
func (g *Game) IsOver() bool         { return g.isOver }
func (g *Game) GetGameTime() float64 { return g.gameTime }

// Close releases every pooled entity. The game cannot be updated
// afterwards; calling Close twice is harmless.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	stats := g.Stats()
	g.Registry.DisposeAll()
	g.log.WithFields(logrus.Fields{
		"time":   stats.Time,
		"level":  stats.Level,
		"killed": stats.Killed,
	}).Info("session closed")
}

// Stats is a summary of the run so far.
type Stats struct {
	Time        float64
	Level       int
	XP          int
	HP, MaxHP   int
	Killed      int
	Spawned     int
	Shots       int
	Hits        int
	Enemies     int
	Projectiles int
	Orbs        int
}

func (g *Game) Stats() Stats {
	return Stats{
		Time:        g.gameTime,
		Level:       g.Player.Level,
		XP:          g.Player.XP,
		HP:          g.Player.HP,
		MaxHP:       g.Player.MaxHP,
		Killed:      g.Player.MobKilled,
		Spawned:     g.SpawnManager.Spawned(),
		Shots:       g.WeaponSystem.Shots(),
		Hits:        g.ProjectileSystem.Hits(),
		Enemies:     g.Registry.Enemies.ActiveCount(),
		Projectiles: g.Registry.Projectiles.ActiveCount(),
		Orbs:        g.Registry.Orbs.ActiveCount(),
	}
}
