// internal/system/player_system.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-survivors/internal/component"
	"go-survivors/internal/event"
	"go-survivors/pkg/logger"
)

// PlayerSystem отвечает за логику, связанную с игроком: движение по
// намерению ввода, регенерацию, опыт и смерть.
type PlayerSystem struct {
	player          *component.Player
	world           Collider
	eventDispatcher *event.Dispatcher

	intent    component.MoveIntent
	announced bool

	log *logrus.Entry
}

func NewPlayerSystem(player *component.Player, world Collider, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{
		player:          player,
		world:           world,
		eventDispatcher: eventDispatcher,
		log:             logger.WithSystem("player"),
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.OrbCollected, s)
	return s
}

// SetIntent records the movement wanted for the next Update.
func (s *PlayerSystem) SetIntent(m component.MoveIntent) { s.intent = m }

// Update moves the player, ticks regeneration and the immunity window.
func (s *PlayerSystem) Update(dt float64) {
	p := s.player
	if !p.Alive {
		return
	}
	dir := s.intent.Vector()
	p.Facing = dir
	if !dir.IsZero() {
		p.Hitbox, _ = SlideMove(s.world, p.Hitbox, dir, p.Speed*dt)
	}
	p.TickRegen(dt)
	p.TickImmunity(dt)
}

// CheckDeath dispatches PlayerDied the first time it sees the player dead.
func (s *PlayerSystem) CheckDeath() bool {
	if s.player.Alive || s.announced {
		return false
	}
	s.announced = true
	s.log.WithFields(logrus.Fields{
		"level":  s.player.Level,
		"killed": s.player.MobKilled,
	}).Info("player died")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	return true
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.player.MobKilled++
	case event.OrbCollected:
		data, ok := e.Data.(event.OrbCollectedData)
		if !ok {
			return
		}
		gained := s.player.AddXP(data.XPValue)
		if gained == 0 {
			return
		}
		s.log.WithFields(logrus.Fields{
			"level":  s.player.Level,
			"gained": gained,
		}).Info("level up")
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerLevelUp,
			Data: event.LevelUpData{Level: s.player.Level, Gained: gained},
		})
	}
}
