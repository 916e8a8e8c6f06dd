// internal/system/orb.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	gameutils "go-survivors/internal/utils"
	"go-survivors/pkg/logger"
)

// OrbSystem drops an experience orb for every killed enemy, pulls nearby
// orbs toward the player and collects the ones it touches.
type OrbSystem struct {
	reg             *entity.Registry
	eventDispatcher *event.Dispatcher
	cfg             config.OrbConfig
	dropped         int
	log             *logrus.Entry
}

func NewOrbSystem(cfg config.OrbConfig, reg *entity.Registry, eventDispatcher *event.Dispatcher) *OrbSystem {
	s := &OrbSystem{
		reg:             reg,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
		log:             logger.WithSystem("orb"),
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *OrbSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok || data.XPValue <= 0 {
		return
	}
	if _, ok := s.reg.ObtainOrb(data.Center, data.OrbSize, data.XPValue); !ok {
		s.log.WithField("xp", data.XPValue).Debug("orb dropped on the floor: pool exhausted")
		return
	}
	s.dropped++
}

// Update returns the experience collected this tick. Orbs inside the
// magnet radius accelerate toward the player the closer they get.
func (s *OrbSystem) Update(dt float64, p *component.Player) int {
	if p == nil || !p.Alive {
		return 0
	}
	collected := 0
	target := p.Center()
	active := s.reg.ActiveOrbs()
	for i := len(active) - 1; i >= 0; i-- {
		h := active[i]
		o := s.reg.Orb(h)

		if o.Hitbox.Overlaps(p.Hitbox) {
			collected += o.XPValue
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.OrbCollected,
				Data: event.OrbCollectedData{XPValue: o.XPValue},
			})
			s.reg.ReleaseOrb(h)
			continue
		}

		to := target.Sub(o.Center())
		d := to.Len()
		if s.cfg.MagnetRadius <= 0 || d > s.cfg.MagnetRadius || d == 0 {
			continue
		}
		closeness := 1 - gameutils.InverseLerp(0, s.cfg.MagnetRadius, d)
		step := gameutils.Lerp(s.cfg.Speed*0.5, s.cfg.Speed, closeness) * dt
		if step > d {
			step = d
		}
		o.Hitbox = o.Hitbox.Translate(to.Mul(step / d))
	}
	return collected
}

func (s *OrbSystem) Dropped() int { return s.dropped }
