// internal/system/combat.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
)

// CombatSystem resolves enemy contact damage and reaps dead enemies.
type CombatSystem struct {
	reg             *entity.Registry
	eventDispatcher *event.Dispatcher
	killed          int
}

func NewCombatSystem(reg *entity.Registry, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{reg: reg, eventDispatcher: eventDispatcher}
}

// ContactDamage lets every live enemy touching the player hit it once. The
// player's immunity window absorbs the rest, so in practice one hit lands
// per window. Returns the hp the player lost.
func (s *CombatSystem) ContactDamage(p *component.Player) int {
	if p == nil || !p.Alive {
		return 0
	}
	lost := 0
	for _, h := range s.reg.ActiveEnemies() {
		e := s.reg.Enemy(h)
		if !e.Alive || !e.Hitbox.Overlaps(p.Hitbox) {
			continue
		}
		lost += p.TakeDamage(e.DealDamage(e.ContactDamage))
		if !p.Alive {
			break
		}
	}
	return lost
}

// ReapDead announces every dead enemy with EnemyKilled and hands it back to
// the pool. Returns how many were reaped.
func (s *CombatSystem) ReapDead() int {
	reaped := 0
	active := s.reg.ActiveEnemies()
	for i := len(active) - 1; i >= 0; i-- {
		h := active[i]
		e := s.reg.Enemy(h)
		if e.Alive {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{
				Kind:    e.Kind,
				Center:  e.Center(),
				XPValue: e.XPValue,
				OrbSize: e.OrbSize,
			},
		})
		s.reg.ReleaseEnemy(h)
		reaped++
	}
	s.killed += reaped
	return reaped
}

func (s *CombatSystem) Killed() int { return s.killed }
