// internal/system/projectile.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряды летят сквозь стены и иммунных врагов.
type ProjectileSystem struct {
	reg  *entity.Registry
	hits int
}

func NewProjectileSystem(reg *entity.Registry) *ProjectileSystem {
	return &ProjectileSystem{reg: reg}
}

// Update moves every projectile, releases the expired ones and resolves
// hits. It returns how many projectiles struck an enemy this tick.
func (s *ProjectileSystem) Update(dt float64) int {
	hits := 0
	active := s.reg.ActiveProjectiles()
	// Release swaps the last handle into the freed slot, so walk backwards.
	for i := len(active) - 1; i >= 0; i-- {
		h := active[i]
		p := s.reg.Projectile(h)
		if !p.Update(dt) {
			s.reg.ReleaseProjectile(h)
			continue
		}
		if s.hitTarget(p) {
			s.reg.ReleaseProjectile(h)
			hits++
		}
	}
	s.hits += hits
	return hits
}

// hitTarget damages the first live, non-immune enemy p overlaps.
func (s *ProjectileSystem) hitTarget(p *component.Projectile) bool {
	for _, h := range s.reg.ActiveEnemies() {
		e := s.reg.Enemy(h)
		if !e.Alive || e.IsImmune() || !p.Hitbox.Overlaps(e.Hitbox) {
			continue
		}
		e.TakeDamage(p.Damage)
		return true
	}
	return false
}

func (s *ProjectileSystem) Hits() int { return s.hits }
