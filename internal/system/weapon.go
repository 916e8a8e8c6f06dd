// internal/system/weapon.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/pkg/logger"
	"go-survivors/pkg/pool"
	"go-survivors/pkg/utils"
)

// Arsenal owns one weapon per kind. Players borrow them; switching back to
// a kind keeps the levels it already earned.
type Arsenal struct {
	lib     *defs.Library
	weapons [defs.WeaponKindCount]*component.Weapon
}

func NewArsenal(lib *defs.Library) *Arsenal {
	return &Arsenal{lib: lib}
}

// Get returns the weapon of kind, building it on first use. It returns nil
// for kinds the library does not know.
func (a *Arsenal) Get(kind defs.WeaponKind) *component.Weapon {
	if kind >= defs.WeaponKindCount {
		return nil
	}
	if a.weapons[kind] == nil {
		stats := a.lib.Weapon(kind)
		if stats == nil {
			return nil
		}
		a.weapons[kind] = component.NewWeapon(kind, stats)
	}
	return a.weapons[kind]
}

// Equip hands the weapon of kind to p.
func (a *Arsenal) Equip(p *component.Player, kind defs.WeaponKind) bool {
	w := a.Get(kind)
	if w == nil {
		return false
	}
	p.Weapon = w
	return true
}

// ProjectileSpawner hands out pooled projectiles.
type ProjectileSpawner interface {
	ObtainProjectile(center, dir utils.Vec2, speed, damage, maxRange, size float64, src *component.Weapon) (pool.Handle, bool)
	Projectile(h pool.Handle) *component.Projectile
}

// WeaponSystem fires the player's weapon along the facing direction
// whenever its cooldown allows. Every kind goes through the same routine.
type WeaponSystem struct {
	projectiles ProjectileSpawner
	rng         Random
	shots       int
	log         *logrus.Entry
}

func NewWeaponSystem(projectiles ProjectileSpawner, rng Random) *WeaponSystem {
	return &WeaponSystem{
		projectiles: projectiles,
		rng:         rng,
		log:         logger.WithSystem("weapon"),
	}
}

// Update ticks the cooldown and fires once if ready. The cooldown restarts
// only when a projectile actually left the pool.
func (s *WeaponSystem) Update(dt float64, p *component.Player) bool {
	if p == nil || p.Weapon == nil {
		return false
	}
	w := p.Weapon
	w.CooldownTick(dt)
	if !p.Alive || !w.CanShoot() {
		return false
	}

	aim := p.AimDirection()
	origin := p.Center().Add(aim.Scale(p.Hitbox.Size().Mul(0.5)))
	base, crit := w.EffectiveDamage(s.rng.Float64())

	h, ok := s.projectiles.ObtainProjectile(origin, aim, w.ProjectileSpeed, p.DealDamage(base), w.Range, w.ProjectileSize, w)
	if !ok {
		return false
	}
	s.projectiles.Projectile(h).Crit = crit
	w.ResetCooldown()
	s.shots++
	return true
}

func (s *WeaponSystem) Shots() int { return s.shots }
