// internal/entity/registry.go
package entity

import (
	"github.com/sirupsen/logrus"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/pkg/logger"
	"go-survivors/pkg/pool"
	"go-survivors/pkg/utils"
)

type (
	EnemyPool      = pool.Pool[component.Enemy, *component.Enemy]
	ProjectilePool = pool.Pool[component.Projectile, *component.Projectile]
	OrbPool        = pool.Pool[component.Orb, *component.Orb]
)

// Registry owns every pooled entity of a run. Systems borrow pointers from
// it for the duration of a tick and hand entities back through the Release
// methods; nothing else keeps them.
type Registry struct {
	lib            *defs.Library
	enemyImmunity  float64
	projectileBase float64

	Enemies     *EnemyPool
	Projectiles *ProjectilePool
	Orbs        *OrbPool

	// footprints[k] is the hitbox size of kind k, learned on its first Init.
	footprints [defs.EnemyKindCount]utils.Vec2
	known      [defs.EnemyKindCount]bool

	log *logrus.Entry
}

// NewRegistry sizes the pools from cfg. No entity is created until the
// first Obtain.
func NewRegistry(cfg config.Config, lib *defs.Library) *Registry {
	r := &Registry{
		lib:            lib,
		enemyImmunity:  cfg.Enemy.ImmunityDuration,
		projectileBase: cfg.Projectile.BaseSize,
		log:            logger.WithSystem("registry"),
	}
	r.Enemies = pool.New[component.Enemy](cfg.Pools.MaxEnemies, func(*component.Enemy) {
		r.log.Debug("enemy slot created")
	})
	r.Projectiles = pool.New[component.Projectile](cfg.Pools.MaxProjectiles, nil)
	r.Orbs = pool.New[component.Orb](cfg.Pools.MaxOrbs, nil)
	return r
}

// ObtainEnemy brings an enemy of the given kind into play with its top-left
// corner at pos. ok is false when the pool is exhausted or kind is unknown.
func (r *Registry) ObtainEnemy(kind defs.EnemyKind, pos utils.Vec2) (pool.Handle, *component.Enemy, bool) {
	stats := r.lib.Enemy(kind)
	if stats == nil {
		return pool.NoHandle, nil, false
	}
	h, ok := r.Enemies.Obtain()
	if !ok {
		r.log.WithField("kind", kind).Debug("enemy pool exhausted")
		return pool.NoHandle, nil, false
	}
	e := r.Enemies.Get(h)
	e.Init(kind, stats, pos, r.enemyImmunity)
	if !r.known[kind] {
		r.footprints[kind] = e.Hitbox.Size()
		r.known[kind] = true
	}
	return h, e, true
}

// ReleaseEnemy returns an enemy to the pool. Releasing twice is harmless.
func (r *Registry) ReleaseEnemy(h pool.Handle) bool { return r.Enemies.Release(h) }

// Enemy returns the enemy behind h.
func (r *Registry) Enemy(h pool.Handle) *component.Enemy { return r.Enemies.Get(h) }

// ActiveEnemies lists the enemies in play, dead ones included until reaped.
func (r *Registry) ActiveEnemies() []pool.Handle { return r.Enemies.Active() }

// Footprint returns the hitbox size of kind once an enemy of that kind has
// been initialised at least once.
func (r *Registry) Footprint(kind defs.EnemyKind) (utils.Vec2, bool) {
	if kind >= defs.EnemyKindCount || !r.known[kind] {
		return utils.Vec2{}, false
	}
	return r.footprints[kind], true
}

// ObtainProjectile launches a projectile whose hitbox is the base size
// scaled by size.
func (r *Registry) ObtainProjectile(center, dir utils.Vec2, speed, damage, maxRange, size float64, src *component.Weapon) (pool.Handle, bool) {
	h, ok := r.Projectiles.Obtain()
	if !ok {
		r.log.Debug("projectile pool exhausted")
		return pool.NoHandle, false
	}
	r.Projectiles.Get(h).Init(center, dir, speed, damage, maxRange, r.projectileBase*size, src)
	return h, true
}

func (r *Registry) ReleaseProjectile(h pool.Handle) bool { return r.Projectiles.Release(h) }

func (r *Registry) Projectile(h pool.Handle) *component.Projectile { return r.Projectiles.Get(h) }

func (r *Registry) ActiveProjectiles() []pool.Handle { return r.Projectiles.Active() }

// ObtainOrb drops an experience orb centred on center.
func (r *Registry) ObtainOrb(center utils.Vec2, size float64, xp int) (pool.Handle, bool) {
	h, ok := r.Orbs.Obtain()
	if !ok {
		r.log.Debug("orb pool exhausted")
		return pool.NoHandle, false
	}
	r.Orbs.Get(h).Init(center, size, xp)
	return h, true
}

func (r *Registry) ReleaseOrb(h pool.Handle) bool { return r.Orbs.Release(h) }

func (r *Registry) Orb(h pool.Handle) *component.Orb { return r.Orbs.Get(h) }

func (r *Registry) ActiveOrbs() []pool.Handle { return r.Orbs.Active() }

// DisposeAll tears every pool down: active entities go back through
// Release first, then every created slot is dropped.
func (r *Registry) DisposeAll() {
	var enemies, projectiles, orbs int
	r.Enemies.DisposeAll(func(*component.Enemy) { enemies++ })
	r.Projectiles.DisposeAll(func(*component.Projectile) { projectiles++ })
	r.Orbs.DisposeAll(func(*component.Orb) { orbs++ })
	r.known = [defs.EnemyKindCount]bool{}

	r.log.WithFields(logrus.Fields{
		"enemies":     enemies,
		"projectiles": projectiles,
		"orbs":        orbs,
	}).Debug("pools disposed")
}
