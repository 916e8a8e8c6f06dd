package component

import "go-survivors/pkg/utils"

// Damageable is anything combat can hurt.
type Damageable interface {
	TakeDamage(amount float64) int
	IsAlive() bool
}

// Body is anything with a hitbox in world space.
type Body interface {
	Bounds() utils.Rect
	Center() utils.Vec2
}

// Poolable objects clear themselves before going back to their pool.
type Poolable interface {
	Reset()
}

var (
	_ Damageable = (*Player)(nil)
	_ Damageable = (*Enemy)(nil)
	_ Body       = (*Player)(nil)
	_ Body       = (*Enemy)(nil)
	_ Body       = (*Projectile)(nil)
	_ Body       = (*Orb)(nil)
	_ Poolable   = (*Enemy)(nil)
	_ Poolable   = (*Projectile)(nil)
	_ Poolable   = (*Orb)(nil)
)
