// internal/component/enemy.go
package component

import (
	"go-survivors/internal/defs"
	"go-survivors/pkg/utils"
)

// Enemy is a pooled monster. Its kind only selects a stat block; every kind
// shares the same steering and combat.
//
// Inactive (in the pool) → Active (Alive) → Dead (Alive false, still in the
// active set) → Inactive again once the combat system releases it.
type Enemy struct {
	Living

	Kind          defs.EnemyKind
	Hitbox        utils.Rect
	Speed         float64
	ContactDamage float64
	XPValue       int
	OrbSize       float64
}

// Init brings a pooled enemy into play with its top-left corner at pos.
func (e *Enemy) Init(kind defs.EnemyKind, stats *defs.EnemyStats, pos utils.Vec2, immunity float64) {
	e.Kind = kind
	e.Hitbox = utils.Rect{X: pos.X, Y: pos.Y, W: stats.Width, H: stats.Height}
	e.Speed = stats.Speed
	e.ContactDamage = stats.ContactDamage
	e.XPValue = stats.XPValue
	e.OrbSize = stats.OrbSize
	e.InitLiving(stats.HP, stats.Armor, stats.Force, immunity)
}

// Reset zeroes every field so nothing leaks into the next Init.
func (e *Enemy) Reset() { *e = Enemy{} }

func (e *Enemy) Bounds() utils.Rect { return e.Hitbox }
func (e *Enemy) Center() utils.Vec2 { return e.Hitbox.Center() }
