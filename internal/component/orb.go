package component

import "go-survivors/pkg/utils"

// Orb is a pooled experience pickup dropped by dead enemies.
type Orb struct {
	Hitbox  utils.Rect
	XPValue int
	Alive   bool
}

func (o *Orb) Init(center utils.Vec2, size float64, xp int) {
	o.Hitbox = utils.RectAround(center, size, size)
	o.XPValue = xp
	o.Alive = true
}

func (o *Orb) Reset() { *o = Orb{} }

func (o *Orb) Bounds() utils.Rect { return o.Hitbox }
func (o *Orb) Center() utils.Vec2 { return o.Hitbox.Center() }
