// internal/component/projectile.go
package component

import "go-survivors/pkg/utils"

// Projectile is a pooled shot travelling in a straight line. It expires
// once it has covered MaxRange; there is no lifetime timer.
type Projectile struct {
	Hitbox   utils.Rect
	Dir      utils.Vec2
	Velocity utils.Vec2
	Speed    float64
	Damage   float64
	Crit     bool

	MaxRange float64
	Traveled float64
	Alive    bool

	// Source is the weapon that fired the shot.
	Source *Weapon
}

// Init launches the projectile from center. A zero dir is treated as
// straight down.
func (p *Projectile) Init(center, dir utils.Vec2, speed, damage, maxRange, size float64, source *Weapon) {
	p.Dir = dir.NormOr(utils.Down)
	p.Speed = speed
	p.Velocity = p.Dir.Mul(speed)
	p.Damage = damage
	p.MaxRange = maxRange
	p.Traveled = 0
	p.Hitbox = utils.RectAround(center, size, size)
	p.Source = source
	p.Alive = true
}

// Update advances the shot and reports whether it is still flying.
func (p *Projectile) Update(dt float64) bool {
	if !p.Alive {
		return false
	}
	p.Hitbox = p.Hitbox.Translate(p.Velocity.Mul(dt))
	p.Traveled += p.Speed * dt
	if p.Traveled >= p.MaxRange {
		p.Alive = false
	}
	return p.Alive
}

func (p *Projectile) Reset() { *p = Projectile{} }

func (p *Projectile) Bounds() utils.Rect { return p.Hitbox }
func (p *Projectile) Center() utils.Vec2 { return p.Hitbox.Center() }
