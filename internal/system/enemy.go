// internal/system/enemy.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/pkg/pool"
	"go-survivors/pkg/utils"
)

// Steering answers where the flow field wants an agent at p to go.
type Steering interface {
	DirectionAt(p utils.Vec2) (utils.Vec2, bool)
}

// EnemySystem steers every live enemy toward the player: flow field first,
// straight chase where the field has no answer, plus separation from the
// nearest neighbours.
type EnemySystem struct {
	reg   *entity.Registry
	world Collider
	flow  Steering
	cfg   config.EnemyConfig
}

func NewEnemySystem(cfg config.EnemyConfig, reg *entity.Registry, world Collider, flow Steering) *EnemySystem {
	return &EnemySystem{reg: reg, world: world, flow: flow, cfg: cfg}
}

func (s *EnemySystem) Update(dt float64, player *component.Player) {
	if player == nil {
		return
	}
	target := player.Center()
	active := s.reg.ActiveEnemies()

	for _, h := range active {
		e := s.reg.Enemy(h)
		if !e.Alive {
			continue
		}
		c := e.Center()

		dir, ok := s.flow.DirectionAt(c)
		if !ok {
			dir = target.Sub(c).Norm()
		}

		sep := s.separation(h, c, e.Hitbox.W, active)
		steer := dir.Add(sep.Mul(s.cfg.SeparationWeight)).Norm()
		if !steer.IsZero() {
			e.Hitbox, _ = SlideMove(s.world, e.Hitbox, steer, e.Speed*s.cfg.SpeedMultiplier*dt)
		}

		e.TickImmunity(dt)
	}
}

// separation sums pushes away from live neighbours closer than radius, each
// scaled by radius/distance. At most MaxNeighbors neighbours are sampled.
func (s *EnemySystem) separation(self pool.Handle, c utils.Vec2, radius float64, active []pool.Handle) utils.Vec2 {
	var sum utils.Vec2
	if radius <= 0 {
		return sum
	}
	sampled := 0
	for _, h := range active {
		if h == self {
			continue
		}
		if s.cfg.MaxNeighbors > 0 && sampled >= s.cfg.MaxNeighbors {
			break
		}
		o := s.reg.Enemy(h)
		if !o.Alive {
			continue
		}
		away := c.Sub(o.Center())
		d := away.Len()
		if d <= 0 || d >= radius {
			continue
		}
		sum = sum.Add(away.Mul(1 / d).Mul(radius / d))
		sampled++
	}
	return sum
}
