// internal/system/movement.go
package system

import (
	"go-survivors/pkg/utils"
)

// Collider is the world geometry movers test against.
type Collider interface {
	IsColliding(r utils.Rect) bool
}

// SlideMove moves box along dir by dist, one axis at a time. X is tried
// first; a blocked axis is dropped and the other one still moves. When one
// axis is blocked the free axis gets the whole distance, so a mover grazing
// a wall diagonally keeps its speed.
func SlideMove(world Collider, box utils.Rect, dir utils.Vec2, dist float64) (utils.Rect, bool) {
	step := dir.Mul(dist)
	if step.IsZero() {
		return box, false
	}

	out := box
	blockedX, blockedY := false, false

	if step.X != 0 {
		if next := out.Translate(utils.Vec2{X: step.X}); !world.IsColliding(next) {
			out = next
		} else {
			blockedX = true
		}
	}

	if step.Y != 0 {
		dy := step.Y
		if blockedX {
			dy = utils.Sign(step.Y) * dist
		}
		next := out.Translate(utils.Vec2{Y: dy})
		if world.IsColliding(next) && dy != step.Y {
			// Полная скорость упирается в стену, пробуем обычный шаг
			next = out.Translate(utils.Vec2{Y: step.Y})
		}
		if !world.IsColliding(next) {
			out = next
		} else {
			blockedY = true
		}
	}

	if blockedY && !blockedX && step.X != 0 {
		if full := box.Translate(utils.Vec2{X: utils.Sign(step.X) * dist}); !world.IsColliding(full) {
			out = full
		}
	}

	return out, out != box
}
