// Package flowfield computes a grid distance map toward a single target and
// derives per-cell steering directions from it.
//
// Distances are counted in 8-directional steps of uniform cost, so on an open
// grid they equal the Chebyshev distance to the target. A diagonal step is
// refused when both orthogonal cells it would cut between are blocked.
package flowfield

import (
	"math"

	"go-survivors/pkg/utils"
)

// Inf marks a cell that cannot reach the target.
const Inf = math.MaxInt32

type offset struct{ dx, dy int }

// Orthogonal offsets come first: Direction resolves ties in this order.
var neighbors = [8]offset{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// FlowField holds the static wall grid and the distances of the last
// CalculateFlow call.
type FlowField struct {
	width, height int
	walls         []bool
	dist          []int

	// queue is reused across recomputes; every cell enters it at most once.
	queue []int
}

// New creates an empty width×height field with every distance at Inf.
func New(width, height int) *FlowField {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	f := &FlowField{
		width:  width,
		height: height,
		walls:  make([]bool, size),
		dist:   make([]int, size),
		queue:  make([]int, 0, size),
	}
	f.resetDistances()
	return f
}

func (f *FlowField) Width() int  { return f.width }
func (f *FlowField) Height() int { return f.height }

func (f *FlowField) inRange(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// SetWall marks a cell as impassable. Out-of-range cells are ignored.
func (f *FlowField) SetWall(x, y int) {
	if !f.inRange(x, y) {
		return
	}
	f.walls[y*f.width+x] = true
}

// ClearWalls removes every wall. Distances are left untouched until the
// next CalculateFlow.
func (f *FlowField) ClearWalls() {
	for i := range f.walls {
		f.walls[i] = false
	}
}

// IsWall reports whether a cell blocks movement. Out-of-range cells count
// as walls.
func (f *FlowField) IsWall(x, y int) bool {
	if !f.inRange(x, y) {
		return true
	}
	return f.walls[y*f.width+x]
}

func (f *FlowField) resetDistances() {
	for i := range f.dist {
		f.dist[i] = Inf
	}
}

// cornerBlocked reports whether stepping from (x, y) by o squeezes between
// two blocked orthogonal cells.
func (f *FlowField) cornerBlocked(x, y int, o offset) bool {
	if o.dx == 0 || o.dy == 0 {
		return false
	}
	return f.IsWall(x+o.dx, y) && f.IsWall(x, y+o.dy)
}

// CalculateFlow recomputes every distance from scratch by breadth-first
// search from the target. A target that is out of range or inside a wall
// leaves the whole field at Inf.
func (f *FlowField) CalculateFlow(targetX, targetY int) {
	f.resetDistances()
	if f.IsWall(targetX, targetY) {
		return
	}

	w := f.width
	start := targetY*w + targetX
	f.dist[start] = 0
	f.queue = append(f.queue[:0], start)

	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		x, y := idx%w, idx/w
		next := f.dist[idx] + 1

		for _, o := range neighbors {
			nx, ny := x+o.dx, y+o.dy
			if f.IsWall(nx, ny) || f.cornerBlocked(x, y, o) {
				continue
			}
			nIdx := ny*w + nx
			if f.dist[nIdx] != Inf {
				continue
			}
			f.dist[nIdx] = next
			f.queue = append(f.queue, nIdx)
		}
	}
}

// Distance returns the step count from (x, y) to the target, or Inf for
// unreachable or out-of-range cells.
func (f *FlowField) Distance(x, y int) int {
	if !f.inRange(x, y) {
		return Inf
	}
	return f.dist[y*f.width+x]
}

// Direction returns the unit vector toward the neighbour with the strictly
// smallest distance. ok is false for invalid or unreachable cells, for the
// target cell itself and when no neighbour improves on the current cell.
func (f *FlowField) Direction(x, y int) (dir utils.Vec2, ok bool) {
	best := f.Distance(x, y)
	if best == Inf || best == 0 {
		return utils.Vec2{}, false
	}

	var pick offset
	for _, o := range neighbors {
		if f.cornerBlocked(x, y, o) {
			continue
		}
		d := f.Distance(x+o.dx, y+o.dy)
		if d < best {
			best = d
			pick = o
			ok = true
		}
	}
	if !ok {
		return utils.Vec2{}, false
	}
	return utils.Vec2{X: float64(pick.dx), Y: float64(pick.dy)}.Norm(), true
}
