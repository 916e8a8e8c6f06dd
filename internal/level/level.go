// Package level is the world geometry the simulation collides against:
// static obstacles, the walkable bounds and the named spawn zones.
package level

import (
	"math"

	"go-survivors/pkg/flowfield"
	"go-survivors/pkg/utils"
)

// Category groups zones for spawning.
type Category string

const (
	CategoryRoom1    Category = "room1"
	CategoryRoom2    Category = "room2"
	CategoryCorridor Category = "corridor"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRoom1, CategoryRoom2, CategoryCorridor:
		return true
	}
	return false
}

// Zone is a named rectangle of the level.
type Zone struct {
	Name     string
	Category Category
	Bounds   utils.Rect
}

// Level holds the static geometry. It is built once and never changes while
// a run is in progress.
type Level struct {
	Width, Height float64
	TileSize      float64
	PlayerStart   utils.Vec2
	Obstacles     []utils.Rect
	Zones         []Zone

	byCategory map[Category][]Zone
}

// New indexes zones by category. tileSize must be positive.
func New(width, height, tileSize float64, start utils.Vec2, obstacles []utils.Rect, zones []Zone) *Level {
	l := &Level{
		Width:       width,
		Height:      height,
		TileSize:    tileSize,
		PlayerStart: start,
		Obstacles:   obstacles,
		Zones:       zones,
		byCategory:  make(map[Category][]Zone),
	}
	for _, z := range zones {
		l.byCategory[z.Category] = append(l.byCategory[z.Category], z)
	}
	return l
}

// Bounds is the whole level rectangle.
func (l *Level) Bounds() utils.Rect {
	return utils.Rect{W: l.Width, H: l.Height}
}

// IsColliding reports whether r leaves the level or overlaps an obstacle.
func (l *Level) IsColliding(r utils.Rect) bool {
	if !l.Bounds().Contains(r) {
		return true
	}
	for _, o := range l.Obstacles {
		if o.Overlaps(r) {
			return true
		}
	}
	return false
}

// ZonesIn returns the zones of one category. The slice is shared.
func (l *Level) ZonesIn(c Category) []Zone {
	return l.byCategory[c]
}

// ZoneCategoryAt returns the category of the zone r overlaps. Rooms take
// precedence over corridors when r straddles a doorway.
func (l *Level) ZoneCategoryAt(r utils.Rect) (Category, bool) {
	for _, c := range [...]Category{CategoryRoom1, CategoryRoom2, CategoryCorridor} {
		for _, z := range l.byCategory[c] {
			if z.Bounds.Overlaps(r) {
				return c, true
			}
		}
	}
	return "", false
}

// GridSize is the number of flow-field cells covering the level.
func (l *Level) GridSize() (cols, rows int) {
	return int(math.Ceil(l.Width / l.TileSize)), int(math.Ceil(l.Height / l.TileSize))
}

// CellAt maps a world point to its grid cell. Points outside the level map
// to out-of-range cells, which the flow field treats as walls.
func (l *Level) CellAt(p utils.Vec2) (x, y int) {
	return int(math.Floor(p.X / l.TileSize)), int(math.Floor(p.Y / l.TileSize))
}

// CellBounds is the world rectangle of a grid cell.
func (l *Level) CellBounds(x, y int) utils.Rect {
	return utils.Rect{
		X: float64(x) * l.TileSize,
		Y: float64(y) * l.TileSize,
		W: l.TileSize,
		H: l.TileSize,
	}
}

// NewFlowField returns a flow field sized to the level with every cell that
// touches an obstacle marked as a wall.
func (l *Level) NewFlowField() *flowfield.FlowField {
	cols, rows := l.GridSize()
	f := flowfield.New(cols, rows)
	l.Rasterize(f)
	return f
}

// Rasterize rewrites f's walls from the obstacle list.
func (l *Level) Rasterize(f *flowfield.FlowField) {
	f.ClearWalls()
	for _, o := range l.Obstacles {
		x0, y0 := l.CellAt(o.Min())
		x1 := int(math.Ceil((o.X+o.W)/l.TileSize)) - 1
		y1 := int(math.Ceil((o.Y+o.H)/l.TileSize)) - 1
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				f.SetWall(x, y)
			}
		}
	}
}
