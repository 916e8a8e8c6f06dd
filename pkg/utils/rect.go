// pkg/utils/rect.go
package utils

// Rect is an axis-aligned rectangle; X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a w×h rectangle centred on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Min() Vec2    { return Vec2{r.X, r.Y} }
func (r Rect) Max() Vec2    { return Vec2{r.X + r.W, r.Y + r.H} }
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }
func (r Rect) Size() Vec2   { return Vec2{r.W, r.H} }

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// MoveTo returns r with its top-left corner at p.
func (r Rect) MoveTo(p Vec2) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// ContainsPoint reports whether p is inside r (right and bottom edges excluded).
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
