package entity

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the exclusive right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle.
// Both max edges are exclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Intersects reports whether the two rectangles share any area
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
