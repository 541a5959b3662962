package math

// Rect is an axis-aligned screen rectangle. X/Y is the origin corner; for GL
// viewports that is the bottom-left corner of the window.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Aspect returns width/height, or 1 for a degenerate rectangle.
func (r Rect) Aspect() float32 {
	if r.H <= 0 {
		return 1
	}
	return r.W / r.H
}
