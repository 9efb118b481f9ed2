package geom

import "fmt"

// Box is an axis-aligned rectangle anchored at its top-left corner.
//
// Box remembers the origin it had right before the most recent Translate.
// The history is a single slot: every Translate overwrites it.
// Width and height are never negative; a negative size passed to NewBox is
// clamped to zero so the box degrades to a line or point.
type Box struct {
	origin Vector2
	size   Vector2
	prev   Vector2
}

// NewBox creates a box at (x, y) with size (w, h)
func NewBox(x, y, w, h float64) Box {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Box{
		origin: Vector2{X: x, Y: y},
		size:   Vector2{X: w, Y: h},
		prev:   Vector2{X: x, Y: y},
	}
}

// Origin returns the top-left corner
func (b Box) Origin() Vector2 { return b.origin }

// Size returns (width, height)
func (b Box) Size() Vector2 { return b.size }

// Prev returns the origin recorded before the last Translate
func (b Box) Prev() Vector2 { return b.prev }

// X returns the left edge
func (b Box) X() float64 { return b.origin.X }

// Y returns the top edge
func (b Box) Y() float64 { return b.origin.Y }

// W returns the width
func (b Box) W() float64 { return b.size.X }

// H returns the height
func (b Box) H() float64 { return b.size.Y }

// Right returns the x-coordinate of the right edge
func (b Box) Right() float64 { return b.origin.X + b.size.X }

// Bottom returns the y-coordinate of the bottom edge
func (b Box) Bottom() float64 { return b.origin.Y + b.size.Y }

// Translate records the current origin as the previous one, then moves by (dx, dy).
// No bounds checking is done.
func (b *Box) Translate(dx, dy float64) {
	b.prev = b.origin
	b.origin.Translate(dx, dy)
}

// Move sets the origin without touching the history
func (b *Box) Move(x, y float64) {
	b.origin.Set(x, y)
}

// MoveX sets only the left edge
func (b *Box) MoveX(x float64) {
	b.origin.X = x
}

// MoveY sets only the top edge
func (b *Box) MoveY(y float64) {
	b.origin.Y = y
}

// Intersects reports whether the two boxes overlap.
// Edges are closed, so boxes that only share an edge intersect.
func (b Box) Intersects(o Box) bool {
	// No overlap if one box is entirely left, right, above, or below the other
	return !(o.X() > b.Right() || o.Y() > b.Bottom() || b.X() > o.Right() || b.Y() > o.Bottom())
}

// Contains reports whether o lies fully inside b (closed on both axes).
func (b Box) Contains(o Box) bool {
	return o.X() >= b.X() && o.Right() <= b.Right() &&
		o.Y() >= b.Y() && o.Bottom() <= b.Bottom()
}

func (b Box) String() string {
	return fmt.Sprintf("start:%s, size:%s", b.origin, b.size)
}
