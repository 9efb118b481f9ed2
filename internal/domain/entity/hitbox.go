package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/sidescroller/internal/domain/geom"
)

// ColorBounds is the default outline color of a hitbox
var ColorBounds = color.RGBA{255, 0, 0, 255}

// Collider is the collidable shape of an entity.
type Collider interface {
	Drawable

	// Bounds returns a copy of the whole bounding box
	Bounds() geom.Box
	Translate(dx, dy float64)
	// UndoTranslate rolls back the last Translate (single step)
	UndoTranslate()
	IntersectBounds(other Collider) bool
	ContainsBounds(other Collider) bool
	// ClearContacts forgets any per-tick collision bookkeeping
	ClearContacts()
}

// HitBox is the default collidable shape: a single box.
type HitBox struct {
	Sprite
	box geom.Box
}

// NewHitBox creates a hitbox at (x, y) with size (w, h)
func NewHitBox(x, y, w, h float64) *HitBox {
	hb := &HitBox{Sprite: newSprite()}
	hb.SetStroke(ColorBounds)
	hb.SetStrokeWidth(3)
	hb.SetBounds(x, y, w, h)
	return hb
}

// SetBounds replaces the box and resets its history
func (hb *HitBox) SetBounds(x, y, w, h float64) {
	hb.box = geom.NewBox(x, y, w, h)
}

func (hb *HitBox) Bounds() geom.Box {
	return hb.box
}

func (hb *HitBox) Translate(dx, dy float64) {
	hb.box.Translate(dx, dy)
}

// UndoTranslate moves the box back to where it was before the last Translate.
// Calling it again is a no-op because the history is not consumed.
func (hb *HitBox) UndoTranslate() {
	prev := hb.box.Prev()
	hb.box.Move(prev.X, prev.Y)
}

func (hb *HitBox) IntersectBounds(other Collider) bool {
	return hb.box.Intersects(other.Bounds())
}

func (hb *HitBox) ContainsBounds(other Collider) bool {
	return hb.box.Contains(other.Bounds())
}

func (hb *HitBox) ClearContacts() {}

// Draw strokes the outline of the box
func (hb *HitBox) Draw(dst *ebiten.Image) {
	vector.StrokeRect(dst,
		float32(hb.box.X()), float32(hb.box.Y()), float32(hb.box.W()), float32(hb.box.H()),
		float32(hb.StrokeWidth()), hb.Stroke(), false)
}

func (hb *HitBox) String() string {
	return hb.box.String()
}
