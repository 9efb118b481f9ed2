package entity

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Side names one edge of a DirectionalHitBox
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight

	sideCount
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideTop:
		return "TOP"
	case SideBottom:
		return "BOTTOM"
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Vertical reports whether the side blocks motion along Y
func (s Side) Vertical() bool {
	return s == SideTop || s == SideBottom
}

// SideSet is a set of sides, stored as a bitmask
type SideSet uint8

// Add flags a side
func (ss *SideSet) Add(s Side) {
	*ss |= 1 << uint(s)
}

// Has reports whether a side is flagged
func (ss SideSet) Has(s Side) bool {
	return ss&(1<<uint(s)) != 0
}

// Empty reports whether no side is flagged
func (ss SideSet) Empty() bool {
	return ss == 0
}

// Clear removes every side
func (ss *SideSet) Clear() {
	*ss = 0
}

// Sides lists the flagged sides in declaration order
func (ss SideSet) Sides() []Side {
	var out []Side
	for s := SideTop; s < sideCount; s++ {
		if ss.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (ss SideSet) String() string {
	if ss.Empty() {
		return "NONE"
	}
	names := make([]string, 0, sideCount)
	for _, s := range ss.Sides() {
		names = append(names, s.String())
	}
	return strings.Join(names, "|")
}

// sideInset keeps the edge strips away from the corners so a diagonal corner
// overlap is attributed to at most one side in the common case.
const sideInset = 4

// DirectionalHitBox is a hitbox that can tell which of its edges touched an
// obstacle. Besides the whole box it owns four 1-unit strips along its edges.
//
// The set of touched sides accumulates over successive IntersectBounds calls
// and is only cleared by a whole-box miss or by ClearContacts.
type DirectionalHitBox struct {
	HitBox
	sides [sideCount]*HitBox
	hits  SideSet
}

// NewDirectionalHitBox creates a directional hitbox at (x, y) with size (w, h)
func NewDirectionalHitBox(x, y, w, h float64) *DirectionalHitBox {
	d := &DirectionalHitBox{HitBox: HitBox{Sprite: newSprite()}}
	d.HitBox.SetStroke(ColorBounds)
	d.HitBox.SetStrokeWidth(3)
	d.SetBounds(x, y, w, h)
	return d
}

// SetBounds places the whole box and rebuilds the four edge strips around it
func (d *DirectionalHitBox) SetBounds(x, y, w, h float64) {
	d.HitBox.SetBounds(x, y, w, h)
	d.sides[SideTop] = NewHitBox(x+sideInset, y, w-2*sideInset, 1)
	d.sides[SideRight] = NewHitBox(x+w-1, y+sideInset, 1, h-2*sideInset)
	d.sides[SideBottom] = NewHitBox(x+sideInset, y+h-1, w-2*sideInset, 1)
	d.sides[SideLeft] = NewHitBox(x, y+sideInset, 1, h-2*sideInset)
}

// Side returns the edge strip for a side
func (d *DirectionalHitBox) Side(s Side) *HitBox {
	return d.sides[s]
}

// Hits returns the sides flagged since the last clear
func (d *DirectionalHitBox) Hits() SideSet {
	return d.hits
}

func (d *DirectionalHitBox) Translate(dx, dy float64) {
	d.HitBox.Translate(dx, dy)
	for _, hb := range d.sides {
		hb.Translate(dx, dy)
	}
}

// UndoTranslate rolls back the last move. With no flagged side both axes are
// restored. Otherwise only the axes blocked by the flagged sides are restored,
// so a floor undoes the fall but keeps the horizontal step.
func (d *DirectionalHitBox) UndoTranslate() {
	if d.hits.Empty() {
		d.HitBox.UndoTranslate()
		for _, hb := range d.sides {
			hb.UndoTranslate()
		}
		return
	}
	for _, s := range d.hits.Sides() {
		d.undoAxis(s)
	}
}

func (d *DirectionalHitBox) undoAxis(s Side) {
	prev := d.box.Prev()
	if s.Vertical() {
		dy := prev.Y - d.box.Y()
		d.box.MoveY(prev.Y)
		for _, hb := range d.sides {
			hb.box.MoveY(hb.box.Y() + dy)
		}
		return
	}
	dx := prev.X - d.box.X()
	d.box.MoveX(prev.X)
	for _, hb := range d.sides {
		hb.box.MoveX(hb.box.X() + dx)
	}
}

// IntersectBounds tests the whole box first. On a miss the flagged sides are
// cleared. On a hit every strip touching other is added to the flagged sides.
func (d *DirectionalHitBox) IntersectBounds(other Collider) bool {
	if !d.box.Intersects(other.Bounds()) {
		d.hits.Clear()
		return false
	}
	for s, hb := range d.sides {
		if hb.IntersectBounds(other) {
			d.hits.Add(Side(s))
		}
	}
	return true
}

// ClearContacts forgets the flagged sides
func (d *DirectionalHitBox) ClearContacts() {
	d.hits.Clear()
}

// SetStroke colors the flagged strips, or all four when none is flagged
func (d *DirectionalHitBox) SetStroke(c color.Color) {
	d.HitBox.SetStroke(c)
	if d.hits.Empty() {
		for _, hb := range d.sides {
			hb.SetStroke(c)
		}
		return
	}
	for _, s := range d.hits.Sides() {
		d.sides[s].SetStroke(c)
	}
}

// Draw outlines the four edge strips
func (d *DirectionalHitBox) Draw(dst *ebiten.Image) {
	for _, hb := range d.sides {
		hb.Draw(dst)
	}
}
