// Package world holds the scene the simulator runs over and the display
// toggles that change how it is drawn.
package world

import (
	"github.com/younwookim/sidescroller/internal/domain/entity"
	"github.com/younwookim/sidescroller/internal/domain/geom"
)

// Grid describes the tile layout the map was built from
type Grid struct {
	Rows     int
	Cols     int
	TileSize geom.Vector2
	Scale    float64
}

// Width returns the grid's width in world units
func (g Grid) Width() float64 {
	return float64(g.Cols) * g.TileSize.X * g.Scale
}

// Height returns the grid's height in world units
func (g Grid) Height() float64 {
	return float64(g.Rows) * g.TileSize.Y * g.Scale
}

// Scene owns the map bounds, the background and the ordered entity lists.
// The map bounds are copied from the background's hitbox on construction
// and never change afterwards.
type Scene struct {
	bounds     entity.Collider
	background entity.Entity
	statics    []entity.Entity
	dynamics   []entity.Entity
	grid       Grid
}

// NewScene creates a scene whose map bounds are the background's hitbox
func NewScene(background entity.Entity, grid Grid) *Scene {
	s := &Scene{background: background, grid: grid}

	var b geom.Box
	if background != nil && background.HasHitbox() {
		b = background.HitBox().Bounds()
	} else {
		b = geom.NewBox(0, 0, grid.Width(), grid.Height())
	}
	s.bounds = entity.NewHitBox(b.X(), b.Y(), b.W(), b.H())
	return s
}

// Contains reports whether c lies entirely inside the map bounds
func (s *Scene) Contains(c entity.Collider) bool {
	return s.bounds.ContainsBounds(c)
}

// Bounds returns the map bounds
func (s *Scene) Bounds() geom.Box {
	return s.bounds.Bounds()
}

func (s *Scene) Grid() Grid {
	return s.grid
}

func (s *Scene) Background() entity.Entity {
	return s.background
}

// AddStatic appends an obstacle or decoration. Must be called before the
// first tick.
func (s *Scene) AddStatic(e entity.Entity) {
	s.statics = append(s.statics, e)
}

// AddDynamic appends an actor
func (s *Scene) AddDynamic(e entity.Entity) {
	s.dynamics = append(s.dynamics, e)
}

func (s *Scene) Statics() []entity.Entity {
	return s.statics
}

func (s *Scene) Dynamics() []entity.Entity {
	return s.dynamics
}

// Obstacles returns the statics that can be collided with
func (s *Scene) Obstacles() []entity.Entity {
	out := make([]entity.Entity, 0, len(s.statics))
	for _, e := range s.statics {
		if e.HasHitbox() {
			out = append(out, e)
		}
	}
	return out
}
