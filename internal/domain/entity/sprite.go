package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sidescroller/internal/domain/geom"
)

// Drawable is the capability the renderer uses to paint an entity.
// The simulator only ever touches the stroke; fill and image content belong
// to whoever built the drawable.
type Drawable interface {
	Draw(dst *ebiten.Image)

	Fill() color.Color
	SetFill(c color.Color)
	Stroke() color.Color
	SetStroke(c color.Color)
	StrokeWidth() float64
	SetStrokeWidth(w float64)
	TileSize() geom.Vector2
	SetTileSize(size geom.Vector2)
	Coord() geom.Vector2
	SetCoord(coord geom.Vector2)
	Scale() float64
	SetScale(scale float64)
}

// Sprite holds the style state shared by every drawable.
// Concrete drawables embed it and provide Draw.
type Sprite struct {
	fill        color.Color
	stroke      color.Color
	strokeWidth float64
	tileSize    geom.Vector2
	coord       geom.Vector2
	scale       float64
}

func newSprite() Sprite {
	return Sprite{
		fill:        color.Transparent,
		stroke:      color.Transparent,
		strokeWidth: 1,
		scale:       1,
	}
}

// Draw is a no-op; embedding types override it
func (s *Sprite) Draw(*ebiten.Image) {}

func (s *Sprite) Fill() color.Color { return s.fill }
func (s *Sprite) SetFill(c color.Color) { s.fill = c }
func (s *Sprite) Stroke() color.Color { return s.stroke }
func (s *Sprite) SetStroke(c color.Color) { s.stroke = c }
func (s *Sprite) StrokeWidth() float64 { return s.strokeWidth }
func (s *Sprite) SetStrokeWidth(w float64) { s.strokeWidth = w }
func (s *Sprite) TileSize() geom.Vector2 { return s.tileSize }
func (s *Sprite) SetTileSize(size geom.Vector2) { s.tileSize = size }
func (s *Sprite) Coord() geom.Vector2 { return s.coord }
func (s *Sprite) SetCoord(coord geom.Vector2) { s.coord = coord }
func (s *Sprite) Scale() float64 { return s.scale }
func (s *Sprite) SetScale(scale float64) { s.scale = scale }
