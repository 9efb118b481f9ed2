package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/sidescroller/internal/domain/geom"
)

// RectSprite fills a rectangle at its coord, used for land, platforms and
// decorations
type RectSprite struct {
	Sprite
	size geom.Vector2
}

// NewRectSprite creates a filled rectangle drawable
func NewRectSprite(x, y, w, h float64, fill color.Color) *RectSprite {
	s := &RectSprite{Sprite: newSprite(), size: geom.Vec(w, h)}
	s.SetCoord(geom.Vec(x, y))
	s.SetFill(fill)
	return s
}

// Size returns the drawn size
func (s *RectSprite) Size() geom.Vector2 {
	return s.size
}

func (s *RectSprite) Draw(dst *ebiten.Image) {
	c := s.Coord()
	vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(s.size.X), float32(s.size.Y), s.Fill(), false)
	if _, _, _, a := s.Stroke().RGBA(); a > 0 {
		vector.StrokeRect(dst, float32(c.X), float32(c.Y), float32(s.size.X), float32(s.size.Y),
			float32(s.StrokeWidth()), s.Stroke(), false)
	}
}

// BackgroundSprite paints one color per grid cell
type BackgroundSprite struct {
	Sprite
	cells [][]color.Color // [row][col]
}

// NewBackgroundSprite creates a background of rows x cols cells, each
// tileSize*scale wide, colored by pick(row, col)
func NewBackgroundSprite(rows, cols int, tileSize geom.Vector2, scale float64, pick func(row, col int) color.Color) *BackgroundSprite {
	s := &BackgroundSprite{Sprite: newSprite()}
	s.SetTileSize(tileSize)
	s.SetScale(scale)
	s.cells = make([][]color.Color, rows)
	for row := range s.cells {
		s.cells[row] = make([]color.Color, cols)
		for col := range s.cells[row] {
			s.cells[row][col] = pick(row, col)
		}
	}
	return s
}

// Cell returns the color of a cell
func (s *BackgroundSprite) Cell(row, col int) color.Color {
	return s.cells[row][col]
}

func (s *BackgroundSprite) Draw(dst *ebiten.Image) {
	w := float32(s.TileSize().X * s.Scale())
	h := float32(s.TileSize().Y * s.Scale())
	for row, cols := range s.cells {
		for col, c := range cols {
			vector.DrawFilledRect(dst, float32(col)*w, float32(row)*h, w, h, c, false)
		}
	}
}

// GridSprite draws the tile grid lines
type GridSprite struct {
	Sprite
	rows, cols    int
	width, height float64
}

// NewGridSprite creates grid lines for rows x cols tiles covering width x height
func NewGridSprite(rows, cols int, width, height float64) *GridSprite {
	return &GridSprite{Sprite: newSprite(), rows: rows, cols: cols, width: width, height: height}
}

func (s *GridSprite) Draw(dst *ebiten.Image) {
	stepX := s.TileSize().X * s.Scale()
	stepY := s.TileSize().Y * s.Scale()
	sw := float32(s.StrokeWidth())
	for i := 0; i < s.rows; i++ {
		y := float32(float64(i) * stepY)
		vector.StrokeLine(dst, 0, y, float32(s.width), y, sw, s.Stroke(), false)
	}
	for i := 0; i < s.cols; i++ {
		x := float32(float64(i) * stepX)
		vector.StrokeLine(dst, x, 0, x, float32(s.height), sw, s.Stroke(), false)
	}
}

// TextSprite prints a line of debug text at its coord
type TextSprite struct {
	Sprite
	text string
}

// NewTextSprite creates a text drawable at (x, y)
func NewTextSprite(x, y float64) *TextSprite {
	s := &TextSprite{Sprite: newSprite()}
	s.SetCoord(geom.Vec(x, y))
	return s
}

// SetText replaces the printed text
func (s *TextSprite) SetText(text string) {
	s.text = text
}

// Text returns the printed text
func (s *TextSprite) Text() string {
	return s.text
}

func (s *TextSprite) Draw(dst *ebiten.Image) {
	c := s.Coord()
	ebitenutil.DebugPrintAt(dst, s.text, int(c.X), int(c.Y))
}
