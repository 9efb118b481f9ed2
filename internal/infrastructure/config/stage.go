package config

import (
	"errors"
	"fmt"
)

// ErrInvalidStage is returned for stage files that cannot form a map
var ErrInvalidStage = errors.New("invalid stage")

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Grid        GridConfig         `json:"grid"`
	Background  BackgroundConfig   `json:"background"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	LandMasses  []LandMassConfig   `json:"landMasses"`
	Platforms   []PlatformConfig   `json:"platforms"`
	Decorations []DecorationConfig `json:"decorations"`
}

type GridConfig struct {
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	TileSize int     `json:"tileSize"`
	Scale    float64 `json:"scale"`
}

// Width returns the map width in world units
func (g GridConfig) Width() float64 {
	return float64(g.Cols*g.TileSize) * g.Scale
}

// Height returns the map height in world units
func (g GridConfig) Height() float64 {
	return float64(g.Rows*g.TileSize) * g.Scale
}

// Unit returns the side of one scaled tile
func (g GridConfig) Unit() float64 {
	return float64(g.TileSize) * g.Scale
}

// BackgroundConfig colors the background cells: the top SkyRows rows pick
// randomly among Sky, the rest use Ground
type BackgroundConfig struct {
	Sky     []string `json:"sky"`
	SkyRows int      `json:"skyRows"`
	Ground  string   `json:"ground"`
}

// PositionConfig is a point in world units
type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LandMassConfig is a solid block of tiles
type LandMassConfig struct {
	Col   int    `json:"col"`
	Row   int    `json:"row"`
	Cols  int    `json:"cols"`
	Rows  int    `json:"rows"`
	Color string `json:"color"`
}

// PlatformConfig is a thin ledge Length tiles long
type PlatformConfig struct {
	Col    int    `json:"col"`
	Row    int    `json:"row"`
	Length int    `json:"length"`
	Color  string `json:"color"`
}

// DecorationConfig is drawn but never collides. Blend mixes its color
// toward the background color behind it (0 keeps it as is).
type DecorationConfig struct {
	Col   int     `json:"col"`
	Row   int     `json:"row"`
	Cols  int     `json:"cols"`
	Rows  int     `json:"rows"`
	Color string  `json:"color"`
	Blend float64 `json:"blend"`
}

// Validate checks the stage's structure and colors
func (s *StageConfig) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidStage)
	}
	g := s.Grid
	if g.Rows <= 0 || g.Cols <= 0 || g.TileSize <= 0 || g.Scale <= 0 {
		return fmt.Errorf("%w: %s: grid must be positive, got %dx%d tile %d scale %g",
			ErrInvalidStage, s.ID, g.Rows, g.Cols, g.TileSize, g.Scale)
	}
	if len(s.Background.Sky) == 0 {
		return fmt.Errorf("%w: %s: no sky colors", ErrInvalidStage, s.ID)
	}
	if s.Background.SkyRows < 0 || s.Background.SkyRows > g.Rows {
		return fmt.Errorf("%w: %s: skyRows %d outside grid", ErrInvalidStage, s.ID, s.Background.SkyRows)
	}

	colors := append([]string{s.Background.Ground}, s.Background.Sky...)
	for i, lm := range s.LandMasses {
		if lm.Cols <= 0 || lm.Rows <= 0 {
			return fmt.Errorf("%w: %s: land mass %d has no area", ErrInvalidStage, s.ID, i)
		}
		colors = append(colors, lm.Color)
	}
	for i, p := range s.Platforms {
		if p.Length < 1 {
			return fmt.Errorf("%w: %s: platform %d length %d", ErrInvalidStage, s.ID, i, p.Length)
		}
		colors = append(colors, p.Color)
	}
	for i, d := range s.Decorations {
		if d.Cols <= 0 || d.Rows <= 0 {
			return fmt.Errorf("%w: %s: decoration %d has no area", ErrInvalidStage, s.ID, i)
		}
		if d.Blend < 0 || d.Blend > 1 {
			return fmt.Errorf("%w: %s: decoration %d blend %g outside [0,1]", ErrInvalidStage, s.ID, i, d.Blend)
		}
		colors = append(colors, d.Color)
	}

	for _, c := range colors {
		if _, err := ParseColor(c); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidStage, s.ID, err)
		}
	}
	return nil
}
