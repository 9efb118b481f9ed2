package system

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/younwookim/sidescroller/internal/domain/entity"
	"github.com/younwookim/sidescroller/internal/domain/geom"
	"github.com/younwookim/sidescroller/internal/domain/world"
	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

// MapBuilder converts a StageConfig into a populated Scene. Random choices
// (sky cell colors) come from the injected rng so a seed reproduces a map.
type MapBuilder struct {
	rng *rand.Rand
}

// NewMapBuilder creates a builder drawing from rng
func NewMapBuilder(rng *rand.Rand) *MapBuilder {
	return &MapBuilder{rng: rng}
}

// Build creates the scene for cfg and places a player at its spawn point.
// The background, land masses, platforms and decorations are added before
// the player, which is the scene's only dynamic entity.
func (b *MapBuilder) Build(cfg *config.StageConfig, params entity.PlayerParams) (*world.Scene, *entity.Player, error) {
	g := cfg.Grid
	grid := world.Grid{
		Rows:     g.Rows,
		Cols:     g.Cols,
		TileSize: geom.Vec(float64(g.TileSize), float64(g.TileSize)),
		Scale:    g.Scale,
	}

	bgSprite, err := b.background(cfg, grid)
	if err != nil {
		return nil, nil, err
	}
	background := entity.NewStatic(bgSprite, entity.NewHitBox(0, 0, g.Width(), g.Height()))
	scene := world.NewScene(background, grid)

	unit := g.Unit()
	for i, lm := range cfg.LandMasses {
		c, err := config.ParseColor(lm.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build land mass %d: %w", i, err)
		}
		x, y := float64(lm.Col)*unit, float64(lm.Row)*unit
		w, h := float64(lm.Cols)*unit, float64(lm.Rows)*unit
		scene.AddStatic(entity.NewStatic(entity.NewRectSprite(x, y, w, h, c), entity.NewHitBox(x, y, w, h)))
	}

	for i, p := range cfg.Platforms {
		c, err := config.ParseColor(p.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build platform %d: %w", i, err)
		}
		scene.AddStatic(entity.NewStatic(
			entity.NewRectSprite(float64(p.Col)*unit, float64(p.Row)*unit, float64(p.Length)*unit, unit/2, c),
			PlatformHitBox(p, unit),
		))
	}

	for i, d := range cfg.Decorations {
		c, err := config.ParseColor(d.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build decoration %d: %w", i, err)
		}
		if d.Blend > 0 {
			c = config.BlendColor(c, toRGBA(bgSprite.Cell(clamp(d.Row, g.Rows), clamp(d.Col, g.Cols))), d.Blend)
		}
		x, y := float64(d.Col)*unit, float64(d.Row)*unit
		scene.AddStatic(entity.NewStatic(
			entity.NewRectSprite(x, y, float64(d.Cols)*unit, float64(d.Rows)*unit, c),
			nil,
		))
	}

	player := entity.NewPlayer(cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y, params)
	scene.AddDynamic(player)

	return scene, player, nil
}

// PlatformHitBox is the collidable part of a platform: half a tile thick,
// starting half a tile in and one tile shorter than the drawn ledge.
func PlatformHitBox(p config.PlatformConfig, unit float64) *entity.HitBox {
	return entity.NewHitBox(
		(float64(p.Col)+0.5)*unit,
		float64(p.Row)*unit,
		float64(p.Length-1)*unit,
		unit/2,
	)
}

func (b *MapBuilder) background(cfg *config.StageConfig, grid world.Grid) (*entity.BackgroundSprite, error) {
	sky := make([]color.RGBA, 0, len(cfg.Background.Sky))
	for _, hex := range cfg.Background.Sky {
		c, err := config.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("failed to build background: %w", err)
		}
		sky = append(sky, c)
	}
	ground, err := config.ParseColor(cfg.Background.Ground)
	if err != nil {
		return nil, fmt.Errorf("failed to build background: %w", err)
	}

	skyRows := cfg.Background.SkyRows
	return entity.NewBackgroundSprite(grid.Rows, grid.Cols, grid.TileSize, grid.Scale, func(row, _ int) color.Color {
		if row < skyRows && len(sky) > 0 {
			return sky[b.rng.Intn(len(sky))]
		}
		return ground
	}), nil
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
