package system

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/sidescroller/internal/domain/entity"
	"github.com/younwookim/sidescroller/internal/domain/world"
	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

// Session is one run of a stage: the built scene, its player, the display
// toggles and the simulator driving them
type Session struct {
	Sim     *Simulator
	Player  *entity.Player
	Options *world.Options
	Seed    int64
}

// PlayerParams converts the player settings
func PlayerParams(c config.PlayerConfig) entity.PlayerParams {
	return entity.PlayerParams{
		Width:        c.Width,
		Height:       c.Height,
		HitboxMargin: c.HitboxMargin,
		MaxGravity:   c.MaxGravity,
		JumpImpulse:  c.JumpImpulse,
		WalkSpeed:    c.WalkSpeed,
		RunBoost:     c.RunBoost,
	}
}

// NewSession builds the stage with a generator seeded by seed and wires a
// stopped simulator over it
func NewSession(settings *config.Settings, stage *config.StageConfig, seed int64, clock Clock, logger *log.Logger) (*Session, error) {
	bg, err := config.ParseColor(settings.Display.Background)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	scene, player, err := NewMapBuilder(rand.New(rand.NewSource(seed))).Build(stage, PlayerParams(settings.Player))
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %s: %w", stage.ID, err)
	}

	opts := world.NewOptions(settings.Debug.ShowFPS, settings.Debug.ShowBounds, settings.Debug.ShowGrid)
	sim := NewSimulator(scene, opts, clock, SimulatorConfig{
		Background:   bg,
		SideTracking: settings.Collision.SideTracking,
		FPSInterval:  settings.FPS.SampleInterval,
	}, logger)

	return &Session{
		Sim:     sim,
		Player:  player,
		Options: opts,
		Seed:    seed,
	}, nil
}
