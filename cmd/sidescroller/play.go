package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/sidescroller/internal/application/game"
	"github.com/younwookim/sidescroller/internal/application/scene/playing"
)

var (
	flagStage  string
	flagRecord string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window on a stage.

Examples:
  sidescroller play
  sidescroller play --stage demo --seed 42
  sidescroller play --record replay.json
  sidescroller play --config ./configs --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStage, "stage", "demo", "Stage name under stages/")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
}

// pickSeed prefers the flag, then the settings file, then the clock
func pickSeed(flag, settings int64) int64 {
	switch {
	case flag != 0:
		return flag
	case settings != 0:
		return settings
	default:
		return time.Now().UnixNano()
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	loader, err := newConfigLoader(flagConfigDir)
	if err != nil {
		return err
	}

	settings, err := loader.LoadSettings()
	if err != nil {
		return err
	}
	stageCfg, err := loader.LoadStage(flagStage)
	if err != nil {
		return err
	}

	seed := pickSeed(flagSeed, settings.Seed)
	p, err := playing.New(settings, stageCfg, seed, flagRecord, logger)
	if err != nil {
		return err
	}

	screenW, screenH := p.Layout(0, 0)
	ebiten.SetWindowSize(screenW*settings.Display.WindowScale, screenH*settings.Display.WindowScale)
	ebiten.SetWindowTitle(settings.Display.Title)
	ebiten.SetTPS(settings.Display.TPS)

	g := game.New(p, screenW, screenH, logger)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
