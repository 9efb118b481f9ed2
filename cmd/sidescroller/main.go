// sidescroller is a single-screen side-scrolling platformer sandbox.
//
// Usage:
//
//	sidescroller play              - Play the demo stage
//	sidescroller play --record f   - Play and record input to f
//	sidescroller replay <file>     - Re-run a recording headless and verify it
//
// Global flags:
//
//	--config <dir>       - Load settings.yaml and stages/ from dir instead of the embedded copy
//	--seed <value>       - Map generator seed (0 = settings seed, then time based)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagSeed      int64
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sidescroller",
	Short: "Side-scrolling platformer sandbox",
	Long: `A single-screen platformer: one player, a tiled map with land masses
and floating platforms, and debug overlays for hitboxes, the tile grid and FPS.

Controls:
  A/D or arrows  - Walk
  W/S or arrows  - Up/Down
  Space          - Jump
  Shift          - Run
  J / left click - Attack
  F1/F2/F3       - Toggle FPS / hitboxes / grid
  Esc            - Pause`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Map seed (0 = settings seed or time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sidescroller",
		Level:           lvl,
	})
	return logger, nil
}

// newConfigLoader reads from dir, or from the embedded configs when dir is empty
func newConfigLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys), nil
}
