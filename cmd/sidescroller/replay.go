package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/sidescroller/internal/application/replay"
	"github.com/younwookim/sidescroller/internal/application/system"
	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording without a window and verify its final state",
	Long: `Rebuild the recorded stage from its seed, feed every recorded frame
through the simulator and compare the final state digest with the one
stored in the recording.

Examples:
  sidescroller replay replay.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayCmd,
}

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Frames int
	Digest uint64
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	loader, err := newConfigLoader(flagConfigDir)
	if err != nil {
		return err
	}

	res, err := runReplay(loader, args[0], logger)
	if err != nil {
		return err
	}
	logger.Info("replay verified", "frames", res.Frames, "digest", fmt.Sprintf("%016x", res.Digest))
	return nil
}

// runReplay replays filename headless and verifies the final digest
func runReplay(loader *config.Loader, filename string, logger *log.Logger) (*ReplayResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	data, err := replay.LoadReplay(filename)
	if err != nil {
		return nil, err
	}

	settings, err := loader.LoadSettings()
	if err != nil {
		return nil, err
	}
	if data.TPS > 0 {
		settings.Display.TPS = data.TPS
	}
	if data.SideTracking != "" {
		settings.Collision.SideTracking = config.SideTracking(data.SideTracking)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("replay %s: %w", filename, err)
	}

	stageCfg, err := loader.LoadStage(data.Stage)
	if err != nil {
		return nil, err
	}

	replayer := replay.NewReplayer(*data)
	session, err := system.NewSession(settings, stageCfg, replayer.Seed(), system.NewTPSClock(settings.Display.TPS), logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("replaying", "file", filename, "stage", data.Stage, "seed", replayer.Seed(), "frames", replayer.TotalFrames())

	session.Sim.Start()
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		session.Player.SetInput(input)
		session.Sim.Update()
	}
	session.Sim.Stop()

	digest := session.Sim.Digest()
	if err := replayer.Verify(digest); err != nil {
		return nil, err
	}
	return &ReplayResult{Frames: replayer.CurrentFrame(), Digest: digest}, nil
}
