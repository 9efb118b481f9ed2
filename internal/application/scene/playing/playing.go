// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/sidescroller/internal/application/replay"
	"github.com/younwookim/sidescroller/internal/application/scene"
	"github.com/younwookim/sidescroller/internal/application/state"
	"github.com/younwookim/sidescroller/internal/application/system"
	"github.com/younwookim/sidescroller/internal/domain/world"
	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

var colorOverlay = color.RGBA{0, 0, 0, 128}

// Playing is the main gameplay scene
type Playing struct {
	settings    *config.Settings
	stageCfg    *config.StageConfig
	session     *system.Session
	inputSystem *system.InputSystem
	logger      *log.Logger
	screenW     int
	screenH     int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene over a freshly built stage.
// If recordPath is not empty, gameplay will be recorded.
func New(settings *config.Settings, stageCfg *config.StageConfig, seed int64, recordPath string, logger *log.Logger) (*Playing, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := system.NewSession(settings, stageCfg, seed, system.NewWallClock(), logger)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		settings:       settings,
		stageCfg:       stageCfg,
		session:        session,
		inputSystem:    system.NewInputSystem(),
		logger:         logger,
		screenW:        int(stageCfg.Grid.Width()),
		screenH:        int(stageCfg.Grid.Height()),
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(seed, stageCfg.ID, settings.Display.TPS, string(settings.Collision.SideTracking))
		logger.Info("recording enabled", "file", recordPath, "seed", seed)
	}

	return p, nil
}

// SetInputSystem replaces the input source
func (p *Playing) SetInputSystem(in *system.InputSystem) {
	p.inputSystem = in
}

// Session returns the running session
func (p *Playing) Session() *system.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	p.handleRequests(p.inputSystem.GetRequests())

	sim := p.session.Sim
	if sim.State() != state.Running {
		return nil, nil
	}

	input := p.inputSystem.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.session.Player.SetInput(input)
	sim.Update()

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleRequests(req system.Requests) {
	opts := p.session.Options
	if req.ToggleFPS {
		p.logger.Debug("toggled fps", "on", world.Toggle(&opts.ShowFPS))
	}
	if req.ToggleBounds {
		p.logger.Debug("toggled bounds", "on", world.Toggle(&opts.ShowBounds))
	}
	if req.ToggleGrid {
		p.logger.Debug("toggled grid", "on", world.Toggle(&opts.ShowGrid))
	}

	if !req.Pause {
		return
	}
	sim := p.session.Sim
	switch sim.State() {
	case state.Running:
		sim.Pause()
	case state.Paused:
		sim.Start()
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.session.Sim.Draw(screen)

	if p.session.Sim.State() == state.Paused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	p.recorder.SetDigest(p.session.Sim.Digest())
	err := p.recorder.Save(p.recordFilename)
	switch {
	case errors.Is(err, replay.ErrNoFrames):
		p.logger.Warn("nothing recorded", "file", p.recordFilename)
	case err != nil:
		p.logger.Error("failed to save recording", "err", err)
	default:
		p.logger.Info("recording saved", "file", p.recordFilename, "frames", p.recorder.FrameCount())
	}
}

// OnEnter starts the simulation
func (p *Playing) OnEnter() {
	p.session.Sim.Start()
	p.logger.Info("stage started", "stage", p.stageCfg.ID, "seed", p.session.Seed)
}

// OnExit stops the simulation and saves any recording
func (p *Playing) OnExit() {
	p.session.Sim.Stop()
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
	p.logger.Info("stage stopped", "stage", p.stageCfg.ID, "ticks", p.session.Sim.Ticks())
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
