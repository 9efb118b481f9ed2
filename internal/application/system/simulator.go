package system

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sidescroller/internal/application/state"
	"github.com/younwookim/sidescroller/internal/domain/entity"
	"github.com/younwookim/sidescroller/internal/domain/world"
	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

var (
	// ColorHighlight outlines a hitbox that hit an obstacle this tick
	ColorHighlight = color.RGBA{138, 43, 226, 255}

	colorGrid    = color.RGBA{255, 255, 255, 48}
	colorDefault = color.RGBA{26, 26, 46, 255}
)

// SimulatorConfig tunes the simulator
type SimulatorConfig struct {
	Background   color.Color
	SideTracking config.SideTracking
	FPSInterval  time.Duration
}

// Simulator advances a scene one tick at a time: every entity moves, then
// dynamic entities are checked against the map bounds and the obstacles and
// stepped back when their move was invalid.
type Simulator struct {
	scene  *world.Scene
	opts   *world.Options
	clock  Clock
	cfg    SimulatorConfig
	logger *log.Logger

	state state.RunState
	view  world.Snapshot
	fps   *FPSCounter
	ticks uint64

	inMap   []entity.Entity
	grid    *entity.GridSprite
	fpsText *entity.TextSprite
}

// NewSimulator creates a stopped simulator
func NewSimulator(scene *world.Scene, opts *world.Options, clock Clock, cfg SimulatorConfig, logger *log.Logger) *Simulator {
	if opts == nil {
		opts = world.NewOptions(false, false, false)
	}
	if clock == nil {
		clock = NewWallClock()
	}
	if cfg.Background == nil {
		cfg.Background = colorDefault
	}
	if cfg.SideTracking == "" {
		cfg.SideTracking = config.SideTrackingAccumulate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Simulator{
		scene:   scene,
		opts:    opts,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
		state:   state.Stopped,
		fps:     NewFPSCounter(cfg.FPSInterval),
		fpsText: entity.NewTextSprite(4, 4),
	}
}

// Start begins accepting ticks. Starting a running simulator does nothing.
func (s *Simulator) Start() {
	if s.state == state.Running {
		return
	}
	s.logger.Debug("simulator started", "from", s.state, "tick", s.ticks)
	s.state = state.Running
}

// Stop ceases ticks and keeps the last computed state. Stopping a stopped
// simulator does nothing.
func (s *Simulator) Stop() {
	if s.state == state.Stopped {
		return
	}
	s.logger.Debug("simulator stopped", "from", s.state, "tick", s.ticks)
	s.state = state.Stopped
}

// Pause is Stop that remembers it was paused, so the screen can resume it
func (s *Simulator) Pause() {
	if s.state != state.Running {
		return
	}
	s.logger.Debug("simulator paused", "tick", s.ticks)
	s.state = state.Paused
}

func (s *Simulator) State() state.RunState { return s.state }

// Ticks returns the number of update phases run so far
func (s *Simulator) Ticks() uint64 { return s.ticks }

// FPS returns the last sampled frame rate
func (s *Simulator) FPS() int { return s.fps.Value() }

func (s *Simulator) Scene() *world.Scene { return s.scene }

// Update runs one tick's update phase. It does nothing unless running.
func (s *Simulator) Update() {
	if !s.state.Active() {
		return
	}

	s.view = s.opts.Snapshot()
	now := s.clock.Now()
	if s.view.ShowFPS {
		s.fps.Tick(now)
	}

	for _, e := range s.scene.Dynamics() {
		e.Update()
	}
	for _, e := range s.scene.Statics() {
		e.Update()
	}
	s.resolveCollisions()

	s.ticks++
}

// resolveCollisions steps back every dynamic entity whose move this tick
// left the map or overlapped an obstacle. Obstacles are the outer loop so a
// hitbox's flagged sides accumulate across obstacles.
func (s *Simulator) resolveCollisions() {
	s.inMap = s.inMap[:0]
	for _, e := range s.scene.Dynamics() {
		if !e.HasHitbox() {
			continue
		}
		hb := e.HitBox()
		hb.ClearContacts()
		if s.view.ShowBounds {
			hb.SetStroke(entity.ColorBounds)
		}

		if !s.scene.Contains(hb) {
			e.RespondToInvalidMove(entity.ViolationOutOfBounds)
			continue
		}
		s.inMap = append(s.inMap, e)
	}

	perObstacle := s.cfg.SideTracking == config.SideTrackingPerObstacle
	for _, obstacle := range s.scene.Obstacles() {
		for _, e := range s.inMap {
			hb := e.HitBox()
			if perObstacle {
				hb.ClearContacts()
			}
			if !hb.IntersectBounds(obstacle.HitBox()) {
				continue
			}
			if s.view.ShowBounds {
				hb.SetStroke(ColorHighlight)
			}
			e.RespondToInvalidMove(entity.ViolationBlocked)
		}
	}
}

// Draw runs the draw phase
func (s *Simulator) Draw(dst *ebiten.Image) {
	view := s.opts.Snapshot()

	dst.Fill(s.cfg.Background)

	if bg := s.scene.Background(); bg != nil {
		s.drawEntity(dst, bg, view.ShowBounds)
	}
	for _, e := range s.scene.Statics() {
		s.drawEntity(dst, e, view.ShowBounds)
	}
	for _, e := range s.scene.Dynamics() {
		s.drawEntity(dst, e, view.ShowBounds)
	}

	if view.ShowGrid {
		s.gridSprite().Draw(dst)
	}
	if view.ShowFPS {
		s.fpsText.SetText(fmt.Sprintf("FPS: %d", s.fps.Value()))
		s.fpsText.Draw(dst)
	}
}

func (s *Simulator) drawEntity(dst *ebiten.Image, e entity.Entity, bounds bool) {
	if !e.IsDrawable() {
		return
	}
	e.Drawable().Draw(dst)
	if bounds && e.HasHitbox() {
		e.HitBox().Draw(dst)
	}
}

func (s *Simulator) gridSprite() *entity.GridSprite {
	if s.grid == nil {
		g := s.scene.Grid()
		s.grid = entity.NewGridSprite(g.Rows, g.Cols, g.Width(), g.Height())
		s.grid.SetTileSize(g.TileSize)
		s.grid.SetScale(g.Scale)
		s.grid.SetStroke(colorGrid)
		s.logger.Debug("grid overlay built", "rows", g.Rows, "cols", g.Cols)
	}
	return s.grid
}

// Digest hashes the current state of the dynamic entities
func (s *Simulator) Digest() uint64 {
	return Digest(s.scene)
}
