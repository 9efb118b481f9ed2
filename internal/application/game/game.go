// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sidescroller/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	logger  *log.Logger
	closed  bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update()
	if err != nil {
		return err
	}

	if next != nil {
		g.logger.Debug("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once the loop has ended. Later calls do
// nothing.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
