// Package scene defines the Scene interface for game screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update runs one tick.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update() (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene or when the window closes.
	// Use this for cleanup and saving state.
	OnExit()
}
