package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sidescroller/internal/domain/entity"
)

// KeyFunc reports the state of a key
type KeyFunc func(ebiten.Key) bool

// MouseFunc reports the state of a mouse button
type MouseFunc func(ebiten.MouseButton) bool

// Requests are one-shot commands read from key presses this tick
type Requests struct {
	ToggleFPS    bool
	ToggleBounds bool
	ToggleGrid   bool
	Pause        bool
}

// InputSystem turns polled keyboard and mouse state into snapshots
type InputSystem struct {
	pressed     KeyFunc
	justPressed KeyFunc
	mouse       MouseFunc
}

// NewInputSystem creates an input system polling ebiten
func NewInputSystem() *InputSystem {
	return NewInputSystemWith(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed, ebiten.IsMouseButtonPressed)
}

// NewInputSystemWith creates an input system over the given predicates
func NewInputSystemWith(pressed, justPressed KeyFunc, mouse MouseFunc) *InputSystem {
	return &InputSystem{pressed: pressed, justPressed: justPressed, mouse: mouse}
}

func (s *InputSystem) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.pressed(k) {
			return true
		}
	}
	return false
}

// GetInput reads the current controls into an immutable snapshot
func (s *InputSystem) GetInput() entity.InputState {
	return entity.InputState{
		Left:   s.anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:  s.anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Up:     s.anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:   s.anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Jump:   s.anyPressed(ebiten.KeySpace),
		Run:    s.anyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		Attack: s.anyPressed(ebiten.KeyJ) || s.mouse(ebiten.MouseButtonLeft),
	}
}

// GetRequests reads the toggle and pause keys pressed this tick
func (s *InputSystem) GetRequests() Requests {
	return Requests{
		ToggleFPS:    s.justPressed(ebiten.KeyF1),
		ToggleBounds: s.justPressed(ebiten.KeyF2),
		ToggleGrid:   s.justPressed(ebiten.KeyF3),
		Pause:        s.justPressed(ebiten.KeyEscape),
	}
}
