package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/sidescroller/internal/domain/entity"
)

type fakeKeys map[ebiten.Key]bool

func (k fakeKeys) pressed(key ebiten.Key) bool { return k[key] }

func newFakeInput(held, just fakeKeys, clicked bool) *InputSystem {
	return NewInputSystemWith(held.pressed, just.pressed, func(b ebiten.MouseButton) bool {
		return clicked && b == ebiten.MouseButtonLeft
	})
}

func TestInputSystem_GetInput(t *testing.T) {
	tests := []struct {
		name    string
		held    fakeKeys
		clicked bool
		want    entity.InputState
	}{
		{"nothing", fakeKeys{}, false, entity.InputState{}},
		{"wasd", fakeKeys{ebiten.KeyA: true, ebiten.KeyS: true}, false, entity.InputState{Left: true, Down: true}},
		{"arrows", fakeKeys{ebiten.KeyArrowRight: true, ebiten.KeyArrowUp: true}, false, entity.InputState{Right: true, Up: true}},
		{"jump and run", fakeKeys{ebiten.KeySpace: true, ebiten.KeyShiftRight: true}, false, entity.InputState{Jump: true, Run: true}},
		{"attack key", fakeKeys{ebiten.KeyJ: true}, false, entity.InputState{Attack: true}},
		{"attack click", fakeKeys{}, true, entity.InputState{Attack: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newFakeInput(tt.held, fakeKeys{}, tt.clicked)
			assert.Equal(t, tt.want, sys.GetInput())
		})
	}
}

func TestInputSystem_SnapshotIsStable(t *testing.T) {
	held := fakeKeys{ebiten.KeyD: true}
	sys := newFakeInput(held, fakeKeys{}, false)

	snap := sys.GetInput()
	held[ebiten.KeyD] = false
	held[ebiten.KeyA] = true

	assert.Equal(t, 1, snap.LeftOrRight(), "a taken snapshot never sees later key changes")
	assert.Equal(t, -1, sys.GetInput().LeftOrRight())
}

func TestInputSystem_GetRequests(t *testing.T) {
	just := fakeKeys{ebiten.KeyF1: true, ebiten.KeyF3: true, ebiten.KeyEscape: true}
	sys := newFakeInput(fakeKeys{ebiten.KeyF2: true}, just, false)

	assert.Equal(t, Requests{ToggleFPS: true, ToggleGrid: true, Pause: true}, sys.GetRequests())
}
