package entity

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const frameStep = 0.1

var motionColors = map[MotionState]color.RGBA{
	MotionIdle:      {0x4a, 0x90, 0xd9, 0xff},
	MotionRunning:   {0x2e, 0xcc, 0x71, 0xff},
	MotionJumping:   {0xf1, 0xc4, 0x0f, 0xff},
	MotionAttacking: {0xe7, 0x4c, 0x3c, 0xff},
}

// PlayerSprite draws the player as a colored block with a facing marker.
// The frame counter cycles through the current state's animation frames.
type PlayerSprite struct {
	Sprite
	width, height float64
	state         MotionState
	facingLeft    bool
	frame         float64
}

// NewPlayerSprite creates a player sprite of the given size
func NewPlayerSprite(w, h float64) *PlayerSprite {
	return &PlayerSprite{Sprite: newSprite(), width: w, height: h}
}

// SetState switches the animation. An undeclared state is a programming
// error and panics.
func (s *PlayerSprite) SetState(m MotionState) {
	if !m.Valid() {
		panic(fmt.Sprintf("entity: invalid motion state %d", int(m)))
	}
	if m != s.state {
		s.frame = 0
	}
	s.state = m
}

func (s *PlayerSprite) State() MotionState { return s.state }

func (s *PlayerSprite) SetFacingLeft(left bool) { s.facingLeft = left }

func (s *PlayerSprite) FacingLeft() bool { return s.facingLeft }

// Frame returns the current animation frame index
func (s *PlayerSprite) Frame() int { return int(s.frame) }

// advance moves the animation forward one draw call
func (s *PlayerSprite) advance() {
	s.frame += frameStep
	if s.frame >= s.state.frameCount() {
		s.frame = 0
	}
}

func (s *PlayerSprite) Draw(dst *ebiten.Image) {
	s.advance()

	c := s.Coord()
	x, y := float32(c.X), float32(c.Y)
	w, h := float32(s.width), float32(s.height)
	vector.DrawFilledRect(dst, x, y, w, h, motionColors[s.state], false)

	// eye on the facing side, bobbing with the frame
	eye := w / 5
	ex := x + w - 2*eye
	if s.facingLeft {
		ex = x + eye
	}
	ey := y + h/4 + float32(s.Frame()%2)
	vector.DrawFilledRect(dst, ex, ey, eye, eye, color.White, false)
}
