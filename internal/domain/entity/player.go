package entity

import (
	"github.com/younwookim/sidescroller/internal/domain/geom"
)

// PlayerParams holds the player's size and kinematic constants
type PlayerParams struct {
	Width  float64
	Height float64

	// HitboxMargin is both the offset of the hitbox from the sprite's
	// top-left corner and how much smaller than the sprite it is
	HitboxMargin float64

	MaxGravity  float64 // downward speed added every grounded tick
	JumpImpulse float64 // jump speed at onset, decays by 1 per tick
	WalkSpeed   float64
	RunBoost    float64 // multiplier while run is held
}

// DefaultPlayerParams returns the stock tuning (20x20 sprite scaled by 2)
func DefaultPlayerParams() PlayerParams {
	return PlayerParams{
		Width:        40,
		Height:       40,
		HitboxMargin: 8,
		MaxGravity:   7,
		JumpImpulse:  15,
		WalkSpeed:    2,
		RunBoost:     2.4,
	}
}

// Player is the input-driven actor. Each Update moves it by one tick of
// kinematics; the simulator then checks the move and may call
// RespondToInvalidMove to roll it back.
type Player struct {
	params PlayerParams

	pos    geom.Vector2 // sprite top-left
	hitbox *DirectionalHitBox
	sprite *PlayerSprite
	input  Input

	gravity    float64
	jumpSpeed  float64
	facingLeft bool
	attacking  bool
	prevAttack bool
	state      MotionState
}

// NewPlayer creates a player centered on (x, y)
func NewPlayer(x, y float64, params PlayerParams) *Player {
	pos := geom.Vec(x-params.Width/2, y-params.Height/2)
	m := params.HitboxMargin

	p := &Player{
		params:     params,
		pos:        pos,
		hitbox:     NewDirectionalHitBox(pos.X+m, pos.Y+m, params.Width-m, params.Height-m),
		sprite:     NewPlayerSprite(params.Width, params.Height),
		input:      InputState{},
		gravity:    params.MaxGravity,
		facingLeft: true,
		state:      MotionIdle,
	}
	p.syncSprite()
	return p
}

// SetInput hands the player the snapshot to read on the next Update
func (p *Player) SetInput(in Input) {
	if in == nil {
		in = InputState{}
	}
	p.input = in
}

// Update applies one tick of kinematics to the position and the hitbox
func (p *Player) Update() {
	in := p.input

	if in.HasMoved() && in.LeftOrRight() != 0 {
		p.facingLeft = in.LeftOrRight() < 0
	}

	attack := in.AttackHeld()
	if attack && !p.prevAttack {
		p.attacking = true
	} else if !attack {
		p.attacking = false
	}
	p.prevAttack = attack

	var dx, dy float64
	if in.JumpHeld() || p.jumpSpeed > 0 {
		if p.jumpSpeed == 0 {
			p.jumpSpeed = p.params.JumpImpulse
		}
		p.jumpSpeed--
		dx = p.jumpSpeed * float64(in.LeftOrRight())
		dy = -p.jumpSpeed + 0.5*p.gravity
	} else {
		dx = float64(in.LeftOrRight()) * p.params.WalkSpeed
		dy = float64(in.DownAmount()) * p.params.WalkSpeed
		if in.RunHeld() {
			dx *= p.params.RunBoost
			dy *= p.params.RunBoost
		}
		dy += p.gravity
	}

	p.pos.Translate(dx, dy)
	p.hitbox.Translate(dx, dy)
	p.gravity = p.params.MaxGravity

	p.state = p.classify(in)
	p.syncSprite()
}

func (p *Player) classify(in Input) MotionState {
	switch {
	case p.jumpSpeed > 0:
		return MotionJumping
	case p.attacking:
		return MotionAttacking
	case in.LeftOrRight() != 0 || in.UpOrDown() != 0:
		return MotionRunning
	default:
		return MotionIdle
	}
}

// RespondToInvalidMove steps back. Leaving the map always rolls back both
// axes, so any flagged sides are dropped first.
func (p *Player) RespondToInvalidMove(v Violation) {
	if v == ViolationOutOfBounds {
		p.hitbox.ClearContacts()
	}
	p.StepBack()
}

// StepBack undoes the last move on the hitbox, re-derives the position from
// it and cancels gravity for the current tick.
func (p *Player) StepBack() {
	p.hitbox.UndoTranslate()
	o := p.hitbox.Bounds().Origin()
	p.pos.Set(o.X-p.params.HitboxMargin, o.Y-p.params.HitboxMargin)
	p.gravity = 0
	p.syncSprite()
}

func (p *Player) syncSprite() {
	p.sprite.SetCoord(p.pos)
	p.sprite.SetFacingLeft(p.facingLeft)
	p.sprite.SetState(p.state)
}

func (p *Player) HasHitbox() bool { return true }
func (p *Player) HitBox() Collider { return p.hitbox }
func (p *Player) IsDrawable() bool { return true }
func (p *Player) Drawable() Drawable { return p.sprite }

// DirectionalHitBox returns the player's hitbox with side information
func (p *Player) DirectionalHitBox() *DirectionalHitBox { return p.hitbox }

// Position returns the sprite's top-left corner
func (p *Player) Position() geom.Vector2 { return p.pos }

// Gravity returns the downward speed the next grounded Update will add
func (p *Player) Gravity() float64 { return p.gravity }

// JumpSpeed is 0 when grounded, positive while a jump is in progress
func (p *Player) JumpSpeed() float64 { return p.jumpSpeed }

// Grounded reports whether no jump is in progress
func (p *Player) Grounded() bool { return p.jumpSpeed == 0 }

func (p *Player) FacingLeft() bool { return p.facingLeft }

func (p *Player) State() MotionState { return p.state }

func (p *Player) Params() PlayerParams { return p.params }
