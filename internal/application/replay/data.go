package replay

import "github.com/younwookim/sidescroller/internal/domain/entity"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	J bool `json:"j,omitempty"` // Jump
	S bool `json:"s,omitempty"` // Run (shift)
	A bool `json:"a,omitempty"` // Attack
}

// NewFrameInput records a snapshot as frame f
func NewFrameInput(f int, in entity.InputState) FrameInput {
	return FrameInput{
		F: f,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		J: in.Jump,
		S: in.Run,
		A: in.Attack,
	}
}

// Input converts the frame back into a snapshot
func (fi FrameInput) Input() entity.InputState {
	return entity.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Up:     fi.U,
		Down:   fi.D,
		Jump:   fi.J,
		Run:    fi.S,
		Attack: fi.A,
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version      string       `json:"version"`
	Seed         int64        `json:"seed"`
	Stage        string       `json:"stage"`
	StartTime    string       `json:"startTime"`
	TPS          int          `json:"tps"`
	SideTracking string       `json:"sideTracking"`
	Digest       uint64       `json:"digest"` // state after the last frame
	Frames       []FrameInput `json:"frames"`
}
