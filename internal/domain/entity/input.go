package entity

// Input is the per-tick view of the controls the player reads.
// Implementations must not change while a tick is running.
type Input interface {
	// HasMoved is true if any of up, down, left, right or jump is held
	HasMoved() bool
	// LeftOrRight is -1 for left, +1 for right, 0 for neither
	LeftOrRight() int
	// UpOrDown is -1 for up, +1 for down, 0 for neither
	UpOrDown() int
	// DownAmount is 1 while down is held, else 0
	DownAmount() int
	JumpHeld() bool
	RunHeld() bool
	AttackHeld() bool
}

// InputState is an immutable snapshot of the controls.
// Being a value type, a copy handed to the player cannot be mutated mid-tick.
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Jump   bool
	Run    bool
	Attack bool
}

func (s InputState) HasMoved() bool {
	return s.Left || s.Right || s.Up || s.Down || s.Jump
}

// LeftOrRight prefers right when both are held
func (s InputState) LeftOrRight() int {
	if !s.Right && !s.Left {
		return 0
	}
	if s.Right {
		return 1
	}
	return -1
}

// UpOrDown prefers down when both are held
func (s InputState) UpOrDown() int {
	if !s.Up && !s.Down {
		return 0
	}
	if s.Down {
		return 1
	}
	return -1
}

func (s InputState) DownAmount() int {
	if s.Down {
		return 1
	}
	return 0
}

func (s InputState) JumpHeld() bool { return s.Jump }
func (s InputState) RunHeld() bool { return s.Run }
func (s InputState) AttackHeld() bool { return s.Attack }
