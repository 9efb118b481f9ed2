package entity

// MotionState classifies what the player is doing, mainly for animation
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionRunning
	MotionJumping
	MotionAttacking
)

// String returns the string representation of the motion state
func (m MotionState) String() string {
	switch m {
	case MotionIdle:
		return "Idle"
	case MotionRunning:
		return "Running"
	case MotionJumping:
		return "Jumping"
	case MotionAttacking:
		return "Attacking"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the declared states
func (m MotionState) Valid() bool {
	return m >= MotionIdle && m <= MotionAttacking
}

// frameCount is the number of animation frames per state
func (m MotionState) frameCount() float64 {
	switch m {
	case MotionRunning, MotionIdle:
		return 4
	case MotionJumping:
		return 2
	case MotionAttacking:
		return 6
	default:
		return 1
	}
}
