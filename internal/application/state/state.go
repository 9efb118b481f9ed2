package state

// RunState is the lifecycle of the simulator
type RunState int

const (
	Stopped RunState = iota
	Running
	Paused
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Active reports whether ticks advance the simulation
func (s RunState) Active() bool {
	return s == Running
}
