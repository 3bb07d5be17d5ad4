package models

// RunState enumerates the execution modes of a countdown.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StatePaused
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Theme describes one selectable color theme. ID is the opaque identifier
// carried by the theme selector; From and To are the gradient endpoints.
type Theme struct {
	ID    string
	Label string
	From  string
	To    string
}
