package codeblock

// State is the phase of the edit pipeline.
type State uint8

const (
	StateIdle State = iota
	StateCapturing
	StateMutated
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateMutated:
		return "mutated"
	case StateRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// TransitionFunc observes pipeline state changes.
type TransitionFunc func(from, to State)
