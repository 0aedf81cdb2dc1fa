package domain

// ActivationState is a step of the activation state machine.
type ActivationState int

const (
	// StateStart is the initial state.
	StateStart ActivationState = iota
	// StateValidating checks that the version is installed and reads the pointer.
	StateValidating
	// StateLinking repoints the current-version indirection.
	StateLinking
	// StatePersisting writes the new active pointer.
	StatePersisting
	// StateRollingBack restores the previous link after a failure.
	StateRollingBack
	// StateDone is the terminal success state.
	StateDone
	// StateError is the terminal failure state.
	StateError
)

var stateNames = [...]string{
	StateStart:       "start",
	StateValidating:  "validating",
	StateLinking:     "linking",
	StatePersisting:  "persisting",
	StateRollingBack: "rolling-back",
	StateDone:        "done",
	StateError:       "error",
}

// String returns the state name.
func (s ActivationState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// CanTransition reports whether the state machine allows moving from s to next.
func (s ActivationState) CanTransition(next ActivationState) bool {
	switch s {
	case StateStart:
		return next == StateValidating
	case StateValidating:
		return next == StateLinking || next == StateDone || next == StateError
	case StateLinking:
		return next == StatePersisting || next == StateRollingBack
	case StatePersisting:
		return next == StateDone || next == StateRollingBack
	case StateRollingBack:
		return next == StateError
	default:
		return false
	}
}

// ActivationResult reports what an activation did.
type ActivationResult struct {
	// Version is the version requested for activation.
	Version string
	// Previous is the pointer observed before the switch.
	Previous ActivePointer
	// Changed is false when the version was already active.
	Changed bool
	// States lists every state visited, in order.
	States []ActivationState
}

// Final returns the last state visited.
func (r ActivationResult) Final() ActivationState {
	if len(r.States) == 0 {
		return StateStart
	}
	return r.States[len(r.States)-1]
}
