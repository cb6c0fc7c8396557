package submission

// State is the lifecycle position of a form's submission.
type State int

const (
	// Idle accepts a new submission; the trigger control is enabled.
	Idle State = iota
	// Submitting has one request in flight; the trigger control is disabled.
	Submitting
	// Succeeded rendered a generated document.
	Succeeded
	// Failed surfaced a transport, decode or backend error.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// TransitionHook observes every state change of a controller.
type TransitionHook func(from, to State)
