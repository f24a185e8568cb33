package tide

// Phase represents where a Store is in its dispatch cycle.
type Phase int32

const (
	// PhaseIdle indicates no dispatch is in flight.
	PhaseIdle Phase = iota

	// PhaseDispatching indicates a reducer invocation is in progress.
	// Dispatch calls made in this phase fail with ErrReentrantDispatch.
	PhaseDispatching

	// PhaseNotifying indicates subscribers are being notified. Dispatch
	// calls made in this phase enqueue their action for the next cycle
	// rather than nesting.
	PhaseNotifying
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDispatching:
		return "dispatching"
	case PhaseNotifying:
		return "notifying"
	default:
		return "unknown"
	}
}
