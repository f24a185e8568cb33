package tide

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key store events.
type MetricsProvider interface {
	// OnDispatch is called after an action is reduced into the state.
	// Duration is the time the reducer took.
	OnDispatch(kind string, duration time.Duration)

	// OnNotify is called after a notification pass completes.
	// Subscribers is the size of the snapshot that was notified.
	OnNotify(subscribers int)

	// OnActionQueued is called when a dispatch made during notification is
	// enqueued for the next cycle.
	OnActionQueued(kind string)

	// OnEffectFailure is called when an effect returns an error.
	OnEffectFailure(err error)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnDispatch(_ string, _ time.Duration) {}
func (NoOpMetricsProvider) OnNotify(_ int)                       {}
func (NoOpMetricsProvider) OnActionQueued(_ string)              {}
func (NoOpMetricsProvider) OnEffectFailure(_ error)              {}
