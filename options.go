package tide

import "github.com/zoobzio/clockz"

// config holds configuration options for a Store.
type config[S any] struct {
	middleware   []Middleware[S]
	metrics      MetricsProvider
	errorHistory int
	clock        clockz.Clock
}

// Option configures a Store.
type Option[S any] func(*config[S])

// WithMiddleware installs middleware on the dispatch entry point.
// Middleware runs in declared order, ahead of the effect interceptor and
// the reducer. Repeated calls append.
func WithMiddleware[S any](mw ...Middleware[S]) Option[S] {
	return func(c *config[S]) {
		c.middleware = append(c.middleware, mw...)
	}
}

// WithMetrics sets a metrics provider for observability integration.
// The provider receives callbacks on dispatch, notification, queued actions,
// and effect failures.
func WithMetrics[S any](provider MetricsProvider) Option[S] {
	return func(c *config[S]) {
		c.metrics = provider
	}
}

// WithErrorHistory sets the number of recent effect errors to retain.
// When set, ErrorHistory() returns up to this many recent errors.
// Use 0 (default) to only retain the most recent error via LastError().
func WithErrorHistory[S any](n int) Option[S] {
	return func(c *config[S]) {
		c.errorHistory = n
	}
}

// WithClock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic timing in tests.
func WithClock[S any](clock clockz.Clock) Option[S] {
	return func(c *config[S]) {
		c.clock = clock
	}
}
