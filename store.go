package tide

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// initKind is the discriminant of the internal action that seeds the
// initial state. No reducer case should match it.
const initKind = "tide.init"

// Store holds the current state, applies the reducer on dispatch, and
// synchronously notifies subscribers after every cycle.
//
// The state tree is owned exclusively by the store and its reducer; nothing
// else writes it. Reads are unrestricted and race-free because every state
// value is immutable: State() hands out a stable snapshot.
//
// Dispatching is single-flight. The store is meant to be driven from one
// goroutine; a concurrent dispatch that catches a reducer mid-invocation
// fails with ErrReentrantDispatch rather than waiting, the same loud failure
// a re-entrant reducer gets.
type Store[S any] struct {
	reducer  Reducer[S]
	dispatch DispatchFunc
	metrics  MetricsProvider
	clock    clockz.Clock
	errors   *errorLog

	state     atomic.Pointer[S]
	phase     atomic.Int32
	lastError atomic.Pointer[error]

	mu      sync.Mutex
	subs    []*subscriber
	pending []pendingAction
}

// subscriber is one entry in the store's listener list. The removed flag
// lets a notification pass skip listeners unsubscribed mid-cycle without
// rescanning the live list.
type subscriber struct {
	fn      func()
	removed atomic.Bool
}

// pendingAction is a dispatch enqueued during notification, replayed with
// the context it was dispatched under.
type pendingAction struct {
	ctx    context.Context
	action Action
}

// New creates a Store driven by the given reducer.
//
// The initial state is seeded by running the reducer once against the zero
// state with an internal init action; under Combine this gives every slice
// reducer its chance to return a default.
//
// Example:
//
//	store := tide.New[tide.Tree](
//	    tide.Combine(map[string]tide.Reducer[any]{
//	        "text": textReducer,
//	        "tabs": tabsReducer,
//	    }),
//	    tide.WithMiddleware(tide.UseLogging[tide.Tree]()),
//	)
func New[S any](reducer Reducer[S], opts ...Option[S]) *Store[S] {
	cfg := &config[S]{
		clock: clockz.RealClock,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Store[S]{
		reducer: reducer,
		metrics: cfg.metrics,
		clock:   cfg.clock,
		errors:  newErrorLog(cfg.errorHistory),
	}

	var zero S
	seeded := reducer(zero, Plain(initKind))
	s.state.Store(&seeded)

	// Chain: declared middleware, then the effect interceptor, then apply.
	d := interceptEffects(s, s.apply)
	for i := len(cfg.middleware) - 1; i >= 0; i-- {
		d = cfg.middleware[i](s, d)
	}
	s.dispatch = d

	return s
}

// State returns the current state. O(1), never blocks; the returned value
// is an immutable snapshot.
func (s *Store[S]) State() S {
	return *s.state.Load()
}

// Phase returns the store's current dispatch phase.
func (s *Store[S]) Phase() Phase {
	return Phase(s.phase.Load())
}

// LastError returns the most recent error returned by an effect, or nil.
func (s *Store[S]) LastError() error {
	ptr := s.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns recent effect errors, oldest first.
// Returns nil unless WithErrorHistory was set.
func (s *Store[S]) ErrorHistory() []error {
	return s.errors.recent()
}

// Dispatch routes an action through the middleware chain. Plain actions
// reach the reducer and produce a new state before Dispatch returns;
// effects are invoked with the store API and their error is returned
// instead. See ErrReentrantDispatch for the re-entrancy contract.
func (s *Store[S]) Dispatch(ctx context.Context, action Action) error {
	return s.dispatch(ctx, action)
}

// Subscribe appends a listener to the subscriber list and returns a
// function that removes exactly this listener. The removal function is
// idempotent. Listeners added while a notification pass is running are not
// invoked until the next cycle.
func (s *Store[S]) Subscribe(listener func()) func() {
	sub := &subscriber{fn: listener}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		if !sub.removed.CompareAndSwap(false, true) {
			return
		}
		s.mu.Lock()
		for i, cur := range s.subs {
			if cur == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	}
}

// apply is the base dispatch at the end of the middleware chain. It owns
// the Idle → Dispatching → Notifying → Idle cycle: one action reduces at a
// time, and dispatches made by listeners are drained FIFO before the store
// returns to idle.
func (s *Store[S]) apply(ctx context.Context, action Action) error {
	for {
		switch Phase(s.phase.Load()) {
		case PhaseDispatching:
			return ErrReentrantDispatch
		case PhaseNotifying:
			s.enqueue(ctx, action)
			return nil
		}
		if s.phase.CompareAndSwap(int32(PhaseIdle), int32(PhaseDispatching)) {
			break
		}
	}
	defer s.phase.Store(int32(PhaseIdle))

	queue := []pendingAction{{ctx, action}}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		s.reduce(next.ctx, next.action)

		s.phase.Store(int32(PhaseNotifying))
		s.notify(next.ctx)
		queue = append(queue, s.drain()...)
		s.phase.Store(int32(PhaseDispatching))
	}
	return nil
}

// reduce runs the reducer and swaps in the new state.
func (s *Store[S]) reduce(ctx context.Context, action Action) {
	start := s.clock.Now()
	next := s.reducer(*s.state.Load(), action)
	s.state.Store(&next)

	capitan.Emit(ctx, StoreDispatched,
		KeyKind.Field(action.Kind()),
	)
	if s.metrics != nil {
		s.metrics.OnDispatch(action.Kind(), s.clock.Since(start))
	}
}

// notify invokes every listener in a snapshot of the subscriber list, in
// subscription order. Listeners removed during the pass are skipped for the
// remainder of it.
func (s *Store[S]) notify(ctx context.Context) {
	s.mu.Lock()
	snapshot := make([]*subscriber, len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		if sub.removed.Load() {
			continue
		}
		sub.fn()
	}

	capitan.Emit(ctx, StoreNotified,
		KeySubscribers.Field(len(snapshot)),
	)
	if s.metrics != nil {
		s.metrics.OnNotify(len(snapshot))
	}
}

func (s *Store[S]) enqueue(ctx context.Context, action Action) {
	s.mu.Lock()
	s.pending = append(s.pending, pendingAction{ctx, action})
	s.mu.Unlock()

	capitan.Emit(ctx, StoreActionQueued,
		KeyKind.Field(action.Kind()),
	)
	if s.metrics != nil {
		s.metrics.OnActionQueued(action.Kind())
	}
}

func (s *Store[S]) drain() []pendingAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.pending
	s.pending = nil
	return drained
}

// recordError stores an effect error atomically.
func (s *Store[S]) recordError(err error) {
	e := err
	s.lastError.Store(&e)
	s.errors.record(err)
}
