package tide

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DispatchFunc is a dispatch entry point: one link of the middleware chain,
// or the store's base dispatch at the end of it.
type DispatchFunc func(ctx context.Context, action Action) error

// Middleware wraps a dispatch entry point. Each link receives the store API
// and the dispatch of the links after it, and may inspect, transform, or
// short-circuit the action before forwarding. Links compose in the order
// they were declared in WithMiddleware; the effect interceptor always sits
// between the last link and the reducer, so middleware observes effects
// (as actions of EffectKind) before they are invoked.
type Middleware[S any] func(api API[S], next DispatchFunc) DispatchFunc

// interceptEffects is the innermost chain link. Effects are matched
// explicitly and invoked with the store API; they never reach the reducer.
// Whatever the reducer observes from an effect comes from the plain actions
// the effect itself dispatches.
func interceptEffects[S any](s *Store[S], next DispatchFunc) DispatchFunc {
	return func(ctx context.Context, action Action) error {
		eff, ok := action.(Effect[S])
		if !ok {
			return next(ctx, action)
		}

		capitan.Emit(ctx, EffectStarted)
		if err := eff(ctx, s); err != nil {
			s.recordError(err)
			capitan.Emit(ctx, EffectFailed,
				KeyError.Field(err.Error()),
			)
			if s.metrics != nil {
				s.metrics.OnEffectFailure(err)
			}
			return err
		}
		return nil
	}
}

// UseLogging emits a signal for every action entering the chain.
func UseLogging[S any]() Middleware[S] {
	return func(_ API[S], next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, action Action) error {
			capitan.Emit(ctx, ActionLogged,
				KeyKind.Field(action.Kind()),
			)
			return next(ctx, action)
		}
	}
}

// UseFilter drops actions that fail the predicate. Dropped actions are
// skipped silently apart from an ActionFiltered signal; Dispatch returns nil.
func UseFilter[S any](predicate func(Action) bool) Middleware[S] {
	return func(_ API[S], next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, action Action) error {
			if !predicate(action) {
				capitan.Emit(ctx, ActionFiltered,
					KeyKind.Field(action.Kind()),
				)
				return nil
			}
			return next(ctx, action)
		}
	}
}

// UseTimeout applies a deadline to downstream processing. The deadline
// covers the synchronous part of the dispatch, which for effects includes
// everything up to their first suspension; work an effect schedules beyond
// the dispatch call sees the context canceled once it returns.
func UseTimeout[S any](clock clockz.Clock, d time.Duration) Middleware[S] {
	return func(_ API[S], next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, action Action) error {
			ctx, cancel := clock.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, action)
		}
	}
}
