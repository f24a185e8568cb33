package tide

import "context"

// Action describes a state transition request. A plain action is an
// immutable record whose Kind is the stable discriminant the reducer
// switches on; any other fields are kind-specific payload. Actions must not
// be mutated after dispatch.
//
// Effect is the one non-plain Action: the dispatch path matches it
// explicitly and never hands it to the reducer.
type Action interface {
	// Kind returns the action's discriminant.
	Kind() string
}

// Plain is a payload-less action identified only by its kind.
//
//	store.Dispatch(ctx, tide.Plain("RESET"))
//
// Actions carrying payload fields are ordinary structs implementing Action.
type Plain string

// Kind returns the action's discriminant.
func (p Plain) Kind() string { return string(p) }

// EffectKind is the discriminant reported by every Effect. Middleware can
// use it to recognize effects without a type assertion.
const EffectKind = "tide.effect"

// API is the store surface available to an Effect: dispatching follow-up
// actions and reading the current state. It deliberately excludes
// subscription management.
type API[S any] interface {
	Dispatch(ctx context.Context, action Action) error
	State() S
}

// Effect is an action that is behavior rather than data. When dispatched it
// is invoked with the store API and may dispatch zero or more plain actions,
// synchronously or after suspending (an effect that spawns a goroutine may
// keep dispatching after the original Dispatch call returns). Actions issued
// by one effect keep their issuance order; ordering between independently
// dispatched effects is unspecified.
//
// An error returned by an effect propagates to the dispatching caller and is
// recorded in the store's error history. Failures that should become visible
// state must be dispatched as plain actions by the effect itself.
type Effect[S any] func(ctx context.Context, api API[S]) error

// Kind returns EffectKind.
func (Effect[S]) Kind() string { return EffectKind }
