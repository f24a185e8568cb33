package tide

import "github.com/zoobzio/capitan"

// Dispatch cycle signals.
var (
	// StoreDispatched is emitted after the reducer produces the next state.
	StoreDispatched = capitan.NewSignal(
		"tide.store.dispatched",
		"Action reduced into the state tree",
	)

	// StoreNotified is emitted after a notification pass completes.
	StoreNotified = capitan.NewSignal(
		"tide.store.notified",
		"Subscribers notified of a dispatch cycle",
	)

	// StoreActionQueued is emitted when a dispatch made during notification
	// is enqueued for the next cycle.
	StoreActionQueued = capitan.NewSignal(
		"tide.store.action.queued",
		"Action enqueued during notification",
	)
)

// Middleware and effect signals.
var (
	// EffectStarted is emitted when the dispatch path invokes an effect.
	EffectStarted = capitan.NewSignal(
		"tide.effect.started",
		"Effect invocation started",
	)

	// EffectFailed is emitted when an effect returns an error.
	EffectFailed = capitan.NewSignal(
		"tide.effect.failed",
		"Effect returned an error",
	)

	// ActionLogged is emitted by UseLogging for every action entering the
	// middleware chain.
	ActionLogged = capitan.NewSignal(
		"tide.action.logged",
		"Action entered the middleware chain",
	)

	// ActionFiltered is emitted by UseFilter when an action is dropped.
	ActionFiltered = capitan.NewSignal(
		"tide.action.filtered",
		"Action dropped by filter middleware",
	)
)
