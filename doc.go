/*
Package tide provides a unidirectional state container: a single store holds
an immutable state value, pure reducers compute transitions, and a middleware
chain lets effectful actions sequence asynchronous work as ordinary
dispatches.

# Basic Usage

Define a reducer and create a store:

	counter := func(state int, action tide.Action) int {
	    switch action.Kind() {
	    case "INCREMENT":
	        return state + 1
	    default:
	        return state
	    }
	}

	store := tide.New[int](counter)

	_ = store.Dispatch(ctx, tide.Plain("INCREMENT"))
	n := store.State() // 1

# State Trees

For keyed state, Combine composes named slice reducers over a persistent
tree. Every transition produces a new tree; slices untouched by an action
keep their previous value by reference, so readers can detect change with a
plain identity check:

	reducer := tide.Combine(map[string]tide.Reducer[any]{
	    "text": textReducer,
	    "tabs": tabsReducer,
	})

	store := tide.New[tide.Tree](reducer)
	text := tide.Slice(store.State(), "text")

Each slice reducer receives nil state on the store's first run and must
return its default value, seeding the tree. A reducer that does not
recognize an action's kind must return its state argument unchanged.

# Subscriptions

Subscribe registers a listener invoked after every dispatch cycle. The
returned function removes the listener and is safe to call more than once:

	unsubscribe := store.Subscribe(func() {
	    render(store.State())
	})
	defer unsubscribe()

The store notifies after every successfully reduced action, unconditionally.
Change detection is the subscriber's job: read the relevant slice and
compare it by identity against the last value seen. Listeners run
synchronously in subscription order against a snapshot of the subscriber
list taken when notification starts.

# Effects

An Effect is an action that is behavior rather than data. The dispatch path
matches it explicitly and invokes it with the store API instead of passing
it to the reducer:

	fetchText := tide.Effect[tide.Tree](func(ctx context.Context, api tide.API[tide.Tree]) error {
	    resp, err := client.FetchText(ctx, "/text")
	    if err != nil {
	        return api.Dispatch(ctx, receiveError(err))
	    }
	    return api.Dispatch(ctx, receiveText(resp.Text))
	})

	_ = store.Dispatch(ctx, fetchText)

An effect may dispatch before or after suspending; actions it issues keep
their issuance order. Errors returned by an effect surface to the dispatch
caller and are recorded in the store's error history.

# Dispatch Discipline

One dispatch is in flight at a time. A reducer that dispatches during its
own invocation gets ErrReentrantDispatch. A listener that dispatches during
notification enqueues the action; the store drains the queue before the
cycle ends, so listeners never observe a half-applied transition.

# Middleware

Middleware wraps the dispatch entry point in declared order, ahead of the
effect interceptor:

	store := tide.New[tide.Tree](reducer,
	    tide.WithMiddleware(
	        tide.UseLogging[tide.Tree](),
	        tide.UseFilter[tide.Tree](func(a tide.Action) bool {
	            return a.Kind() != "NOOP"
	        }),
	    ),
	)

# Content Resolution

The content subpackage resolves runtime-polymorphic payloads (string,
sequence, or object-with-text bodies) into typed variants sharing one
rendering contract, and fetches them from a remote resource.
*/
package tide
