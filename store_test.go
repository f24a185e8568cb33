package tide

import (
	"context"
	"errors"
	"testing"
)

func TestStore_SeedsInitialState(t *testing.T) {
	store := New[Tree](Combine(treeReducers()))

	if got := Slice(store.State(), "tabs"); got != defaultTabs {
		t.Errorf("expected seeded tabs default, got %v", got)
	}
	if store.Phase() != PhaseIdle {
		t.Errorf("expected idle phase, got %s", store.Phase())
	}
}

func TestStore_DispatchReflectsImmediately(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	if err := store.Dispatch(ctx, receiveText{text: "hello"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if got := Slice(store.State(), "text"); got != "hello" {
		t.Errorf("expected state to reflect dispatch, got %v", got)
	}
}

func TestStore_NotifiesInSubscriptionOrder(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		store.Subscribe(func() {
			order = append(order, i)
		})
	}

	if err := store.Dispatch(ctx, receiveText{text: "x"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(order) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(order))
	}
	for i, got := range order {
		if got != i+1 {
			t.Errorf("notification %d: expected listener %d, got %d", i, i+1, got)
		}
	}
}

func TestStore_NotifiesOnEveryDispatch(t *testing.T) {
	// The store does not diff states; even an action no reducer recognizes
	// triggers a notification cycle.
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	count := 0
	store.Subscribe(func() { count++ })

	_ = store.Dispatch(ctx, Plain("UNRELATED"))
	_ = store.Dispatch(ctx, Plain("UNRELATED"))

	if count != 2 {
		t.Errorf("expected 2 notifications, got %d", count)
	}
}

func TestStore_UnsubscribeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	count := 0
	unsubscribe := store.Subscribe(func() { count++ })

	unsubscribe()
	unsubscribe()

	_ = store.Dispatch(ctx, receiveText{text: "x"})

	if count != 0 {
		t.Errorf("expected no notifications after unsubscribe, got %d", count)
	}
}

func TestStore_SelfUnsubscribeStopsFutureCycles(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	count := 0
	var unsubscribe func()
	unsubscribe = store.Subscribe(func() {
		count++
		unsubscribe()
	})

	_ = store.Dispatch(ctx, receiveText{text: "x"})
	_ = store.Dispatch(ctx, receiveText{text: "y"})

	if count != 1 {
		t.Errorf("expected exactly 1 notification, got %d", count)
	}
}

func TestStore_RemovalMidCycleSkipsRemainder(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	laterRan := false
	var removeLater func()
	store.Subscribe(func() {
		removeLater()
	})
	removeLater = store.Subscribe(func() {
		laterRan = true
	})

	_ = store.Dispatch(ctx, receiveText{text: "x"})

	if laterRan {
		t.Error("expected listener removed mid-cycle not to run")
	}
}

func TestStore_SubscribeMidCycleWaitsForNextCycle(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	lateCount := 0
	added := false
	store.Subscribe(func() {
		if !added {
			added = true
			store.Subscribe(func() { lateCount++ })
		}
	})

	_ = store.Dispatch(ctx, receiveText{text: "x"})
	if lateCount != 0 {
		t.Fatalf("expected late listener to miss the current cycle, got %d runs", lateCount)
	}

	_ = store.Dispatch(ctx, receiveText{text: "y"})
	if lateCount != 1 {
		t.Errorf("expected late listener to run on the next cycle, got %d runs", lateCount)
	}
}

func TestStore_ReentrantDispatchFails(t *testing.T) {
	ctx := context.Background()

	var store *Store[int]
	var reentrantErr error
	reducer := func(state int, action Action) int {
		if action.Kind() == "POKE" {
			reentrantErr = store.Dispatch(ctx, Plain("NESTED"))
		}
		return state
	}
	store = New[int](reducer)

	if err := store.Dispatch(ctx, Plain("POKE")); err != nil {
		t.Fatalf("outer Dispatch failed: %v", err)
	}
	if !errors.Is(reentrantErr, ErrReentrantDispatch) {
		t.Errorf("expected ErrReentrantDispatch, got %v", reentrantErr)
	}
}

func TestStore_DispatchDuringNotificationEnqueues(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	var phaseSeen Phase
	var textDuring any
	followed := false
	store.Subscribe(func() {
		if !followed {
			followed = true
			phaseSeen = store.Phase()
			if err := store.Dispatch(ctx, receiveText{text: "second"}); err != nil {
				t.Errorf("queued dispatch failed: %v", err)
			}
			// The queued action must not have been reduced yet.
			textDuring = Slice(store.State(), "text")
		}
	})

	if err := store.Dispatch(ctx, receiveText{text: "first"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if phaseSeen != PhaseNotifying {
		t.Errorf("expected notifying phase inside listener, got %s", phaseSeen)
	}
	if textDuring != "first" {
		t.Errorf("expected listener to observe its own cycle's state, got %v", textDuring)
	}
	if got := Slice(store.State(), "text"); got != "second" {
		t.Errorf("expected queue drained before idle, got %v", got)
	}
	if store.Phase() != PhaseIdle {
		t.Errorf("expected idle after dispatch, got %s", store.Phase())
	}
}

func TestStore_EffectNeverReachesReducer(t *testing.T) {
	ctx := context.Background()

	var kinds []string
	reducer := func(state int, action Action) int {
		if action.Kind() != initKind {
			kinds = append(kinds, action.Kind())
		}
		return state
	}
	store := New[int](reducer)

	eff := Effect[int](func(ctx context.Context, api API[int]) error {
		if err := api.Dispatch(ctx, Plain("FIRST")); err != nil {
			return err
		}
		return api.Dispatch(ctx, Plain("SECOND"))
	})

	if err := store.Dispatch(ctx, eff); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(kinds) != 2 || kinds[0] != "FIRST" || kinds[1] != "SECOND" {
		t.Errorf("expected reducer to observe [FIRST SECOND], got %v", kinds)
	}
}

func TestStore_AsyncEffectDispatchesAfterSuspension(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()))

	settled := make(chan struct{})
	eff := Effect[Tree](func(ctx context.Context, api API[Tree]) error {
		go func() {
			defer close(settled)
			if err := api.Dispatch(ctx, receiveText{text: "late"}); err != nil {
				t.Errorf("deferred dispatch failed: %v", err)
			}
		}()
		return nil
	})

	if err := store.Dispatch(ctx, eff); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	<-settled

	if got := Slice(store.State(), "text"); got != "late" {
		t.Errorf("expected deferred dispatch to land, got %v", got)
	}
}

func TestStore_EffectErrorsRecorded(t *testing.T) {
	ctx := context.Background()
	store := New[Tree](Combine(treeReducers()),
		WithErrorHistory[Tree](2),
	)

	boom := errors.New("boom")
	eff := Effect[Tree](func(context.Context, API[Tree]) error {
		return boom
	})

	if err := store.Dispatch(ctx, eff); !errors.Is(err, boom) {
		t.Fatalf("expected effect error returned, got %v", err)
	}
	if !errors.Is(store.LastError(), boom) {
		t.Errorf("expected LastError boom, got %v", store.LastError())
	}

	second := errors.New("again")
	third := errors.New("still")
	_ = store.Dispatch(ctx, Effect[Tree](func(context.Context, API[Tree]) error { return second }))
	_ = store.Dispatch(ctx, Effect[Tree](func(context.Context, API[Tree]) error { return third }))

	history := store.ErrorHistory()
	if len(history) != 2 {
		t.Fatalf("expected history capped at 2, got %d", len(history))
	}
	if !errors.Is(history[0], second) || !errors.Is(history[1], third) {
		t.Errorf("expected [again still], got %v", history)
	}
}
