package tide

import (
	"reflect"
	"sort"
)

// Reducer computes the next state from the current state and an action.
// Reducers must be pure: no dispatching, no I/O, no mutation of the state
// argument. An action whose kind the reducer does not recognize must return
// the state argument unchanged, and a reducer used under Combine must return
// its default value when given nil state.
type Reducer[S any] func(state S, action Action) S

// Combine composes named slice reducers into a single reducer over a Tree.
// Each named reducer owns exactly one slice: for every action, every slice
// reducer runs against its own slice and the results are assembled into the
// next tree. If no slice changed identity, the original tree is returned
// unchanged, so upstream identity checks stay cheap.
//
// The first time the composed reducer runs, each slice reducer receives nil
// state and seeds the tree with its default value.
func Combine(reducers map[string]Reducer[any]) Reducer[Tree] {
	names := make([]string, 0, len(reducers))
	for name := range reducers {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(state Tree, action Action) Tree {
		if state == nil {
			state = emptyTree
		}
		next := state
		changed := false
		for _, name := range names {
			old, _ := state.Index(name)
			slice := reducers[name](old, action)
			if !identical(old, slice) {
				next = next.Assoc(name, slice)
				changed = true
			}
		}
		if !changed {
			return state
		}
		return next
	}
}

// identical reports whether two slice values are the same value in the
// identity sense reducers rely on: pointer-like kinds compare by pointer,
// comparable values by equality. It never panics on non-comparable values;
// those only compare identical through their pointers.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		if ra.Len() != rb.Len() {
			return false
		}
		return ra.Len() == 0 || ra.Pointer() == rb.Pointer()
	default:
		if !ra.Type().Comparable() {
			return false
		}
		return a == b
	}
}
