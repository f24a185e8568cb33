package tide

import (
	"src.elv.sh/pkg/persistent/hash"
	"src.elv.sh/pkg/persistent/hashmap"
)

// Tree is the keyed root state produced by Combine: a persistent map from
// slice name to slice value. It is immutable; Assoc returns a new tree
// sharing structure with the old one, so untouched slices keep their
// identity across transitions and any reader holds a stable snapshot.
type Tree = hashmap.Map

var emptyTree = hashmap.New(
	func(k1, k2 any) bool { return k1 == k2 },
	func(k any) uint32 { return hash.String(k.(string)) },
)

// NewTree returns an empty state tree.
func NewTree() Tree { return emptyTree }

// Slice returns the named slice of the tree, or nil if the tree is nil or
// the slice has never been seeded.
func Slice(t Tree, name string) any {
	if t == nil {
		return nil
	}
	v, _ := t.Index(name)
	return v
}
