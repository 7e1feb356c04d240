package sorter

import "math"

// item is one registered payload together with its declaration.
// Items are never mutated after they enter a store, except for seq, which
// Merge rewrites on the receiver's copy.
type item[T any] struct {
	seq    int      // position in the owning store; unique per store
	group  string   // NoGroup for unassociated items
	before []string // shared by all items of one batch; read-only
	after  []string // shared by all items of one batch; read-only
	rank   float64  // explicit tie-break, meaningful only if ranked
	ranked bool
	node   T
}

// key returns the tie-break key: the explicit rank, or the sequence.
func (it *item[T]) key() float64 {
	if it.ranked {
		return it.rank
	}

	return float64(it.seq)
}

// validate checks a batch declaration before anything is appended.
// The checks mirror the order in which the declaration is read: before
// list first, then after list.
func (o *itemOptions) validate() error {
	for _, g := range o.before {
		switch {
		case g == NoGroup || g == "":
			return constraintErrorf("item cannot come before unassociated items")
		case g == o.group:
			return constraintErrorf("item cannot come before itself: %s", g)
		}
	}
	for _, g := range o.after {
		switch {
		case g == NoGroup || g == "":
			return constraintErrorf("item cannot come after unassociated items")
		case g == o.group:
			return constraintErrorf("item cannot come after itself: %s", g)
		}
	}
	if o.ranked && math.IsNaN(o.rank) {
		return constraintErrorf("sort rank must be a number")
	}

	return nil
}

// appendItems appends one item per node, all sharing o, with consecutive
// sequence numbers starting at len(items). The caller validates o first.
func appendItems[T any](items []item[T], nodes []T, o itemOptions) []item[T] {
	for _, node := range nodes {
		items = append(items, item[T]{
			seq:    len(items),
			group:  o.group,
			before: o.before,
			after:  o.after,
			rank:   o.rank,
			ranked: o.ranked,
			node:   node,
		})
	}

	return items
}
