// SPDX-License-Identifier: MIT
// Package: lvtopo/sorter
//
// sorter.go — the Sorter type: item store plus published order.
//
// Policy:
//   • Every mutating call re-sorts the whole store before returning.
//   • The published order is replaced only after a successful sort.
//   • Accessors return copies; callers never alias internal slices.

package sorter

import (
	"log/slog"
	"sync"
)

// Sorter accumulates items of payload type T and keeps them in a total order
// that satisfies every group constraint declared so far.
//
// The zero value is not usable; construct with New.
type Sorter[T any] struct {
	mu     sync.RWMutex // guards items and nodes
	items  []item[T]    // store, in registration order (items[i].seq == i)
	nodes  []T          // published order of the last successful sort
	logger *slog.Logger
}

// New returns an empty Sorter configured by opts.
// Complexity: O(len(opts)).
func New[T any](opts ...SorterOption) *Sorter[T] {
	cfg := defaultSorterConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Sorter[T]{
		nodes:  []T{},
		logger: cfg.logger,
	}
}

// Add registers a single node. It is shorthand for AddAll([]T{node}, opts...).
func (s *Sorter[T]) Add(node T, opts ...Option) ([]T, error) {
	return s.AddAll([]T{node}, opts...)
}

// AddAll registers every node of nodes with the same declaration, re-sorts
// the store and returns the new published order.
//
// The call is atomic: on ErrConstraintViolation nothing is appended, and on
// ErrDependencyCycle the appended items are removed again and the previous
// order stays published. An empty nodes slice re-validates the store without
// changing it.
func (s *Sorter[T]) AddAll(nodes []T, opts ...Option) ([]T, error) {
	// 1) Resolve and validate the shared declaration.
	o := newItemOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2) Append, then sort the whole store.
	mark := len(s.items)
	s.items = appendItems(s.items, nodes, o)
	if err := s.publish(addContext(o.group)); err != nil {
		// 3) Roll the batch back; earlier items are untouched.
		clear(s.items[mark:])
		s.items = s.items[:mark]

		return nil, err
	}

	return s.snapshot(), nil
}

// Sort re-runs the engine over the unchanged store and republishes the
// result. Repeated calls on an unchanged store return the same order.
func (s *Sorter[T]) Sort() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.publish(sortContext); err != nil {
		return nil, err
	}

	return s.snapshot(), nil
}

// Nodes returns a copy of the order published by the last successful call.
func (s *Sorter[T]) Nodes() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

// Len reports how many items the store holds. After a failed Merge this
// includes the committed donor items even though Nodes does not.
func (s *Sorter[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// publish sorts the store and replaces the published order. On a cycle it
// leaves nodes untouched and returns ErrDependencyCycle wrapped with context.
// Callers hold the write lock.
func (s *Sorter[T]) publish(context string) error {
	res := sortItems(s.items)
	if res.order == nil {
		groups := cycleGroups(s.items, res.cycle)
		s.logger.Warn("sorter: dependency cycle",
			"items", len(s.items),
			"edges", res.edges,
			"cycle", groups,
		)

		return cycleError(context, groups)
	}

	nodes := make([]T, len(res.order))
	for i, idx := range res.order {
		nodes[i] = s.items[idx].node
	}
	s.nodes = nodes
	s.logger.Debug("sorter: order published",
		"items", len(s.items),
		"edges", res.edges,
	)

	return nil
}

// snapshot copies the published order. Callers hold at least a read lock.
func (s *Sorter[T]) snapshot() []T {
	out := make([]T, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// snapshotItems copies the store under the read lock; used by Merge on donors.
func (s *Sorter[T]) snapshotItems() []item[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]item[T], len(s.items))
	copy(out, s.items)

	return out
}
