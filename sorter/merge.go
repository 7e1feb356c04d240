package sorter

// Merge appends the items of every non-nil donor to s, re-sorts the combined
// store and returns the new published order. Donors are not modified.
//
// Donor sequences are renumbered to follow the receiver's (and earlier
// donors') items, preserving each donor's internal order. Unranked items
// therefore land after the receiver's items on ties, while ranked items from
// all stores interleave by rank.
//
// On ErrDependencyCycle the donor items stay committed to s (Len grows) but
// the previously published order is kept. Merging s into itself appends a
// copy of its current items.
func (s *Sorter[T]) Merge(others ...*Sorter[T]) ([]T, error) {
	// 1) Snapshot donors before taking our own lock; a donor may be s itself,
	//    and two sorters merging into each other must not deadlock.
	batches := make([][]item[T], 0, len(others))
	for _, other := range others {
		if other == nil {
			continue
		}
		batches = append(batches, other.snapshotItems())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2) Transplant with renumbered sequences.
	for _, batch := range batches {
		for _, it := range batch {
			it.seq = len(s.items)
			s.items = append(s.items, it)
		}
	}

	// 3) Re-sort the union; no rollback on failure.
	if err := s.publish(mergeContext); err != nil {
		return nil, err
	}

	return s.snapshot(), nil
}
