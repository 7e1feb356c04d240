package sorter

// findCycle returns one cycle among the unplaced items of a failed sort.
//
// Every unplaced item has at least one unplaced predecessor (otherwise it
// would have been emitted), so walking predecessors from any unplaced item
// must revisit an item. The walk starts at the lowest unplaced item and
// always follows the lowest unplaced predecessor, which keeps the reported
// cycle deterministic.
//
// The result lists item indices in constraint direction (each element must
// precede the next, the last must precede the first), rotated so that the
// lowest item comes first.
func findCycle[T any](items []item[T], g *graph, placed []bool) []int {
	// 1) Lowest unplaced item.
	start := -1
	for i := range items {
		if !placed[i] && (start < 0 || less(items, i, start)) {
			start = i
		}
	}
	if start < 0 {
		return nil
	}

	// 2) Walk predecessors, recording the position of each visited item.
	onPath := make(map[int]int)
	var path []int
	cur := start
	for {
		if at, ok := onPath[cur]; ok {
			path = path[at:]
			break
		}
		onPath[cur] = len(path)
		path = append(path, cur)

		next := -1
		for _, p := range g.preds[cur] {
			if !placed[p] && (next < 0 || less(items, p, next)) {
				next = p
			}
		}
		if next < 0 {
			return nil // unreachable for a genuinely stuck sort
		}
		cur = next
	}

	// 3) The walk runs against the edges; flip it into constraint direction.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	// 4) Rotate to start at the lowest item.
	low := 0
	for i := range path {
		if less(items, path[i], path[low]) {
			low = i
		}
	}

	cycle := make([]int, 0, len(path))
	cycle = append(cycle, path[low:]...)

	return append(cycle, path[:low]...)
}

// cycleGroups renders a cycle as the group labels of its items.
func cycleGroups[T any](items []item[T], cycle []int) []string {
	out := make([]string, len(cycle))
	for i, idx := range cycle {
		out[i] = items[idx].group
	}

	return out
}
