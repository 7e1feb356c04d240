// SPDX-License-Identifier: MIT
// Package: lvtopo/sorter
//
// engine.go — graph expansion and linearization.
//
// The constraint graph is rebuilt from the item list on every sort:
//
//  1. Group index: label → member indices (a plain Go map, so labels such as
//     "constructor" or "__proto__" carry no special meaning).
//  2. Before-expansion: A before g ⇒ A is a predecessor of every member of g.
//  3. After-expansion:  A after g  ⇒ every member of g is a predecessor of A.
//  4. Linearization: Kahn's algorithm with a min-heap on the tie-break key,
//     so the emitted item is always the smallest-key item whose predecessors
//     have all been emitted.
//
// Complexity: Time O(N log N + E), Memory O(N + E).

package sorter

import "container/heap"

// graph is the ephemeral item-level constraint graph of one sort.
type graph struct {
	preds [][]int // preds[i]: direct required predecessors of item i
	succs [][]int // succs[i]: items that list i as a predecessor
	edges int     // number of distinct edges
}

// edge is a directed "from must precede to" pair, used for de-duplication.
type edge struct{ from, to int }

// buildGraph expands group-level declarations into item-level edges.
// Referenced groups without members contribute nothing.
func buildGraph[T any](items []item[T]) *graph {
	n := len(items)
	g := &graph{
		preds: make([][]int, n),
		succs: make([][]int, n),
	}

	// 1) Group index in store order.
	groups := make(map[string][]int)
	for i := range items {
		groups[items[i].group] = append(groups[items[i].group], i)
	}

	// 2) + 3) Expand before/after; the same pair may be produced by both
	//    sides (A before g, and a member of g after A's group).
	seen := make(map[edge]struct{})
	link := func(from, to int) {
		e := edge{from: from, to: to}
		if _, dup := seen[e]; dup {
			return
		}
		seen[e] = struct{}{}
		g.preds[to] = append(g.preds[to], from)
		g.succs[from] = append(g.succs[from], to)
		g.edges++
	}
	for i := range items {
		for _, label := range items[i].before {
			for _, member := range groups[label] {
				link(i, member)
			}
		}
		for _, label := range items[i].after {
			for _, member := range groups[label] {
				link(member, i)
			}
		}
	}

	return g
}

// sortResult is the outcome of one engine run.
type sortResult struct {
	order []int // item indices in emission order; nil on cycle
	cycle []int // one offending cycle, in constraint direction; nil on success
	edges int
}

// sortItems linearizes items. On failure it reports one cycle among the
// items that could not be placed.
func sortItems[T any](items []item[T]) sortResult {
	g := buildGraph(items)
	n := len(items)

	// 1) Remaining-predecessor counters; items with none are ready.
	pending := make([]int, n)
	ready := make(readyQueue, 0, n)
	for i := range items {
		pending[i] = len(g.preds[i])
		if pending[i] == 0 {
			ready = append(ready, readyEntry{index: i, key: items[i].key(), seq: items[i].seq})
		}
	}
	heap.Init(&ready)

	// 2) Emit the smallest ready item and release its successors.
	placed := make([]bool, n)
	order := make([]int, 0, n)
	for ready.Len() > 0 {
		next := heap.Pop(&ready).(readyEntry)
		placed[next.index] = true
		order = append(order, next.index)
		for _, s := range g.succs[next.index] {
			pending[s]--
			if pending[s] == 0 {
				heap.Push(&ready, readyEntry{index: s, key: items[s].key(), seq: items[s].seq})
			}
		}
	}

	// 3) Anything left over sits on or behind a cycle.
	if len(order) != n {
		return sortResult{cycle: findCycle(items, g, placed), edges: g.edges}
	}

	return sortResult{order: order, edges: g.edges}
}

// readyEntry is an item whose predecessors have all been emitted.
type readyEntry struct {
	index int     // position in the item slice
	key   float64 // rank or sequence
	seq   int     // tie-break for equal keys
}

// readyQueue is a min-heap of readyEntry ordered by (key, seq).
type readyQueue []readyEntry

// Len returns the number of ready items.
func (q readyQueue) Len() int { return len(q) }

// Less orders by key, then by sequence.
func (q readyQueue) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x; called by heap.Push.
func (q *readyQueue) Push(x interface{}) { *q = append(*q, x.(readyEntry)) }

// Pop removes the last entry; called by heap.Pop.
func (q *readyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]

	return e
}

// less reports whether item a precedes item b in tie-break order.
func less[T any](items []item[T], a, b int) bool {
	ka, kb := items[a].key(), items[b].key()
	if ka != kb {
		return ka < kb
	}

	return items[a].seq < items[b].seq
}
