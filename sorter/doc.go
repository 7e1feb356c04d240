// Package sorter maintains a deterministic total order over a growing set of
// opaque items whose relative position is declared through groups.
//
// What:
//
//   - Every item belongs to at most one group and may declare that it must
//     come before and/or after other groups (never individual items).
//   - Items are registered incrementally with Add/AddAll; after every call the
//     whole store is re-sorted and the published order (Nodes) is replaced.
//   - Two or more independently built sorters can be combined with Merge.
//
// Why:
//
//   - Linearize plugin, middleware or extension registrations that are
//     declared in different places into one execution order.
//   - Catch dependency cycles at registration time instead of at run time.
//
// Ordering rules:
//
//   - For an item A with WithBefore("g"), every member of group g is placed
//     after A. For WithAfter("g"), every member of g is placed before A.
//   - Among items whose predecessors are all placed, the one with the smallest
//     tie-break key goes first. The key is the explicit rank (WithSort) when
//     given, otherwise the registration sequence; equal keys fall back to the
//     sequence. Without any constraints the result is registration order.
//
// Errors:
//
//   - ErrConstraintViolation  an item names its own group in before/after, or
//     names the unassociated sentinel (NoGroup); nothing is appended.
//   - ErrDependencyCycle      the accumulated constraints admit no order; the
//     previously published order stays in place.
//
// Merge semantics:
//
//   - Donor items are appended to the receiver with their sequence numbers
//     offset by the receiver's size, so unranked items keep each store's
//     internal order and donors follow the receiver. Ranked items interleave
//     across stores by rank value.
//   - A merge that produces a cycle still commits the donor items to the
//     receiver (only the published order is left untouched); an Add that
//     produces a cycle is rolled back.
//
// Concurrency:
//
//   - A Sorter is safe for concurrent use; calls are serialized by an
//     internal RWMutex. Sorting is synchronous and never blocks on I/O.
//
// Complexity:
//
//   - Add/AddAll/Merge/Sort: Time O(N log N + E), Memory O(N + E), where E is
//     the number of item-level edges produced by group expansion (up to N²).
package sorter
