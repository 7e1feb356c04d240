// Package lvtopo orders items whose relative position is declared through
// groups rather than through direct references to each other.
//
// What is lvtopo?
//
//	A small, thread-safe library plus CLI:
//		• sorter:   incremental group-constrained topological sort (generic)
//		• manifest: YAML / TOML / JSON manifests loaded into sorters
//		• render:   text, JSON and table output of a published order
//		• cmd/lvtopo: the command line front end
//
// Why?
//
//   - Plugins, middlewares and extension points are registered in many
//     places; each declares "run me before auth" or "after logging" and the
//     final order has to fall out of those declarations.
//   - Cycles are reported at registration time, with the groups involved.
//   - Ordering is deterministic: without constraints it is registration (or
//     explicit rank) order.
//
// Quick example:
//
//	s := sorter.New[string]()
//	s.Add("auth", sorter.WithGroup("auth"), sorter.WithBefore("handler"))
//	s.Add("logger", sorter.WithGroup("logging"), sorter.WithBefore("auth"))
//	nodes, _ := s.Add("handler", sorter.WithGroup("handler"))
//	// nodes == [logger auth handler]
//
//	go install github.com/katalvlaran/lvtopo/cmd/lvtopo@latest
package lvtopo
