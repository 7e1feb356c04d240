// Package sorter_test provides runnable examples for the sorter package.
package sorter_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtopo/sorter"
)

// ExampleSorter_Add orders three middlewares registered out of order.
func ExampleSorter_Add() {
	s := sorter.New[string]()

	// 1) auth must run before the handler, logging before auth.
	_, _ = s.Add("auth", sorter.WithGroup("auth"), sorter.WithBefore("handler"))
	_, _ = s.Add("logger", sorter.WithGroup("logging"), sorter.WithBefore("auth"))
	nodes, err := s.Add("handler", sorter.WithGroup("handler"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(nodes)
	// Output: [logger auth handler]
}

// ExampleSorter_Add_cycle shows the error returned when a registration closes
// a cycle; the earlier order stays published.
func ExampleSorter_Add_cycle() {
	s := sorter.New[string]()
	_, _ = s.Add("a", sorter.WithGroup("a"), sorter.WithBefore("b"))

	_, err := s.Add("b", sorter.WithGroup("b"), sorter.WithBefore("a"))
	fmt.Println(errors.Is(err, sorter.ErrDependencyCycle))
	fmt.Println(err)
	fmt.Println(s.Nodes())
	// Output:
	// true
	// sorter: dependency cycle: item added into group b created a dependencies error (cycle: a -> b -> a)
	// [a]
}

// ExampleSorter_Merge combines a core pipeline with a plugin store. Ranks
// place unconstrained items across both stores.
func ExampleSorter_Merge() {
	pipeline := sorter.New[string]()
	_, _ = pipeline.Add("parse", sorter.WithGroup("parse"), sorter.WithSort(10))
	_, _ = pipeline.Add("render", sorter.WithGroup("render"), sorter.WithAfter("parse"), sorter.WithSort(30))

	plugin := sorter.New[string]()
	_, _ = plugin.Add("lint", sorter.WithAfter("parse"), sorter.WithBefore("render"), sorter.WithSort(20))
	_, _ = plugin.Add("banner", sorter.WithSort(5))

	nodes, err := pipeline.Merge(plugin)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(nodes)
	// Output: [banner parse lint render]
}

// ExampleSorter_AddAll registers a batch of struct payloads that share one
// declaration.
func ExampleSorter_AddAll() {
	type step struct {
		Name string
	}

	s := sorter.New[step]()
	_, _ = s.Add(step{Name: "teardown"}, sorter.WithGroup("teardown"))
	nodes, _ := s.AddAll(
		[]step{{Name: "migrate"}, {Name: "seed"}},
		sorter.WithGroup("setup"),
		sorter.WithBefore("teardown"),
	)

	for _, n := range nodes {
		fmt.Println(n.Name)
	}
	// Output:
	// migrate
	// seed
	// teardown
}
