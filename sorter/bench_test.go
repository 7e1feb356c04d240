package sorter_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtopo/sorter"
)

// BenchmarkSorter_Chain measures incremental registration of a chain where
// every item must follow the previous one.
func BenchmarkSorter_Chain(b *testing.B) {
	const N = 500
	names := make([]string, N)
	for i := range names {
		names[i] = fmt.Sprintf("g%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := sorter.New[int]()
		for j := 0; j < N; j++ {
			opts := []sorter.Option{sorter.WithGroup(names[j])}
			if j > 0 {
				opts = append(opts, sorter.WithAfter(names[j-1]))
			}
			_, _ = s.Add(j, opts...)
		}
	}
}

// BenchmarkSorter_Sort measures a single re-sort of a store of N items in
// G groups, each group ordered after the previous one (~N²/G edges).
func BenchmarkSorter_Sort(b *testing.B) {
	const (
		N = 2000
		G = 50
	)
	s := sorter.New[int]()
	for j := 0; j < N; j++ {
		g := j % G
		opts := []sorter.Option{sorter.WithGroup(fmt.Sprintf("g%d", g))}
		if g > 0 {
			opts = append(opts, sorter.WithAfter(fmt.Sprintf("g%d", g-1)))
		}
		if _, err := s.Add(j, opts...); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.Sort()
	}
}

// BenchmarkSorter_Merge measures merging two independently built stores.
func BenchmarkSorter_Merge(b *testing.B) {
	const N = 1000
	build := func(offset int) *sorter.Sorter[int] {
		s := sorter.New[int]()
		for j := 0; j < N; j++ {
			_, _ = s.Add(offset+j, sorter.WithGroup(fmt.Sprintf("g%d", j%10)), sorter.WithSort(float64(j)))
		}

		return s
	}
	left, right := build(0), build(N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		dst := sorter.New[int]()
		_, _ = dst.Merge(left, right)
	}
}
