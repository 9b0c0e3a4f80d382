package partialgrid_test

import (
	"testing"

	"github.com/katalvlaran/localcolor/coloring"
	"github.com/katalvlaran/localcolor/partialgrid"
)

// checkerboard fills the grid with a proper 2-coloring.
func checkerboard(b *testing.B, rows, cols int) *partialgrid.PartialGrid {
	b.Helper()
	p, err := partialgrid.New(rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			_ = p.Put(r, c, (r+c)%2)
		}
	}
	return p
}

// BenchmarkGraph measures inducing the graph from a full 32×32 grid.
func BenchmarkGraph(b *testing.B) {
	p := checkerboard(b, 32, 32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Graph()
	}
}

// BenchmarkDynamicStep measures a full step (graph build, BFS audit,
// write-back) at the center of a full 32×32 grid.
func BenchmarkDynamicStep(b *testing.B) {
	p := checkerboard(b, 32, 32)
	algo := coloring.NeighborhoodGreedy(2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.DynamicStep(16, 16, algo); err != nil {
			b.Fatal(err)
		}
	}
}
