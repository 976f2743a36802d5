package ocean

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
)

// TestPropagateFromNeighborIdempotentProperty generalises
// TestPropagateFromNeighborIdempotent from one fixed flat heightmap/edge to
// arbitrary per-cell heights and a randomly chosen edge (spec §8 invariant
// 7, "Ocean idempotence").
func TestPropagateFromNeighborIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(4, 24).Draw(t, "w")
		seaLevel := rapid.Float64Range(-5, 5).Draw(t, "seaLevel")
		side := w + 1

		h := &heightmap.Heightmap{W: w, Values: make([]float64, side*side)}
		for i := range h.Values {
			h.Values[i] = rapid.Float64Range(-10, 10).Draw(t, "height")
		}

		m := Build(h, w, seaLevel)
		m.FloodFill(EdgeFlags{})

		edge := Edge(rapid.IntRange(0, 3).Draw(t, "edge"))
		neighborEdge := make([]bool, w)
		for i := range neighborEdge {
			neighborEdge[i] = rapid.Bool().Draw(t, "neighborCellOcean")
		}

		m.PropagateFromNeighbor(edge, neighborEdge)
		snapshot := make([]bool, len(m.Ocean))
		copy(snapshot, m.Ocean)

		m.PropagateFromNeighbor(edge, neighborEdge)
		for i := range m.Ocean {
			if m.Ocean[i] != snapshot[i] {
				t.Fatalf("propagation not idempotent at cell %d (w=%d, seaLevel=%v)", i, w, seaLevel)
			}
		}
	})
}
