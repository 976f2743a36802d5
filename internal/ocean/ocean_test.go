package ocean

import (
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
)

func flatHeightmap(w int, height float64) *heightmap.Heightmap {
	side := w + 1
	h := &heightmap.Heightmap{W: w, Values: make([]float64, side*side)}
	for i := range h.Values {
		h.Values[i] = height
	}
	return h
}

func TestFloodFillAllBelowSeaAllBoundary(t *testing.T) {
	h := flatHeightmap(16, -5)
	m := Build(h, 16, 0)
	m.FloodFill(EdgeFlags{North: true, South: true, East: true, West: true})

	for z := 0; z < m.W; z++ {
		for x := 0; x < m.W; x++ {
			if m.IsOcean(x, z) != m.IsBelowSeaLevel(x, z) {
				t.Fatalf("expected IsOcean == IsBelowSeaLevel at (%d,%d)", x, z)
			}
		}
	}
}

func TestInlandLakeRing(t *testing.T) {
	w := 16
	side := w + 1
	h := &heightmap.Heightmap{W: w, Values: make([]float64, side*side)}
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			if x == 0 || x == side-1 || z == 0 || z == side-1 {
				h.Values[z*side+x] = 10
			} else {
				h.Values[z*side+x] = -2
			}
		}
	}
	m := Build(h, w, 0)
	// No edge declared world boundary: interior below-sea cells are isolated.
	m.FloodFill(EdgeFlags{})

	for z := 1; z < w-1; z++ {
		for x := 1; x < w-1; x++ {
			if !m.IsBelowSeaLevel(x, z) {
				continue
			}
			if m.IsOcean(x, z) {
				t.Fatalf("expected inland cell (%d,%d) not ocean", x, z)
			}
			if !m.IsInlandLake(x, z) {
				t.Fatalf("expected inland cell (%d,%d) to be an inland lake", x, z)
			}
		}
	}
}

func TestPropagateFromNeighborIdempotent(t *testing.T) {
	h := flatHeightmap(16, -5)
	m := Build(h, 16, 0)
	// No edge declared boundary locally; ocean must arrive via propagation.
	m.FloodFill(EdgeFlags{})

	neighborEdge := make([]bool, 16)
	for i := range neighborEdge {
		neighborEdge[i] = true
	}

	m.PropagateFromNeighbor(EdgeWest, neighborEdge)
	snapshot := make([]bool, len(m.Ocean))
	copy(snapshot, m.Ocean)

	m.PropagateFromNeighbor(EdgeWest, neighborEdge)
	for i := range m.Ocean {
		if m.Ocean[i] != snapshot[i] {
			t.Fatalf("propagation not idempotent at cell %d", i)
		}
	}

	for z := 0; z < m.W; z++ {
		for x := 0; x < m.W; x++ {
			if !m.IsOcean(x, z) {
				t.Fatalf("expected full flood from west edge, missing (%d,%d)", x, z)
			}
		}
	}
}

func TestOutOfBoundsDefaults(t *testing.T) {
	h := flatHeightmap(8, -5)
	m := Build(h, 8, 0)
	m.FloodFill(EdgeFlags{North: true})
	if m.IsOcean(-1, 0) {
		t.Fatal("expected false for out-of-bounds IsOcean")
	}
	if m.IsBelowSeaLevel(100, 100) {
		t.Fatal("expected false for out-of-bounds IsBelowSeaLevel")
	}
}
