package lake

import (
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/drainage"
	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
)

// bowlHeightmap builds a symmetric depression with no outlet so priority
// flood must classify it as a single closed basin.
func bowlHeightmap(w int) *heightmap.Heightmap {
	side := w + 1
	h := &heightmap.Heightmap{W: w, Values: make([]float64, side*side)}
	cx, cz := float64(side-1)/2, float64(side-1)/2
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			dx, dz := float64(x)-cx, float64(z)-cz
			dist := dx*dx + dz*dz
			h.Values[z*side+x] = 10 + dist*0.5
		}
	}
	return h
}

func TestBuildDetectsBowlBasin(t *testing.T) {
	h := bowlHeightmap(24)
	d := drainage.Compute(h, 24, -100, 0.5)

	net := Build(d, h)
	if len(net.Basins) == 0 {
		t.Fatal("expected at least one basin in a closed bowl")
	}

	found := false
	for i, b := range net.Basins {
		if len(b.Cells) >= minBasinSize {
			found = true
			_ = i
		}
		if b.SurfaceHeight < b.BasinFloor {
			t.Fatalf("basin surface height %v below floor %v", b.SurfaceHeight, b.BasinFloor)
		}
	}
	if !found {
		t.Fatal("no basin met minBasinSize")
	}
}

func TestApplyNeverRaisesTerrain(t *testing.T) {
	h := bowlHeightmap(24)
	d := drainage.Compute(h, 24, -100, 0.5)
	net := Build(d, h)

	before := make([]float64, len(h.Values))
	copy(before, h.Values)

	Apply(h, net, Adjustments{BedFlatness: 0.8, ShorelineBlend: 0.5, CellSize: 0.5})

	for i := range h.Values {
		if h.Values[i] > before[i]+1e-9 {
			t.Fatalf("lake adjustment raised cell %d: %v -> %v", i, before[i], h.Values[i])
		}
	}
}

func TestDepthAtMatchesSurfaceMinusTerrain(t *testing.T) {
	h := bowlHeightmap(24)
	d := drainage.Compute(h, 24, -100, 0.5)
	net := Build(d, h)

	for _, b := range net.Basins {
		for _, c := range b.Cells {
			depth := net.DepthAt(c[0], c[1])
			if depth <= 0 {
				continue
			}
			want := b.SurfaceHeight - h.At(c[0], c[1])
			if depth < want-1e-9 || depth > want+1e-9 {
				t.Fatalf("depth mismatch at %v: got %v want %v", c, depth, want)
			}
		}
	}
}

func TestNoBasinsOnMonotonicSlope(t *testing.T) {
	w := 16
	side := w + 1
	h := &heightmap.Heightmap{W: w, Values: make([]float64, side*side)}
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			h.Values[z*side+x] = float64(x) + float64(z)
		}
	}
	d := drainage.Compute(h, w, -100, 0.5)
	net := Build(d, h)
	if len(net.Basins) != 0 {
		t.Fatalf("expected no basins on a monotonic slope, got %d", len(net.Basins))
	}
}
