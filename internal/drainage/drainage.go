// Package drainage computes the D8 flow direction and flow accumulation
// graph for a chunk's interior grid.
package drainage

import (
	"math"

	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
)

// FlowDirection is the per-cell D8 direction plus the four terminal kinds.
type FlowDirection uint8

const (
	FlowE FlowDirection = iota
	FlowSE
	FlowS
	FlowSW
	FlowW
	FlowNW
	FlowN
	FlowNE
	FlowPit
	FlowFlat
	FlowBoundary
	FlowOcean
)

// neighborOrder is the fixed D8 scan order used for tie-breaking:
// E, SE, S, SW, W, NW, N, NE.
var neighborOrder = []struct {
	dx, dz int
	dir    FlowDirection
	dist   float64
}{
	{1, 0, FlowE, 1},
	{1, 1, FlowSE, math.Sqrt2},
	{0, 1, FlowS, 1},
	{-1, 1, FlowSW, math.Sqrt2},
	{-1, 0, FlowW, 1},
	{-1, -1, FlowNW, math.Sqrt2},
	{0, -1, FlowN, 1},
	{1, -1, FlowNE, math.Sqrt2},
}

// Offset returns the (dx, dz) cell offset for a D8 direction. Terminal
// directions (Pit, Flat, Boundary, Ocean) return (0,0), false.
func Offset(d FlowDirection) (dx, dz int, ok bool) {
	for _, n := range neighborOrder {
		if n.dir == d {
			return n.dx, n.dz, true
		}
	}
	return 0, 0, false
}

// Data holds the per-cell drainage fields over a W x W interior grid.
type Data struct {
	W             int
	FlowDirection []FlowDirection
	FlowAccum     []uint32
	Slope         []float64
}

func idx(w, x, z int) int { return z*w + x }

// FlowDirAt returns the flow direction at (x, z), or Boundary if out of
// bounds (documented default).
func (d *Data) FlowDirAt(x, z int) FlowDirection {
	if x < 0 || x >= d.W || z < 0 || z >= d.W {
		return FlowBoundary
	}
	return d.FlowDirection[idx(d.W, x, z)]
}

// AccumAt returns the flow accumulation at (x, z), or 0 if out of bounds.
func (d *Data) AccumAt(x, z int) uint32 {
	if x < 0 || x >= d.W || z < 0 || z >= d.W {
		return 0
	}
	return d.FlowAccum[idx(d.W, x, z)]
}

// SlopeAt returns the slope magnitude at (x, z), or 0 if out of bounds.
func (d *Data) SlopeAt(x, z int) float64 {
	if x < 0 || x >= d.W || z < 0 || z >= d.W {
		return 0
	}
	return d.Slope[idx(d.W, x, z)]
}

// Compute runs both drainage passes: D8 flow direction, then topological
// flow accumulation.
func Compute(h *heightmap.Heightmap, w int, seaLevel, cellSize float64) *Data {
	d := &Data{
		W:             w,
		FlowDirection: make([]FlowDirection, w*w),
		FlowAccum:     make([]uint32, w*w),
		Slope:         make([]float64, w*w),
	}

	cellHeight := func(x, z int) float64 { return h.At(x, z) }

	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			ch := cellHeight(x, z)

			// Slope: central-difference gradient magnitude in world units.
			hL, hR := cellHeight(x-1, z), cellHeight(x+1, z)
			hD, hU := cellHeight(x, z-1), cellHeight(x, z+1)
			gx := (hR - hL) / (2 * cellSize)
			gz := (hU - hD) / (2 * cellSize)
			d.Slope[i] = math.Sqrt(gx*gx + gz*gz)

			if ch < seaLevel {
				d.FlowDirection[i] = FlowOcean
				continue
			}
			if x == 0 || x == w-1 || z == 0 || z == w-1 {
				d.FlowDirection[i] = FlowBoundary
				continue
			}

			bestDrop := 0.0
			bestDir := FlowPit
			found := false
			allFlat := true
			for _, n := range neighborOrder {
				nh := cellHeight(x+n.dx, z+n.dz)
				if math.Abs(nh-ch) > 1e-4 {
					allFlat = false
				}
				drop := (ch - nh) / n.dist
				if drop > bestDrop {
					bestDrop = drop
					bestDir = n.dir
					found = true
				}
			}
			if !found {
				if allFlat {
					d.FlowDirection[i] = FlowFlat
				} else {
					d.FlowDirection[i] = FlowPit
				}
				continue
			}
			d.FlowDirection[i] = bestDir
		}
	}

	accumulate(d)
	return d
}

// accumulate runs the O(W^2) topological flow accumulation pass: seed a
// FIFO with every in-degree-zero cell, then propagate accumulation
// downstream, decrementing in-degree until it reaches zero.
func accumulate(d *Data) {
	w := d.W
	inDegree := make([]int, w*w)

	downstream := func(x, z int) (int, int, bool) {
		dir := d.FlowDirAt(x, z)
		dx, dz, ok := Offset(dir)
		if !ok {
			return 0, 0, false
		}
		nx, nz := x+dx, z+dz
		if nx < 0 || nx >= w || nz < 0 || nz >= w {
			return 0, 0, false
		}
		return nx, nz, true
	}

	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			if nx, nz, ok := downstream(x, z); ok {
				inDegree[idx(w, nx, nz)]++
			}
		}
	}

	queue := make([]int, 0, w*w)
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			if inDegree[i] == 0 {
				queue = append(queue, i)
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		x, z := i%w, i/w
		d.FlowAccum[i]++

		if nx, nz, ok := downstream(x, z); ok {
			ni := idx(w, nx, nz)
			d.FlowAccum[ni] += d.FlowAccum[i]
			inDegree[ni]--
			if inDegree[ni] == 0 {
				queue = append(queue, ni)
			}
		}
	}
}

// GetDownstreamCell returns the cell that (x, z) drains into, and false if
// (x, z) is a terminal cell (Pit, Flat, Boundary, Ocean) or out of bounds.
func (d *Data) GetDownstreamCell(x, z int) (int, int, bool) {
	if x < 0 || x >= d.W || z < 0 || z >= d.W {
		return 0, 0, false
	}
	dir := d.FlowDirAt(x, z)
	dx, dz, ok := Offset(dir)
	if !ok {
		return 0, 0, false
	}
	nx, nz := x+dx, z+dz
	if nx < 0 || nx >= d.W || nz < 0 || nz >= d.W {
		return 0, 0, false
	}
	return nx, nz, true
}

// TraceFlowPath follows GetDownstreamCell from (x, z) until a terminal cell
// or W^2 steps, whichever comes first (flow acyclicity bound, spec §8.4).
func (d *Data) TraceFlowPath(x, z int) []([2]int) {
	path := [][2]int{{x, z}}
	maxSteps := d.W * d.W
	cx, cz := x, z
	for i := 0; i < maxSteps; i++ {
		nx, nz, ok := d.GetDownstreamCell(cx, cz)
		if !ok {
			break
		}
		path = append(path, [2]int{nx, nz})
		cx, cz = nx, nz
	}
	return path
}

// FindRiverCells returns every cell whose flow accumulation exceeds
// minAccumulation.
func (d *Data) FindRiverCells(minAccumulation uint32) [][2]int {
	var cells [][2]int
	for z := 0; z < d.W; z++ {
		for x := 0; x < d.W; x++ {
			if d.AccumAt(x, z) > minAccumulation {
				cells = append(cells, [2]int{x, z})
			}
		}
	}
	return cells
}

// FindPits returns every cell classified Pit.
func (d *Data) FindPits() [][2]int {
	var cells [][2]int
	for z := 0; z < d.W; z++ {
		for x := 0; x < d.W; x++ {
			if d.FlowDirAt(x, z) == FlowPit {
				cells = append(cells, [2]int{x, z})
			}
		}
	}
	return cells
}
