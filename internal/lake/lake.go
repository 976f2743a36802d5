// Package lake detects closed drainage basins via priority-flood filling
// and applies optional terrain adjustments (bed flattening, shoreline
// smoothing, outflow carving).
package lake

import (
	"container/heap"
	"math"

	"github.com/P7AC1D/genesis-sub000/internal/drainage"
	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
)

const (
	minBasinSize     = 4
	minBasinDepth    = 0.2
	noSpillMaxDepth  = 10.0
	shorelineRadius  = 3
	outflowCarveLen  = 5
	outflowDepth     = 0.3
	outflowWidth     = 2.0
)

// Basin is one closed drainage depression.
type Basin struct {
	Cells         [][2]int
	LowestCell    [2]int
	SpillPoint    [2]int
	HasSpill      bool
	BasinFloor    float64
	SpillHeight   float64
	SurfaceHeight float64
	Volume        float64
}

// Network is the full set of accepted basins for a chunk.
type Network struct {
	Basins      []Basin
	cellIndex   map[[2]int]int
	cellDepth   map[[2]int]float64
}

// BasinAt returns the basin index for a cell, and false if the cell is not
// part of any accepted basin.
func (n *Network) BasinAt(x, z int) (int, bool) {
	i, ok := n.cellIndex[[2]int{x, z}]
	return i, ok
}

// DepthAt returns the water depth at a lake cell, or 0 if it is not part of
// a basin.
func (n *Network) DepthAt(x, z int) float64 {
	return n.cellDepth[[2]int{x, z}]
}

type cellHeap struct {
	cells   [][2]int
	heights []float64
}

func (h *cellHeap) Len() int            { return len(h.cells) }
func (h *cellHeap) Less(i, j int) bool  { return h.heights[i] < h.heights[j] }
func (h *cellHeap) Swap(i, j int) {
	h.cells[i], h.cells[j] = h.cells[j], h.cells[i]
	h.heights[i], h.heights[j] = h.heights[j], h.heights[i]
}
func (h *cellHeap) Push(x any) {
	e := x.([2]interface{})
	h.cells = append(h.cells, e[0].([2]int))
	h.heights = append(h.heights, e[1].(float64))
}
func (h *cellHeap) Pop() any {
	n := len(h.cells)
	c, ht := h.cells[n-1], h.heights[n-1]
	h.cells = h.cells[:n-1]
	h.heights = h.heights[:n-1]
	return [2]interface{}{c, ht}
}

var fourNeighbors = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Build detects, fills, and filters closed basins from the chunk's pit
// cells.
func Build(d *drainage.Data, h *heightmap.Heightmap) *Network {
	net := &Network{cellIndex: make(map[[2]int]int), cellDepth: make(map[[2]int]float64)}

	for _, pit := range d.FindPits() {
		if _, already := net.cellIndex[pit]; already {
			continue
		}
		basin := floodFillBasin(d, h, pit)
		if len(basin.Cells) < minBasinSize {
			continue // DegenerateGeometry: too small
		}

		if basin.HasSpill {
			basin.SurfaceHeight = basin.SpillHeight
		} else {
			basin.SurfaceHeight = basin.BasinFloor + noSpillMaxDepth
		}

		maxDepth := 0.0
		volume := 0.0
		for _, c := range basin.Cells {
			terrain := h.At(c[0], c[1])
			depth := basin.SurfaceHeight - terrain
			if depth > maxDepth {
				maxDepth = depth
			}
			if depth > 0 {
				volume += depth
			}
		}
		if maxDepth < minBasinDepth {
			continue // DegenerateGeometry: too shallow
		}
		basin.Volume = volume

		idxBasin := len(net.Basins)
		for _, c := range basin.Cells {
			depth := basin.SurfaceHeight - h.At(c[0], c[1])
			if depth > 0 {
				net.cellIndex[c] = idxBasin
				net.cellDepth[c] = depth
			}
		}
		net.Basins = append(net.Basins, basin)
	}

	return net
}

func floodFillBasin(d *drainage.Data, h *heightmap.Heightmap, pit [2]int) Basin {
	visited := map[[2]int]bool{pit: true}
	basinSet := map[[2]int]bool{pit: true}

	hp := &cellHeap{}
	heap.Push(hp, [2]interface{}{pit, h.At(pit[0], pit[1])})

	basinFloor := h.At(pit[0], pit[1])
	spillHeight := math.Inf(1)
	var spillCell [2]int
	hasSpill := false

	cells := [][2]int{pit}

	for hp.Len() > 0 {
		popped := heap.Pop(hp).([2]interface{})
		c := popped[0].([2]int)

		for _, off := range fourNeighbors {
			n := [2]int{c[0] + off[0], c[1] + off[1]}
			if n[0] < 0 || n[0] >= d.W || n[1] < 0 || n[1] >= d.W {
				continue
			}
			if visited[n] {
				continue
			}
			visited[n] = true

			nh := h.At(n[0], n[1])
			dx, dz, ok := d.GetDownstreamCell(n[0], n[1])
			drainsIntoBasin := ok && basinSet[[2]int{dx, dz}]

			if drainsIntoBasin {
				basinSet[n] = true
				cells = append(cells, n)
				if nh < basinFloor {
					basinFloor = nh
				}
				heap.Push(hp, [2]interface{}{n, nh})
			} else {
				if nh < spillHeight {
					spillHeight = nh
					spillCell = n
					hasSpill = true
				}
			}
		}
	}

	return Basin{
		Cells:       cells,
		LowestCell:  pit,
		SpillPoint:  spillCell,
		HasSpill:    hasSpill,
		SpillHeight: spillHeight,
		BasinFloor:  basinFloor,
	}
}

// Adjustments bundles the optional terrain-adjustment parameters.
type Adjustments struct {
	BedFlatness    float64
	ShorelineBlend float64
	CellSize       float64
}

// Apply runs bed flattening, shoreline smoothing, and outflow carving for
// every basin. None of these steps ever raises a cell's height.
func Apply(h *heightmap.Heightmap, net *Network, adj Adjustments) {
	for _, basin := range net.Basins {
		applyBedFlattening(h, basin, adj)
		applyShorelineSmoothing(h, basin, adj)
		if basin.HasSpill {
			applyOutflowCarving(h, basin, adj)
		}
	}
}

func applyBedFlattening(h *heightmap.Heightmap, basin Basin, adj Adjustments) {
	for _, c := range basin.Cells {
		current := h.At(c[0], c[1])
		if current <= basin.BasinFloor {
			continue
		}
		target := noise.Lerp(current, basin.BasinFloor, adj.BedFlatness)
		if target < current {
			h.Set(c[0], c[1], target)
		}
	}
}

func applyShorelineSmoothing(h *heightmap.Heightmap, basin Basin, adj Adjustments) {
	inBasin := make(map[[2]int]bool, len(basin.Cells))
	for _, c := range basin.Cells {
		inBasin[c] = true
	}

	var boundaryCells [][2]int
	for _, c := range basin.Cells {
		for _, off := range fourNeighbors {
			n := [2]int{c[0] + off[0], c[1] + off[1]}
			if !inBasin[n] {
				boundaryCells = append(boundaryCells, c)
				break
			}
		}
	}

	for _, b := range boundaryCells {
		for dz := -shorelineRadius; dz <= shorelineRadius; dz++ {
			for dx := -shorelineRadius; dx <= shorelineRadius; dx++ {
				x, z := b[0]+dx, b[1]+dz
				dist := math.Sqrt(float64(dx*dx+dz*dz))
				if dist > shorelineRadius {
					continue
				}
				current := h.At(x, z)
				if current <= basin.SurfaceHeight {
					continue
				}
				weight := 1 - noise.Smoothstep(0, shorelineRadius, dist)
				target := noise.Lerp(current, basin.SurfaceHeight, weight*adj.ShorelineBlend)
				if target < current {
					h.Set(x, z, target)
				}
			}
		}
	}
}

func applyOutflowCarving(h *heightmap.Heightmap, basin Basin, adj Adjustments) {
	sx, sz := basin.SpillPoint[0], basin.SpillPoint[1]

	// Outflow direction: away from the basin centroid through the spill point.
	var cx, cz float64
	for _, c := range basin.Cells {
		cx += float64(c[0])
		cz += float64(c[1])
	}
	n := float64(len(basin.Cells))
	cx /= n
	cz /= n
	dirX, dirZ := float64(sx)-cx, float64(sz)-cz
	length := math.Sqrt(dirX*dirX + dirZ*dirZ)
	if length < 1e-6 {
		dirX, dirZ = 1, 0
	} else {
		dirX, dirZ = dirX/length, dirZ/length
	}

	channelFloor := basin.SpillHeight * (1 - outflowDepth)

	for step := 0; step < outflowCarveLen; step++ {
		cxStep := float64(sx) + dirX*float64(step)
		czStep := float64(sz) + dirZ*float64(step)

		for lateral := -int(outflowWidth); lateral <= int(outflowWidth); lateral++ {
			// Perpendicular offset to the outflow direction.
			px, pz := -dirZ, dirX
			x := int(math.Round(cxStep + px*float64(lateral)))
			z := int(math.Round(czStep + pz*float64(lateral)))

			current := h.At(x, z)
			latDist := math.Abs(float64(lateral))
			falloff := 1 - noise.Smoothstep(0, outflowWidth, latDist)
			target := noise.Lerp(current, channelFloor, falloff)
			if target < current {
				h.Set(x, z, target)
			}
		}
	}
}
