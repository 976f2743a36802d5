// Package river classifies drainage cells into river/stream/ocean water,
// builds river segments and traced paths, and carves the heightmap along
// them.
package river

import (
	"math"

	"github.com/P7AC1D/genesis-sub000/internal/drainage"
	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
)

// WaterType classifies a cell's water kind for river purposes.
type WaterType uint8

const (
	WaterNone WaterType = iota
	WaterOcean
	WaterRiver
	WaterStream
	WaterLake
)

// TerminusType describes how a traced river path ends.
type TerminusType uint8

const (
	TerminusNone TerminusType = iota
	TerminusOcean
	TerminusLake
)

const (
	minWidth = 0.5
	maxWidth = 20.0
)

// Segment is one river/stream cell's geometry.
type Segment struct {
	X, Z            int
	Width           float64
	Depth           float64
	SurfaceHeight   float64
	Type            WaterType
	FlowAccum       uint32
	DownstreamIndex int
}

// Path is an ordered chain of segment indices from a source to a terminus.
type Path struct {
	SegmentIndices  []int
	Source          [2]int
	Terminus        [2]int
	TerminusType    TerminusType
	MaxAccumulation uint32
	Length          int
}

// Network is the full river/stream classification result for a chunk.
type Network struct {
	Segments  []Segment
	Paths     []Path
	cellIndex map[[2]int]int
}

// CellType returns the WaterType classification for a cell: Ocean,
// River, Stream, Lake (pit marker only — actual lake extent comes from the
// lake package), or None.
func CellType(d *drainage.Data, h *heightmap.Heightmap, settings intent.Settings, seaLevel float64, x, z int) WaterType {
	dir := d.FlowDirAt(x, z)
	if h.At(x, z) < seaLevel && (dir == drainage.FlowOcean || dir == drainage.FlowBoundary) {
		return WaterOcean
	}
	if dir == drainage.FlowPit {
		return WaterLake
	}
	accum := d.AccumAt(x, z)
	if float64(accum) > settings.MajorRiverThreshold {
		return WaterRiver
	}
	if float64(accum) > settings.StreamThreshold {
		return WaterStream
	}
	return WaterNone
}

// Build runs all three river sub-stages: classify, build segments, trace
// paths.
func Build(d *drainage.Data, h *heightmap.Heightmap, settings intent.Settings, seaLevel float64) *Network {
	net := &Network{cellIndex: make(map[[2]int]int)}

	for z := 0; z < d.W; z++ {
		for x := 0; x < d.W; x++ {
			t := CellType(d, h, settings, seaLevel, x, z)
			if t != WaterRiver && t != WaterStream {
				continue
			}
			accum := d.AccumAt(x, z)
			width := noise.Clamp(math.Sqrt(float64(accum))*settings.RiverWidthScale, minWidth, maxWidth)
			depth := 0.15 * width
			seg := Segment{
				X: x, Z: z,
				Width:           width,
				Depth:           depth,
				SurfaceHeight:   h.At(x, z) - depth/2,
				Type:            t,
				FlowAccum:       accum,
				DownstreamIndex: -1,
			}
			net.cellIndex[[2]int{x, z}] = len(net.Segments)
			net.Segments = append(net.Segments, seg)
		}
	}

	for i := range net.Segments {
		seg := &net.Segments[i]
		nx, nz, ok := d.GetDownstreamCell(seg.X, seg.Z)
		if !ok {
			continue
		}
		if j, found := net.cellIndex[[2]int{nx, nz}]; found {
			seg.DownstreamIndex = j
		}
	}

	upstreamCount := make([]int, len(net.Segments))
	for _, seg := range net.Segments {
		if seg.DownstreamIndex >= 0 {
			upstreamCount[seg.DownstreamIndex]++
		}
	}

	maxSteps := len(net.Segments) + 1
	for i, seg := range net.Segments {
		if upstreamCount[i] != 0 {
			continue
		}
		path := Path{Source: [2]int{seg.X, seg.Z}, TerminusType: TerminusNone}
		cur := i
		for step := 0; step < maxSteps; step++ {
			path.SegmentIndices = append(path.SegmentIndices, cur)
			s := net.Segments[cur]
			if s.FlowAccum > path.MaxAccumulation {
				path.MaxAccumulation = s.FlowAccum
			}
			if s.DownstreamIndex < 0 {
				path.Terminus = [2]int{s.X, s.Z}
				dir := d.FlowDirAt(s.X, s.Z)
				switch dir {
				case drainage.FlowOcean, drainage.FlowBoundary:
					// Open question (spec §9): a Boundary exit is reported as
					// Ocean terminus unconditionally, even though the river
					// may simply leave the chunk. Kept as documented.
					path.TerminusType = TerminusOcean
				case drainage.FlowPit:
					path.TerminusType = TerminusLake
				}
				break
			}
			cur = s.DownstreamIndex
		}
		path.Length = len(path.SegmentIndices)
		if path.Length < 2 {
			continue // DegenerateGeometry: silently skipped per spec §7
		}
		net.Paths = append(net.Paths, path)
	}

	return net
}

// SegmentAt returns the segment index for a cell, and false if the cell is
// not part of the river network.
func (n *Network) SegmentAt(x, z int) (int, bool) {
	i, ok := n.cellIndex[[2]int{x, z}]
	return i, ok
}

// CarveRivers lowers terrain along every segment: the segment's own cell
// is pulled down to its surface height, a radius around it is flattened to
// the channel floor, and a wider band blends smoothly back up to the
// original terrain — the carve never raises a cell above its pre-carve
// height.
func CarveRivers(h *heightmap.Heightmap, net *Network, cellSize, channelDepth, bedFlatness float64) {
	for _, seg := range net.Segments {
		carveOne(h, seg, cellSize, channelDepth, bedFlatness)
	}
}

func carveOne(h *heightmap.Heightmap, seg Segment, cellSize, channelDepth, bedFlatness float64) {
	radius := int(math.Ceil(seg.Width / (2 * cellSize)))
	bedFloor := seg.SurfaceHeight - channelDepth*bedFlatness
	halfWidth := seg.Width / 2
	oneAndHalfWidth := seg.Width * 1.5

	before := h.At(seg.X, seg.Z)
	if seg.SurfaceHeight < before {
		h.Set(seg.X, seg.Z, seg.SurfaceHeight)
	}

	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			x, z := seg.X+dx, seg.Z+dz
			distWorld := math.Sqrt(float64(dx*dx+dz*dz)) * cellSize

			current := h.At(x, z)
			var target float64
			switch {
			case distWorld <= halfWidth:
				target = bedFloor
			case distWorld <= oneAndHalfWidth:
				t := noise.Smoothstep(halfWidth, oneAndHalfWidth, distWorld)
				target = noise.Lerp(bedFloor, current, t)
			default:
				continue
			}
			if target < current {
				h.Set(x, z, target)
			}
			// else: carving would raise terrain here; no-op (CarvingWouldRaise policy)
		}
	}
}
