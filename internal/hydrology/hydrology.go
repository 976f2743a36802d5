// Package hydrology merges drainage, river, and lake data into one unified
// per-cell water record, then derives distance-to-water, moisture, and
// wetland fields from it.
package hydrology

import (
	"math"

	"github.com/P7AC1D/genesis-sub000/internal/drainage"
	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/lake"
	"github.com/P7AC1D/genesis-sub000/internal/river"
)

const (
	maxWaterDistance    = 20.0
	flowNormalization   = 50.0
	flowMoistureWeight  = 0.3
	proximityMoistureW  = 0.5
	humidityWeight      = 0.2
	maxSlope            = 1.0
	minMoisture         = 0.4
	minFlowAccumulation = 20
)

// Data is the unified per-cell hydrology record over a chunk's W x W
// interior grid.
type Data struct {
	W                  int
	FlowDirection      []drainage.FlowDirection
	FlowAccum          []uint32
	Slope              []float64
	WaterType          []river.WaterType
	WaterSurfaceHeight []float64
	DistanceToWater    []float64
	Moisture           []float64
	IsWetland          []bool
	WetlandIntensity   []float64
	IsFloodplain       []bool
}

func idx(w, x, z int) int { return z*w + x }

// Compute runs the full aggregator: copy drainage fields, merge water
// types, compute distance to water, moisture, then wetland classification.
func Compute(d *drainage.Data, h *heightmap.Heightmap, riverNet *river.Network, lakeNet *lake.Network, settings intent.Settings, seaLevel, cellSize float64) *Data {
	w := d.W
	hd := &Data{
		W:                  w,
		FlowDirection:      make([]drainage.FlowDirection, w*w),
		FlowAccum:          make([]uint32, w*w),
		Slope:              make([]float64, w*w),
		WaterType:          make([]river.WaterType, w*w),
		WaterSurfaceHeight: make([]float64, w*w),
		DistanceToWater:    make([]float64, w*w),
		Moisture:           make([]float64, w*w),
		IsWetland:          make([]bool, w*w),
		WetlandIntensity:   make([]float64, w*w),
		IsFloodplain:       make([]bool, w*w),
	}

	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			hd.FlowDirection[i] = d.FlowDirAt(x, z)
			hd.FlowAccum[i] = d.AccumAt(x, z)
			hd.Slope[i] = d.SlopeAt(x, z)
		}
	}

	mergeWaterTypes(hd, d, h, riverNet, lakeNet, settings, seaLevel)
	computeDistanceToWater(hd, cellSize)
	computeMoisture(hd, settings.BasePrecipitation)
	computeWetlands(hd)

	return hd
}

func mergeWaterTypes(hd *Data, d *drainage.Data, h *heightmap.Heightmap, riverNet *river.Network, lakeNet *lake.Network, settings intent.Settings, seaLevel float64) {
	w := hd.W
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)

			riverType := river.CellType(d, h, settings, seaLevel, x, z)
			if riverType == river.WaterRiver || riverType == river.WaterStream {
				if si, ok := riverNet.SegmentAt(x, z); ok {
					hd.WaterSurfaceHeight[i] = riverNet.Segments[si].SurfaceHeight
				}
			} else if riverType == river.WaterOcean {
				hd.WaterSurfaceHeight[i] = seaLevel
			}

			lakeType := river.WaterNone
			if bi, ok := lakeNet.BasinAt(x, z); ok {
				lakeType = river.WaterLake
				hd.WaterSurfaceHeight[i] = lakeNet.Basins[bi].SurfaceHeight
			}

			switch {
			case riverType == river.WaterOcean:
				hd.WaterType[i] = river.WaterOcean
			case lakeType == river.WaterLake:
				hd.WaterType[i] = river.WaterLake
			case riverType == river.WaterRiver:
				hd.WaterType[i] = river.WaterRiver
			case riverType == river.WaterStream:
				hd.WaterType[i] = river.WaterStream
			default:
				hd.WaterType[i] = river.WaterNone
			}
		}
	}
}

func computeDistanceToWater(hd *Data, cellSize float64) {
	w := hd.W
	for i := range hd.DistanceToWater {
		hd.DistanceToWater[i] = maxWaterDistance
	}

	type cell struct{ x, z int }
	queue := make([]cell, 0, w*w)
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			if hd.WaterType[idx(w, x, z)] != river.WaterNone {
				hd.DistanceToWater[idx(w, x, z)] = 0
				queue = append(queue, cell{x, z})
			}
		}
	}

	offsets := [8]struct {
		dx, dz int
		dist   float64
	}{
		{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
		{1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
	}

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		cur := hd.DistanceToWater[idx(w, c.x, c.z)]

		for _, o := range offsets {
			nx, nz := c.x+o.dx, c.z+o.dz
			if nx < 0 || nx >= w || nz < 0 || nz >= w {
				continue
			}
			newDist := cur + o.dist*cellSize
			ni := idx(w, nx, nz)
			if newDist < hd.DistanceToWater[ni] && newDist < maxWaterDistance {
				hd.DistanceToWater[ni] = newDist
				queue = append(queue, cell{nx, nz})
			}
		}
	}
}

func computeMoisture(hd *Data, baseHumidity float64) {
	for i := range hd.Moisture {
		if hd.WaterType[i] != river.WaterNone {
			hd.Moisture[i] = 1
			continue
		}

		flowFactor := math.Min(float64(hd.FlowAccum[i])/flowNormalization, 1)
		proximityFactor := math.Max(1-hd.DistanceToWater[i]/maxWaterDistance, 0)

		m := flowFactor*flowMoistureWeight + proximityFactor*proximityMoistureW + baseHumidity*humidityWeight
		hd.Moisture[i] = clamp01(m)
	}
}

func computeWetlands(hd *Data) {
	for i := range hd.IsWetland {
		if hd.WaterType[i] != river.WaterNone {
			continue
		}

		distance := hd.DistanceToWater[i]
		slope := hd.Slope[i]
		moisture := hd.Moisture[i]
		flowAccum := hd.FlowAccum[i]

		intensity := wetlandIntensity(distance, slope, moisture, flowAccum)
		if intensity <= 0 {
			continue
		}

		hd.IsWetland[i] = true
		hd.WetlandIntensity[i] = intensity

		nearRiver := distance < maxWaterDistance*0.5
		veryLowSlope := slope < maxSlope*0.5
		highFlow := flowAccum > minFlowAccumulation*2
		if nearRiver && veryLowSlope && highFlow {
			hd.IsFloodplain[i] = true
		}
	}
}

func wetlandIntensity(distance, slope, moisture float64, flowAccum uint32) float64 {
	if distance >= maxWaterDistance || slope >= maxSlope {
		return 0
	}
	if !(moisture > minMoisture || flowAccum > minFlowAccumulation) {
		return 0
	}

	distanceFactor := math.Max(1-distance/maxWaterDistance, 0)
	slopeFactor := math.Max(1-slope/maxSlope, 0)
	moistureFactor := clamp01((moisture - minMoisture) / (1 - minMoisture))
	flowFactor := math.Min(float64(flowAccum)/float64(minFlowAccumulation*10), 1)

	intensity := math.Sqrt(distanceFactor*slopeFactor) * math.Max(moistureFactor, flowFactor)
	return clamp01(intensity)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WaterTypeAt returns the merged water type at (x, z), None if out of
// bounds.
func (hd *Data) WaterTypeAt(x, z int) river.WaterType {
	if x < 0 || x >= hd.W || z < 0 || z >= hd.W {
		return river.WaterNone
	}
	return hd.WaterType[idx(hd.W, x, z)]
}

// DistanceToWaterAt returns the distance-to-water field at (x, z), or
// maxWaterDistance if out of bounds.
func (hd *Data) DistanceToWaterAt(x, z int) float64 {
	if x < 0 || x >= hd.W || z < 0 || z >= hd.W {
		return maxWaterDistance
	}
	return hd.DistanceToWater[idx(hd.W, x, z)]
}

// MoistureAt returns the moisture field at (x, z), or 0 if out of bounds.
func (hd *Data) MoistureAt(x, z int) float64 {
	if x < 0 || x >= hd.W || z < 0 || z >= hd.W {
		return 0
	}
	return hd.Moisture[idx(hd.W, x, z)]
}
