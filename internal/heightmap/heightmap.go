// Package heightmap generates the per-chunk heightmap: base + ridge noise
// blending, slope and hydraulic erosion, and peak shaping, operating on an
// extended grid with a border so erosion and drainage stay seam-free across
// chunk boundaries.
//
// Grounded on the sparse-grid sampling + interpolation idiom already used
// for voxel terrain density (a coarse noise lattice trilinearly
// interpolated), generalised here to dense per-cell sampling with an
// explicit border region instead of an interpolated sub-grid.
package heightmap

import (
	"math"
	"math/rand"

	"github.com/P7AC1D/genesis-sub000/internal/geology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
)

// Border is the padding width (in cells) kept around every chunk's interior
// grid during erosion and drainage, discarded after extraction.
const Border = 8

// Extended is the heightmap including its border region, used internally
// during generation and erosion.
type Extended struct {
	Side   int // E = W + 1 + 2*Border
	Values []float64
}

func (e *Extended) at(x, z int) float64 {
	if x < 0 || x >= e.Side || z < 0 || z >= e.Side {
		return 0
	}
	return e.Values[z*e.Side+x]
}

func (e *Extended) set(x, z int, v float64) {
	if x < 0 || x >= e.Side || z < 0 || z >= e.Side {
		return
	}
	e.Values[z*e.Side+x] = v
}

// Heightmap is the final (W+1)x(W+1) vertex height grid handed to
// downstream stages, with the border discarded.
type Heightmap struct {
	W      int
	Values []float64 // length (W+1)*(W+1), row-major z*（W+1)+x
}

// At returns the height at grid vertex (x, z), or 0.0 if out of bounds
// (documented default per §7 OutOfBounds policy).
func (h *Heightmap) At(x, z int) float64 {
	side := h.W + 1
	if x < 0 || x >= side || z < 0 || z >= side {
		return 0
	}
	return h.Values[z*side+x]
}

// Set writes the height at grid vertex (x, z). Out-of-bounds writes are
// silently ignored.
func (h *Heightmap) Set(x, z int, v float64) {
	side := h.W + 1
	if x < 0 || x >= side || z < 0 || z >= side {
		return
	}
	h.Values[z*side+x] = v
}

// Sum returns the sum of all heights, used by mass-conservation tests.
func (h *Heightmap) Sum() float64 {
	var total float64
	for _, v := range h.Values {
		total += v
	}
	return total
}

// Params bundles the inputs Generate needs beyond Settings itself.
type Params struct {
	WorldSeed   int64
	ChunkX      int
	ChunkZ      int
	OriginX     float64 // world-space X of this chunk's (0,0) vertex
	OriginZ     float64
	CellSize    float64
	PreviewMode bool // forces hydraulic erosion off regardless of settings (open question #2)
}

// Generate runs the full heightmap stage: base/ridge blend, slope erosion,
// optional hydraulic erosion, peak shaping, then extracts the (W+1)^2
// interior, discarding the border.
func Generate(w int, gen *noise.Generator, geo *geology.Sampler, settings intent.Settings, p Params) *Heightmap {
	side := w + 1 + 2*Border
	ext := &Extended{Side: side, Values: make([]float64, side*side)}

	baseParams := noise.FBMParams{
		Octaves: settings.Octaves, Persistence: settings.Persistence,
		Lacunarity: settings.Lacunarity, Frequency: settings.NoiseScale,
	}
	ridgeParams := noise.FBMParams{Octaves: 3, Persistence: 0.5, Lacunarity: 2.0, Frequency: settings.NoiseScale * 1.7}

	for ez := 0; ez < side; ez++ {
		for ex := 0; ex < side; ex++ {
			wx := p.OriginX + float64(ex-Border)*p.CellSize
			wz := p.OriginZ + float64(ez-Border)*p.CellSize

			base := gen.FBM2D(wx, wz, baseParams)

			wxWarp, wzWarp := wx, wz
			for level := 0; level < settings.WarpLevels; level++ {
				strength := settings.WarpStrength / (1 + float64(level)*0.5)
				dx := gen.FBM2D(wxWarp+1000*float64(level), wzWarp, baseParams) * strength
				dz := gen.FBM2D(wxWarp, wzWarp+1000*float64(level), baseParams) * strength
				wxWarp += dx / settings.NoiseScale * 0.001
				wzWarp += dz / settings.NoiseScale * 0.001
			}

			ridge := 0.0
			upliftWeight := 0.0
			geoSample := geo.Sample(wx, wz)
			if settings.UseRidgeNoise {
				ridge = gen.Ridge2D(wxWarp, wzWarp, ridgeParams)
				ridge = math.Pow(noise.Clamp(ridge, 0, 1), settings.RidgePower)
				upliftWeight = settings.RidgeWeight * geoSample.UpliftMask
			}

			var h01 float64
			if settings.UseRidgeNoise {
				h01 = base*(1-upliftWeight)*geoSample.ElevationAmplitude + ridge*upliftWeight
			} else {
				h01 = base * geoSample.ElevationAmplitude
			}
			h01 = (h01 + 1) / 2
			h01 = noise.Clamp(h01, 0, 1)

			worldH := h01*settings.HeightScale + settings.BaseHeight
			if geoSample.OceanMask > 0 {
				worldH -= geoSample.OceanMask * settings.HeightScale * 0.5
			}

			ext.set(ex, ez, worldH)
		}
	}

	applySlopeErosion(ext, settings, p.CellSize)
	applyValleyDeepening(ext, settings)

	useHydraulic := settings.UseHydraulicErosion && !p.PreviewMode
	if useHydraulic {
		applyHydraulicErosion(ext, settings, p)
	}

	applyPeakShaping(ext, settings)

	return extract(ext, w)
}

// applySlopeErosion runs the single mass-conserving slope erosion pass
// described in spec §4.3: excess gradient above slopeThreshold moves half
// its erosion amount out of a cell and half into its single lowest
// neighbour, so the grid's total height sum is unchanged.
func applySlopeErosion(ext *Extended, settings intent.Settings, cellSize float64) {
	side := ext.Side
	src := make([]float64, len(ext.Values))
	copy(src, ext.Values)

	type delta struct {
		x, z int
		d    float64
	}
	var deltas []delta

	for z := 1; z < side-1; z++ {
		for x := 1; x < side-1; x++ {
			h := src[z*side+x]
			gx := (src[z*side+x+1] - src[z*side+x-1]) / (2 * cellSize)
			gz := (src[(z+1)*side+x] - src[(z-1)*side+x]) / (2 * cellSize)
			mag := math.Sqrt(gx*gx + gz*gz)
			if mag <= settings.SlopeThreshold {
				continue
			}

			excess := noise.Clamp((mag-settings.SlopeThreshold)/settings.SlopeThreshold, 0, 1)
			k := settings.SlopeErosionStrength * excess * settings.HeightScale * 0.1

			type nb struct {
				x, z int
				h    float64
			}
			neighbors := [4]nb{
				{x + 1, z, src[z*side+x+1]},
				{x - 1, z, src[z*side+x-1]},
				{x, z + 1, src[(z+1)*side+x]},
				{x, z - 1, src[(z-1)*side+x]},
			}
			lowestIdx := 0
			for i := 1; i < 4; i++ {
				if neighbors[i].h < neighbors[lowestIdx].h {
					lowestIdx = i
				}
			}
			if neighbors[lowestIdx].h >= h {
				continue
			}

			lowest := neighbors[lowestIdx]
			deltas = append(deltas, delta{x, z, -k / 2})
			deltas = append(deltas, delta{lowest.x, lowest.z, k / 2})
		}
	}

	for _, d := range deltas {
		ext.set(d.x, d.z, ext.at(d.x, d.z)+d.d)
	}
}

// applyValleyDeepening deepens cells below their 4-neighbour mean. This is
// a shaping pass, not mass-conserving by design (only slope erosion carries
// that invariant).
func applyValleyDeepening(ext *Extended, settings intent.Settings) {
	side := ext.Side
	src := make([]float64, len(ext.Values))
	copy(src, ext.Values)

	for z := 1; z < side-1; z++ {
		for x := 1; x < side-1; x++ {
			h := src[z*side+x]
			mean := (src[z*side+x+1] + src[z*side+x-1] + src[(z+1)*side+x] + src[(z-1)*side+x]) / 4
			if h < mean {
				deepen := (mean - h) / settings.HeightScale * settings.ValleyDepth * settings.HeightScale
				ext.set(x, z, h-deepen)
			}
		}
	}
}

// applyHydraulicErosion spawns erosionIterations deterministic droplets per
// spec §4.3, using the chunk's own seed so repeated generation is
// byte-identical.
func applyHydraulicErosion(ext *Extended, settings intent.Settings, p Params) {
	chunkSeed := p.WorldSeed ^ int64(p.ChunkX*198491317) ^ int64(p.ChunkZ*6542989)
	rnd := rand.New(rand.NewSource(chunkSeed))

	const (
		inertia     = 0.05
		evaporation = 0.02
		capacity    = 8.0
		deposition  = 0.3
	)

	side := ext.Side

	sampleBilinear := func(x, z float64) float64 {
		x0 := int(math.Floor(x))
		z0 := int(math.Floor(z))
		fx := x - float64(x0)
		fz := z - float64(z0)
		h00 := ext.at(x0, z0)
		h10 := ext.at(x0+1, z0)
		h01 := ext.at(x0, z0+1)
		h11 := ext.at(x0+1, z0+1)
		top := h00 + (h10-h00)*fx
		bot := h01 + (h11-h01)*fx
		return top + (bot-top)*fz
	}

	gradient := func(x, z float64) (float64, float64) {
		eps := 1.0
		hL := sampleBilinear(x-eps, z)
		hR := sampleBilinear(x+eps, z)
		hD := sampleBilinear(x, z-eps)
		hU := sampleBilinear(x, z+eps)
		return (hR - hL) / (2 * eps), (hU - hD) / (2 * eps)
	}

	deposit := func(x, z float64, amount float64) {
		xi := int(math.Round(x))
		zi := int(math.Round(z))
		ext.set(xi, zi, ext.at(xi, zi)+amount)
	}
	erode := func(x, z float64, amount float64) {
		xi := int(math.Round(x))
		zi := int(math.Round(z))
		ext.set(xi, zi, ext.at(xi, zi)-amount)
	}

	for i := 0; i < settings.ErosionIterations; i++ {
		x := 1 + rnd.Float64()*float64(side-3)
		z := 1 + rnd.Float64()*float64(side-3)
		dirX, dirZ := 0.0, 0.0
		speed := 1.0
		water := 1.0
		sediment := 0.0

		for step := 0; step < 64; step++ {
			if x < 1 || x >= float64(side-2) || z < 1 || z >= float64(side-2) {
				break
			}
			h := sampleBilinear(x, z)
			gx, gz := gradient(x, z)

			dirX = dirX*inertia - gx*(1-inertia)
			dirZ = dirZ*inertia - gz*(1-inertia)
			length := math.Sqrt(dirX*dirX + dirZ*dirZ)
			if length < 1e-8 {
				break
			}
			dirX /= length
			dirZ /= length

			nx := x + dirX
			nz := z + dirZ
			hNew := sampleBilinear(nx, nz)

			cap := math.Max(h-hNew, 0.01) * speed * water * capacity

			if hNew > h {
				deposit(x, z, math.Min(hNew-h, sediment))
				sediment = math.Max(0, sediment-(hNew-h))
			} else if sediment > cap {
				amount := (sediment - cap) * deposition
				deposit(x, z, amount)
				sediment -= amount
			} else {
				amount := math.Min((cap-sediment)*0.3, h-hNew)
				erode(x, z, amount)
				sediment += amount
			}

			speed = math.Sqrt(math.Max(0, speed*speed+(h-hNew)))
			water *= 1 - evaporation
			x, z = nx, nz
			if water < 0.01 {
				break
			}
		}
	}
}

// applyPeakShaping softens bases and sharpens peaks: hn = (h-base)/scale;
// elevation *= (1 - 0.4*hn); elevation += hn^4 * peakBoost * scale.
func applyPeakShaping(ext *Extended, settings intent.Settings) {
	for i, h := range ext.Values {
		elevation := h - settings.BaseHeight
		hn := noise.Clamp(elevation/settings.HeightScale, 0, 1)
		elevation = elevation*(1-0.4*hn) + math.Pow(hn, 4)*settings.PeakBoost*settings.HeightScale
		ext.Values[i] = settings.BaseHeight + elevation
	}
}

// extract copies the central (w+1)^2 region out of an extended heightmap,
// discarding the border.
func extract(ext *Extended, w int) *Heightmap {
	side := w + 1
	out := &Heightmap{W: w, Values: make([]float64, side*side)}
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			out.Values[z*side+x] = ext.at(x+Border, z+Border)
		}
	}
	return out
}
