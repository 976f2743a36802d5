// Package climate derives rain shadow, temperature, moisture, and fertility
// fields from the heightmap and hydrology data.
package climate

import (
	"math"

	"github.com/P7AC1D/genesis-sub000/internal/hydrology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
	"github.com/P7AC1D/genesis-sub000/internal/river"
)

const (
	temperatureFrequency  = 0.01
	precipitationFrequency = 0.02
	proximityMaxDistance   = 100.0
)

// Data is the unified per-cell climate record over a chunk's W x W grid.
type Data struct {
	W          int
	RainShadow []float64
	Temperature []float64
	Moisture   []float64
	Fertility  []float64
}

func idx(w, x, z int) int { return z*w + x }

// Generate runs the four climate passes, in order: rain shadow,
// temperature, moisture, then fertility.
func Generate(w int, gen *noise.Generator, heights []float64, hd *hydrology.Data, settings intent.Settings, seaLevel, heightScale, cellSize, originX, originZ float64) *Data {
	cd := &Data{
		W:           w,
		RainShadow:  make([]float64, w*w),
		Temperature: make([]float64, w*w),
		Moisture:    make([]float64, w*w),
		Fertility:   make([]float64, w*w),
	}

	computeRainShadow(cd, heights)
	computeTemperature(cd, gen, heights, settings, seaLevel, heightScale, cellSize, originX, originZ)
	computeMoisture(cd, gen, heights, hd, settings, seaLevel, heightScale, cellSize, originX, originZ)
	computeFertility(cd, hd, settings)

	return cd
}

func computeRainShadow(cd *Data, heights []float64) {
	w := cd.W
	maxUpwind := make([]float64, w*w)

	for z := 0; z < w; z++ {
		runningMax := 0.0
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			h := heights[i]
			if h > runningMax {
				runningMax = h
			}
			runningMax *= 0.995
			maxUpwind[i] = runningMax
		}
	}

	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			h := heights[i]
			upwind := maxUpwind[i]
			if upwind > h {
				cd.RainShadow[i] = clamp01((upwind - h) / 50.0)
			}
		}
	}
}

func computeTemperature(cd *Data, gen *noise.Generator, heights []float64, settings intent.Settings, seaLevel, heightScale, cellSize, originX, originZ float64) {
	w := cd.W
	fbmParams := noise.FBMParams{Octaves: 4, Persistence: 0.5, Lacunarity: 2.0, Frequency: temperatureFrequency}
	tempBias := 2*settings.BaseTemperature - 1

	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			wx := originX + float64(x)*cellSize
			wz := originZ + float64(z)*cellSize

			tempNoise := gen.FBM2D(wx, wz, fbmParams)
			altCooling := altitudeCooling(heights[i], seaLevel, heightScale)

			temperature := tempBias + tempNoise - altCooling*settings.ElevationLapseRate*heightScale
			cd.Temperature[i] = clamp(temperature, -1, 1)
		}
	}
}

func altitudeCooling(h, seaLevel, heightScale float64) float64 {
	if h <= seaLevel {
		return 0
	}
	return clamp01((h - seaLevel) / heightScale)
}

func computeMoisture(cd *Data, gen *noise.Generator, heights []float64, hd *hydrology.Data, settings intent.Settings, seaLevel, heightScale, cellSize, originX, originZ float64) {
	w := cd.W
	fbmParams := noise.FBMParams{Octaves: 3, Persistence: 0.5, Lacunarity: 2.0, Frequency: precipitationFrequency}

	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			wx := originX + float64(x)*cellSize
			wz := originZ + float64(z)*cellSize

			humidity := settings.BasePrecipitation
			precipNoise := gen.FBM2D(wx, wz, fbmParams)
			humidity += precipNoise * settings.PrecipVariation

			distanceToWater := hd.DistanceToWaterAt(x, z)
			proximityBoost := 0.0
			if distanceToWater < proximityMaxDistance {
				proximityBoost = (1 - distanceToWater/proximityMaxDistance) * 0.3
			}

			rainShadowPenalty := cd.RainShadow[i] * 0.5

			altitudePenalty := 0.0
			if heights[i] > seaLevel {
				normalizedAlt := (heights[i] - seaLevel) / heightScale
				altitudePenalty = normalizedAlt * 0.3
			}

			evaporationLoss := settings.EvaporationRate * 0.2

			moisture := humidity + proximityBoost - rainShadowPenalty - altitudePenalty - evaporationLoss

			if hd.WaterTypeAt(x, z) != river.WaterNone {
				moisture = 1
			}
			cd.Moisture[i] = clamp01(moisture)
		}
	}
}

func computeFertility(cd *Data, hd *hydrology.Data, settings intent.Settings) {
	w := cd.W
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			i := idx(w, x, z)
			moisture := cd.Moisture[i]
			slope := 0.0
			if x >= 0 && x < hd.W && z >= 0 && z < hd.W {
				slope = hd.Slope[idx(hd.W, x, z)]
			}
			normalizedSlope := math.Min(slope/2.0, 1)

			fertility := settings.VegetationDensity * moisture * (1 - normalizedSlope)
			if hd.WaterTypeAt(x, z) != river.WaterNone {
				fertility = 0
			}
			cd.Fertility[i] = clamp01(fertility)
		}
	}
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TemperatureAt returns the temperature field at (x, z), or 0 if out of
// bounds.
func (cd *Data) TemperatureAt(x, z int) float64 {
	if x < 0 || x >= cd.W || z < 0 || z >= cd.W {
		return 0
	}
	return cd.Temperature[idx(cd.W, x, z)]
}

// MoistureAt returns the moisture field at (x, z), or 0.5 if out of bounds.
func (cd *Data) MoistureAt(x, z int) float64 {
	if x < 0 || x >= cd.W || z < 0 || z >= cd.W {
		return 0.5
	}
	return cd.Moisture[idx(cd.W, x, z)]
}

// FertilityAt returns the fertility field at (x, z), or 0 if out of bounds.
func (cd *Data) FertilityAt(x, z int) float64 {
	if x < 0 || x >= cd.W || z < 0 || z >= cd.W {
		return 0
	}
	return cd.Fertility[idx(cd.W, x, z)]
}
