// Package material blends cells into a soft mix of eight ground materials
// from height, slope, temperature, moisture, fertility, and water
// proximity. Ported from MaterialBlender.cpp's ComputeMaterialWeights.
package material

import "github.com/P7AC1D/genesis-sub000/internal/river"

// Material is one of the eight closed material categories.
type Material int

const (
	Rock Material = iota
	Dirt
	Grass
	Sand
	Snow
	Ice
	Mud
	Water
	materialCount
)

var names = [...]string{"Rock", "Dirt", "Grass", "Sand", "Snow", "Ice", "Mud", "Water"}

// String returns the material's display name.
func (m Material) String() string {
	if m < 0 || int(m) >= len(names) {
		return "Unknown"
	}
	return names[m]
}

const (
	rockSlopeThreshold   = 0.5
	steepSlopeThreshold  = 0.8
	snowLineStart        = 0.7
	snowLineFull         = 0.9
	freezingPoint        = -0.3
	snowMeltPoint        = 0.1
	mudMoistureThreshold = 0.7
	grassMoistureMin     = 0.3
	sandDistance         = 10.0
	sandSlopeMax         = 0.15
	grassFertilityMin    = 0.2
)

// Weights holds one weight per material, summing to 1 after Blend.
type Weights [materialCount]float64

// Inputs bundles the per-cell fields Blend needs.
type Inputs struct {
	Height          float64
	SeaLevel        float64
	HeightScale     float64
	Slope           float64
	Temperature     float64
	Moisture        float64
	Fertility       float64
	DistanceToWater float64
	WaterType       river.WaterType
}

// Blend computes the per-material weight mix for one cell.
func Blend(in Inputs) Weights {
	var w Weights

	if in.WaterType != river.WaterNone {
		w[Water] = 1
		return w
	}

	heightNorm := clamp01((in.Height - in.SeaLevel) / in.HeightScale)
	normalizedSlope := min01(in.Slope / 2)
	lowSlope := 1 - normalizedSlope
	nearWater := max0(1 - in.DistanceToWater/sandDistance)
	highMoisture := max0((in.Moisture - mudMoistureThreshold) / (1 - mudMoistureThreshold))

	rockWeight := normalizedSlope
	if normalizedSlope > rockSlopeThreshold {
		steepFactor := (normalizedSlope - rockSlopeThreshold) / (steepSlopeThreshold - rockSlopeThreshold)
		rockWeight += steepFactor * 0.5
	}
	w[Rock] = rockWeight

	coldFactor := clamp01(-in.Temperature)
	snowWeight := coldFactor * heightNorm
	if heightNorm > snowLineStart {
		snowLineFactor := (heightNorm - snowLineStart) / (snowLineFull - snowLineStart)
		snowWeight += coldFactor * snowLineFactor * 0.5
	}
	w[Snow] = clamp01(snowWeight)

	iceFactor := clamp01(-(in.Temperature - freezingPoint))
	w[Ice] = clamp01(iceFactor * in.Moisture * 0.5)

	if in.Fertility > grassFertilityMin && in.Moisture > grassMoistureMin && in.Temperature > snowMeltPoint {
		w[Grass] = in.Fertility * in.Moisture * lowSlope
	}

	sandWeight := 0.0
	if normalizedSlope < sandSlopeMax && nearWater > 0 {
		sandWeight = nearWater * lowSlope
		if in.Temperature > 0 && in.Moisture < 0.4 {
			sandWeight *= 1.5
		}
	}
	w[Sand] = clamp01(sandWeight)

	mudWeight := highMoisture*lowSlope + nearWater*in.Moisture*0.3
	w[Mud] = clamp01(mudWeight)

	dirtWeight := lowSlope * (1 - in.Fertility) * (1 - in.Moisture*0.5)
	dirtWeight *= (1 - w[Snow]) * (1 - w[Sand]*0.5)
	w[Dirt] = max0(dirtWeight)

	var total float64
	for _, v := range w {
		total += v
	}
	if total <= 0 {
		var fallback Weights
		fallback[Dirt] = 1
		return fallback
	}
	for i := range w {
		w[i] /= total
	}
	return w
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

func min01(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Dominant returns the highest-weighted material.
func (w Weights) Dominant() Material {
	best := Material(0)
	for i := 1; i < len(w); i++ {
		if w[i] > w[best] {
			best = Material(i)
		}
	}
	return best
}

// DefaultWeights is the documented out-of-bounds default: full Dirt.
func DefaultWeights() Weights {
	var w Weights
	w[Dirt] = 1
	return w
}
