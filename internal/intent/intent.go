// Package intent implements the Intent -> Settings derivation layer: eight
// human-meaningful parameters mapped to the ~30 mechanical knobs the
// generation pipeline actually samples, plus invariant enforcement and the
// eight named presets.
package intent

import (
	"math"

	"github.com/P7AC1D/genesis-sub000/internal/noise"
	"github.com/P7AC1D/genesis-sub000/internal/pipelineerr"
)

// Intent is the eight-axis human-meaningful parameter block. Every field
// must lie in [0,1]; NewIntent validates this.
type Intent struct {
	ContinentalScale  float64
	ElevationRange    float64
	MountainCoverage  float64
	MountainSharpness float64
	Ruggedness        float64
	ErosionAge        float64
	RiverStrength     float64
	Chaos             float64
}

// NewIntent validates that every field of i lies in [0,1].
func NewIntent(i Intent) (Intent, error) {
	fields := map[string]float64{
		"ContinentalScale":  i.ContinentalScale,
		"ElevationRange":    i.ElevationRange,
		"MountainCoverage":  i.MountainCoverage,
		"MountainSharpness": i.MountainSharpness,
		"Ruggedness":        i.Ruggedness,
		"ErosionAge":        i.ErosionAge,
		"RiverStrength":     i.RiverStrength,
		"Chaos":             i.Chaos,
	}
	for name, v := range fields {
		if v < 0 || v > 1 {
			return Intent{}, &pipelineerr.ConfigurationError{Field: name, Reason: "must be in [0,1]"}
		}
	}
	return i, nil
}

// Settings holds the mechanical parameters the pipeline samples noise and
// runs erosion with. It is immutable once derived for a generation pass.
type Settings struct {
	// Base noise
	NoiseScale  float64
	HeightScale float64
	BaseHeight  float64
	Octaves     int
	Persistence float64
	Lacunarity  float64

	// Ridge / mountain shaping
	UseRidgeNoise bool
	RidgeWeight   float64
	RidgePower    float64
	PeakBoost     float64

	// Uplift mask
	UpliftScale        float64
	UpliftThresholdLow float64
	UpliftThresholdHi  float64
	UpliftPower        float64

	// Domain warp
	WarpStrength float64
	WarpLevels   int

	// Erosion
	SlopeErosionStrength float64
	SlopeThreshold       float64
	ValleyDepth          float64
	UseHydraulicErosion  bool
	ErosionIterations    int

	// Continental / ocean shaping
	OceanThreshold  float64
	CoastlineBlend  float64
	ErosionAgeBase  float64
	ErosionAgeVar   float64

	// River strength
	StreamThreshold     float64
	MajorRiverThreshold float64
	RiverWidthScale     float64
	ChannelDepth        float64

	// Climate
	BaseTemperature    float64
	ElevationLapseRate float64
	BasePrecipitation  float64
	PrecipVariation    float64
	EvaporationRate    float64
	VegetationDensity  float64
}

// DeriveSettings maps an Intent to a full Settings value per the fixed
// table of linear interpolations, then enforces invariants.
func DeriveSettings(i Intent) Settings {
	s := Settings{
		NoiseScale:  noise.Lerp(0.02, 0.0015, i.ContinentalScale),
		HeightScale: noise.Lerp(6, 40, i.ElevationRange),
		BaseHeight:  0,
		Octaves:     int(math.Floor(noise.Lerp(3, 6, i.Ruggedness))),
		Persistence: noise.Lerp(0.35, 0.42, i.Ruggedness),
		Lacunarity:  noise.Lerp(1.8, 2.4, i.Ruggedness),

		UseRidgeNoise: i.MountainCoverage > 0.04,
		RidgeWeight:   i.MountainCoverage,
		RidgePower:    noise.Lerp(1.4, 3.8, i.MountainSharpness),
		PeakBoost:     i.MountainSharpness * 0.4,

		UpliftScale: noise.Lerp(0.015, 0.003, i.ContinentalScale),
		UpliftPower: noise.Lerp(0.9, 2.5, i.MountainSharpness),

		WarpStrength: noise.Lerp(0.03, 0.15, i.Chaos),
		WarpLevels:   int(math.Floor(noise.Lerp(1, 2, i.Chaos))),

		SlopeErosionStrength: noise.Lerp(0.9, 0.15, i.ErosionAge),
		SlopeThreshold:       noise.Lerp(0.25, 1.2, i.ErosionAge),
		ValleyDepth:          noise.Lerp(0.15, 0.6, i.RiverStrength),
		UseHydraulicErosion:  i.ErosionAge > 0.3,
		ErosionIterations:    int(math.Floor(noise.Lerp(80, 300, i.ErosionAge))),

		OceanThreshold: 0.45,
		CoastlineBlend: 0.03,
		ErosionAgeBase: i.ErosionAge,
		ErosionAgeVar:  0.2,

		StreamThreshold:     100 - 80*i.RiverStrength,
		MajorRiverThreshold: 1000 - 800*i.RiverStrength,
		RiverWidthScale:     0.05 + 0.15*i.RiverStrength,
		ChannelDepth:        1 + 3*i.RiverStrength,

		BaseTemperature:    0.5,
		ElevationLapseRate: 0.6,
		BasePrecipitation:  0.5,
		PrecipVariation:    0.25,
		EvaporationRate:    0.2,
		VegetationDensity:  0.85,
	}

	s.UpliftThresholdLow = noise.Lerp(0.25, 0.45, 1-i.MountainCoverage)
	s.UpliftThresholdHi = s.UpliftThresholdLow + 0.25

	return EnforceInvariants(s)
}

// EnforceInvariants clamps a derived Settings value so every invariant
// stated in the specification holds, returning the corrected value. It
// never returns an error: violations are silently repaired, matching the
// "local recovery preferred" policy for NoiseStabilityViolation.
func EnforceInvariants(s Settings) Settings {
	if s.UpliftThresholdHi < s.UpliftThresholdLow+0.1 {
		s.UpliftThresholdHi = s.UpliftThresholdLow + 0.1
	}
	if s.Persistence*s.Lacunarity >= 1.0 {
		s.Persistence = 0.9 / s.Lacunarity
	}
	if s.WarpLevels < 1 {
		s.WarpLevels = 1
	}
	if s.WarpLevels > 4 {
		s.WarpLevels = 4
	}
	if s.ErosionIterations < 10 {
		s.ErosionIterations = 10
	}
	if s.ErosionIterations > 500 {
		s.ErosionIterations = 500
	}
	s.RidgeWeight = noise.Clamp(s.RidgeWeight, 0, 1)
	s.UpliftThresholdLow = noise.Clamp(s.UpliftThresholdLow, 0, 1)
	s.UpliftThresholdHi = noise.Clamp(s.UpliftThresholdHi, 0, 1)
	s.ErosionAgeBase = noise.Clamp(s.ErosionAgeBase, 0, 1)
	return s
}
