// Package geology implements the geological field sampler: five orthogonal
// per-sample fields (continental, elevation amplitude, uplift mask, ridge
// placeholder, erosion age) that the heightmap generator blends together.
//
// Grounded on the multi-field blended sampling already used for voxel
// terrain generation (a parabolic neighbourhood blend of independent noise
// fields), generalised here to five explicitly named fields instead of
// three anonymous ones.
package geology

import (
	"math"

	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
)

// Sample is the five-tuple of orthogonal geological fields at one world
// coordinate, plus the derived ocean mask.
type Sample struct {
	Continental        float64
	ElevationAmplitude  float64
	UpliftMask          float64
	RidgeValue          float64 // placeholder; real ridge is computed by the heightmap stage
	ErosionAge          float64
	OceanMask           float64 // smooth [0,1] coast blend, not a hard boolean
}

// Sampler evaluates the five geological fields at any world coordinate.
type Sampler struct {
	gen      *noise.Generator
	settings intent.Settings
}

// NewSampler builds a Sampler bound to a noise generator and a derived
// Settings value.
func NewSampler(gen *noise.Generator, settings intent.Settings) *Sampler {
	return &Sampler{gen: gen, settings: settings}
}

// continentalFrequency maps continentalScale-derived NoiseScale into the
// 0.00015..0.0006 band the spec specifies for the continental field.
func continentalFrequency(noiseScale float64) float64 {
	// NoiseScale itself already spans 0.02..0.0015 (lerp over continentalScale);
	// re-derive a normalised t in [0,1] and remap into the continental band.
	t := noise.Clamp((0.02-noiseScale)/(0.02-0.0015), 0, 1)
	return noise.Lerp(0.00015, 0.0006, t)
}

func amplitudeFrequency(noiseScale float64) float64 {
	t := noise.Clamp((0.02-noiseScale)/(0.02-0.0015), 0, 1)
	return noise.Lerp(0.0004, 0.001, t)
}

// Sample evaluates all five fields plus the ocean mask at world coordinates
// (wx, wz).
func (s *Sampler) Sample(wx, wz float64) Sample {
	st := s.settings

	continental := (s.gen.FBM2D(wx, wz, noise.FBMParams{
		Octaves: 4, Persistence: 0.5, Lacunarity: 2.0,
		Frequency: continentalFrequency(st.NoiseScale),
	}) + 1) / 2

	oceanMask := noise.Smoothstep(st.OceanThreshold+st.CoastlineBlend, st.OceanThreshold-st.CoastlineBlend, continental)

	amplitudeRaw := (s.gen.FBM2D(wx+10000, wz+10000, noise.FBMParams{
		Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		Frequency: amplitudeFrequency(st.NoiseScale),
	}) + 1) / 2
	amplitude := noise.Lerp(0.3, 1.0, amplitudeRaw) * (1 - oceanMask*0.6)

	upliftRaw := (s.gen.FBM2D(wx-20000, wz-20000, noise.FBMParams{
		Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		Frequency: st.UpliftScale,
	}) + 1) / 2
	uplift := noise.Smoothstep(st.UpliftThresholdLow, st.UpliftThresholdHi, upliftRaw)
	uplift = uplift * (1 - oceanMask)
	if st.UpliftPower > 0 && uplift > 0 {
		uplift = math.Pow(uplift, st.UpliftPower)
	}

	erosionAge := noise.Clamp(st.ErosionAgeBase+s.gen.FBM2D(wx+30000, wz+30000, noise.FBMParams{
		Octaves: 2, Persistence: 0.5, Lacunarity: 2.0, Frequency: 0.0005,
	})*st.ErosionAgeVar, 0, 1)

	return Sample{
		Continental:        continental,
		ElevationAmplitude: amplitude,
		UpliftMask:         uplift,
		RidgeValue:         0,
		ErosionAge:         erosionAge,
		OceanMask:          oceanMask,
	}
}

