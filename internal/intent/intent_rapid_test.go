package intent

import (
	"testing"

	"pgregory.net/rapid"
)

// TestDeriveSettingsSaturationProperty generalises TestDeriveSettingsSaturation
// from the eight named presets to arbitrary intents with components in
// [0,1] (spec §8 invariant 8, "Intent saturation").
func TestDeriveSettingsSaturationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := Intent{
			ContinentalScale:  rapid.Float64Range(0, 1).Draw(t, "continentalScale"),
			ElevationRange:    rapid.Float64Range(0, 1).Draw(t, "elevationRange"),
			MountainCoverage:  rapid.Float64Range(0, 1).Draw(t, "mountainCoverage"),
			MountainSharpness: rapid.Float64Range(0, 1).Draw(t, "mountainSharpness"),
			Ruggedness:        rapid.Float64Range(0, 1).Draw(t, "ruggedness"),
			ErosionAge:        rapid.Float64Range(0, 1).Draw(t, "erosionAge"),
			RiverStrength:     rapid.Float64Range(0, 1).Draw(t, "riverStrength"),
			Chaos:             rapid.Float64Range(0, 1).Draw(t, "chaos"),
		}

		if _, err := NewIntent(i); err != nil {
			t.Fatalf("expected in-range intent to validate: %v", err)
		}

		s := DeriveSettings(i)

		if s.UpliftThresholdHi < s.UpliftThresholdLow+0.1-1e-9 {
			t.Fatalf("upliftThresholdHi too low: %v < %v+0.1", s.UpliftThresholdHi, s.UpliftThresholdLow)
		}
		if s.Persistence*s.Lacunarity >= 1.0+1e-9 {
			t.Fatalf("persistence*lacunarity >= 1: %v", s.Persistence*s.Lacunarity)
		}
		if s.WarpLevels < 1 || s.WarpLevels > 4 {
			t.Fatalf("warpLevels out of [1,4]: %v", s.WarpLevels)
		}
		if s.ErosionIterations < 10 || s.ErosionIterations > 500 {
			t.Fatalf("erosionIterations out of [10,500]: %v", s.ErosionIterations)
		}
	})
}

// TestDeriveSettingsDeterministicProperty checks determinism (spec §8
// invariant 1, specialised to the Intent->Settings mapping) over arbitrary
// intents, not just one fixed preset.
func TestDeriveSettingsDeterministicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := Intent{
			ContinentalScale:  rapid.Float64Range(0, 1).Draw(t, "continentalScale"),
			ElevationRange:    rapid.Float64Range(0, 1).Draw(t, "elevationRange"),
			MountainCoverage:  rapid.Float64Range(0, 1).Draw(t, "mountainCoverage"),
			MountainSharpness: rapid.Float64Range(0, 1).Draw(t, "mountainSharpness"),
			Ruggedness:        rapid.Float64Range(0, 1).Draw(t, "ruggedness"),
			ErosionAge:        rapid.Float64Range(0, 1).Draw(t, "erosionAge"),
			RiverStrength:     rapid.Float64Range(0, 1).Draw(t, "riverStrength"),
			Chaos:             rapid.Float64Range(0, 1).Draw(t, "chaos"),
		}
		if DeriveSettings(i) != DeriveSettings(i) {
			t.Fatal("DeriveSettings is not deterministic for the same intent")
		}
	})
}
