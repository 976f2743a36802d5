package biome

import (
	"testing"

	"pgregory.net/rapid"
)

// TestWeightsNormalizeToOneProperty generalises TestWeightsNormalizeToOne
// from six fixed cases to arbitrary temperature/moisture pairs (spec §8
// invariant 6, "Weight normalisation").
func TestWeightsNormalizeToOneProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		temperature := rapid.Float64Range(-2, 2).Draw(t, "temperature")
		moisture := rapid.Float64Range(-2, 2).Draw(t, "moisture")
		isWetland := rapid.Bool().Draw(t, "isWetland")

		w := Classify(temperature, moisture, isWetland)
		var total float64
		for _, v := range w {
			if v < -1e-9 {
				t.Fatalf("negative weight at t=%v m=%v: %v", temperature, moisture, w)
			}
			total += v
		}
		if total < 0.99 || total > 1.01 {
			t.Fatalf("weights for t=%v m=%v don't normalize: total=%v", temperature, moisture, total)
		}
	})
}
