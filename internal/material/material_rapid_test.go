package material

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/P7AC1D/genesis-sub000/internal/river"
)

// TestWeightsNormalizeToOneProperty generalises TestWeightsNormalizeToOne
// from four fixed cases to arbitrary per-cell inputs (spec §8 invariant 6,
// "Weight normalisation").
func TestWeightsNormalizeToOneProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		heightScale := rapid.Float64Range(1, 200).Draw(t, "heightScale")
		in := Inputs{
			Height:          rapid.Float64Range(-50, 250).Draw(t, "height"),
			SeaLevel:        0,
			HeightScale:     heightScale,
			Slope:           rapid.Float64Range(0, 3).Draw(t, "slope"),
			Temperature:     rapid.Float64Range(-1, 1).Draw(t, "temperature"),
			Moisture:        rapid.Float64Range(0, 1).Draw(t, "moisture"),
			Fertility:       rapid.Float64Range(0, 1).Draw(t, "fertility"),
			DistanceToWater: rapid.Float64Range(0, 100).Draw(t, "distanceToWater"),
			WaterType:       river.WaterType(rapid.IntRange(0, 4).Draw(t, "waterType")),
		}

		w := Blend(in)
		var total float64
		for _, v := range w {
			if v < -1e-9 {
				t.Fatalf("negative weight for %+v: %v", in, w)
			}
			total += v
		}
		if total < 0.99 || total > 1.01 {
			t.Fatalf("weights for %+v don't normalize: total=%v", in, total)
		}
	})
}
