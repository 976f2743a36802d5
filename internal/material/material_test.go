package material

import (
	"math"
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/river"
)

func TestWeightsNormalizeToOne(t *testing.T) {
	cases := []Inputs{
		{Height: 50, SeaLevel: 0, HeightScale: 100, Slope: 0.1, Temperature: 0.2, Moisture: 0.5, Fertility: 0.6, DistanceToWater: 5},
		{Height: 90, SeaLevel: 0, HeightScale: 100, Slope: 1.5, Temperature: -0.8, Moisture: 0.2, Fertility: 0.1, DistanceToWater: 50},
		{Height: 10, SeaLevel: 0, HeightScale: 100, Slope: 0.05, Temperature: 0.6, Moisture: 0.1, Fertility: 0.05, DistanceToWater: 2},
		{Height: 5, SeaLevel: 0, HeightScale: 100, Slope: 0.3, Temperature: 0.4, Moisture: 0.9, Fertility: 0.8, DistanceToWater: 1},
	}

	for _, in := range cases {
		w := Blend(in)
		var total float64
		for _, v := range w {
			if v < -1e-9 {
				t.Fatalf("negative weight for %+v: %v", in, w)
			}
			total += v
		}
		if math.Abs(total-1) > 1e-9 {
			t.Fatalf("weights for %+v don't sum to 1: total=%v", in, total)
		}
	}
}

func TestWaterShortCircuits(t *testing.T) {
	in := Inputs{WaterType: river.WaterRiver, Slope: 2, Temperature: 1, Moisture: 1}
	w := Blend(in)
	if w[Water] != 1 {
		t.Fatalf("expected full water weight, got %v", w[Water])
	}
	for i, v := range w {
		if Material(i) != Water && v != 0 {
			t.Fatalf("expected all non-water weights zero, got %v at %v", v, Material(i))
		}
	}
}

func TestDegenerateFallsBackToDirt(t *testing.T) {
	// Fully flat, warm, dry, fully fertile terrain with no water proximity:
	// every weight, Dirt included, lands at 0 (grass needs moisture), so
	// Blend normalizes via the Dirt fallback.
	in := Inputs{Height: 0, SeaLevel: 0, HeightScale: 100, Slope: 0, Temperature: 0.5, Moisture: 0, Fertility: 1, DistanceToWater: 1000}
	w := Blend(in)
	var total float64
	for _, v := range w {
		total += v
	}
	if math.Abs(total-1) > 1e-9 {
		t.Fatalf("expected normalized total of 1, got %v", total)
	}
	if w.Dominant() != Dirt || w[Dirt] != 1 {
		t.Fatalf("expected Dirt fallback, got %+v", w)
	}
}

func TestDefaultWeightsIsDirt(t *testing.T) {
	w := DefaultWeights()
	if w.Dominant() != Dirt || w[Dirt] != 1 {
		t.Fatalf("expected default weights to be full Dirt, got %+v", w)
	}
}
