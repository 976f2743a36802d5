package biome

import (
	"math"
	"testing"
)

func TestWeightsNormalizeToOne(t *testing.T) {
	cases := []struct {
		t, m     float64
		isWet    bool
	}{
		{0.8, -0.4, false},
		{-0.9, 0.1, false},
		{0.1, 0.9, true},
		{-0.2, -0.8, false},
		{0.0, 0.0, false},
		{0.5, 0.5, true},
	}

	for _, c := range cases {
		w := Classify(c.t, c.m, c.isWet)
		var total float64
		for _, v := range w {
			if v < -1e-9 {
				t.Fatalf("negative weight for t=%v m=%v: %v", c.t, c.m, w)
			}
			total += v
		}
		if math.Abs(total-1) > 1e-9 {
			t.Fatalf("weights for t=%v m=%v don't sum to 1: total=%v", c.t, c.m, total)
		}
	}
}

func TestDegenerateFallsBackToTemperate(t *testing.T) {
	// Extreme values with no wetland flag should not all collapse below
	// threshold, but contrived inputs at the boundary must still fall back.
	w := Classify(1.0, 1.0, false)
	var total float64
	for _, v := range w {
		total += v
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("expected normalized total near 1, got %v", total)
	}

	// Temperature 0.22 with moisture 2.0 lies outside every biome band, so
	// every raw weight is 0 and Classify returns full Temperate.
	fb := Classify(0.22, 2.0, false)
	if fb.Dominant() != Temperate || fb[Temperate] != 1 {
		t.Fatalf("expected Temperate fallback, got %+v", fb)
	}
}

func TestDominantMatchesMax(t *testing.T) {
	w := Classify(-0.8, 0.1, false)
	dom := w.Dominant()
	for i, v := range w {
		if Biome(i) != dom && v > w[dom] {
			t.Fatalf("dominant %v is not the max weight: %v > %v", dom, v, w[dom])
		}
	}
}

func TestColorOfKnownBiomes(t *testing.T) {
	for b := Polar; b <= Wetland; b++ {
		c := ColorOf(b)
		if c.R == 0 && c.G == 0 && c.B == 0 {
			t.Fatalf("biome %v has unset reference colour", b)
		}
	}
}
