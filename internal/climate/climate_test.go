package climate

import (
	"math/rand"
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/drainage"
	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
	"github.com/P7AC1D/genesis-sub000/internal/hydrology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/lake"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
	"github.com/P7AC1D/genesis-sub000/internal/river"
)

func setup(w int, seed int64) (*noise.Generator, []float64, *hydrology.Data, intent.Settings) {
	gen := noise.NewGenerator(seed)
	rnd := rand.New(rand.NewSource(seed))
	side := w + 1
	h := &heightmap.Heightmap{W: w, Values: make([]float64, side*side)}
	for i := range h.Values {
		h.Values[i] = rnd.Float64() * 20
	}
	d := drainage.Compute(h, w, -100, 0.5)
	settings := intent.DeriveSettings(intent.RollingTemperatePreset())
	riverNet := river.Build(d, h, settings, -100)
	lakeNet := lake.Build(d, h)
	hd := hydrology.Compute(d, h, riverNet, lakeNet, settings, -100, 0.5)

	heights := make([]float64, w*w)
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			heights[z*w+x] = h.At(x, z)
		}
	}
	return gen, heights, hd, settings
}

func TestFieldsWithinBounds(t *testing.T) {
	gen, heights, hd, settings := setup(24, 5)
	cd := Generate(24, gen, heights, hd, settings, -100, 100, 0.5, 0, 0)

	for i := range cd.Temperature {
		if cd.Temperature[i] < -1 || cd.Temperature[i] > 1 {
			t.Fatalf("temperature out of [-1,1] at %d: %v", i, cd.Temperature[i])
		}
		if cd.Moisture[i] < 0 || cd.Moisture[i] > 1 {
			t.Fatalf("moisture out of [0,1] at %d: %v", i, cd.Moisture[i])
		}
		if cd.Fertility[i] < 0 || cd.Fertility[i] > 1 {
			t.Fatalf("fertility out of [0,1] at %d: %v", i, cd.Fertility[i])
		}
		if cd.RainShadow[i] < 0 || cd.RainShadow[i] > 1 {
			t.Fatalf("rain shadow out of [0,1] at %d: %v", i, cd.RainShadow[i])
		}
	}
}

func TestWaterCellsHaveNoFertility(t *testing.T) {
	gen, heights, hd, settings := setup(24, 11)
	cd := Generate(24, gen, heights, hd, settings, -100, 100, 0.5, 0, 0)

	for i := range cd.Fertility {
		if hd.WaterType[i] != river.WaterNone && cd.Fertility[i] != 0 {
			t.Fatalf("water cell %d has nonzero fertility: %v", i, cd.Fertility[i])
		}
	}
}

func TestDeterministic(t *testing.T) {
	gen1, heights1, hd1, settings1 := setup(16, 99)
	gen2, heights2, hd2, settings2 := setup(16, 99)

	cd1 := Generate(16, gen1, heights1, hd1, settings1, -100, 100, 0.5, 10, 20)
	cd2 := Generate(16, gen2, heights2, hd2, settings2, -100, 100, 0.5, 10, 20)

	for i := range cd1.Temperature {
		if cd1.Temperature[i] != cd2.Temperature[i] || cd1.Moisture[i] != cd2.Moisture[i] {
			t.Fatalf("climate generation not deterministic at cell %d", i)
		}
	}
}
