package heightmap

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/geology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
)

func hashHeights(h *Heightmap) string {
	hasher := sha256.New()
	buf := make([]byte, 8)
	for _, v := range h.Values {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		hasher.Write(buf)
	}
	return string(hasher.Sum(nil))
}

func genTestHeightmap(seed int64, cx, cz int) *Heightmap {
	settings := intent.DeriveSettings(intent.RollingTemperatePreset())
	gen := noise.NewGenerator(seed)
	geo := geology.NewSampler(gen, settings)
	p := Params{
		WorldSeed: seed, ChunkX: cx, ChunkZ: cz,
		OriginX: float64(cx) * 32, OriginZ: float64(cz) * 32,
		CellSize: 0.5,
	}
	return Generate(64, gen, geo, settings, p)
}

func TestDeterminism(t *testing.T) {
	h1 := genTestHeightmap(42, 0, 0)
	h2 := genTestHeightmap(42, 0, 0)
	if hashHeights(h1) != hashHeights(h2) {
		t.Fatal("heightmap generation is not deterministic")
	}
}

func TestChunkIndependence(t *testing.T) {
	// A world position at least Border cells from either chunk's edge
	// must produce the same height regardless of which chunk is asked.
	settings := intent.DeriveSettings(intent.FlatPlainsPreset())
	seed := int64(1)
	gen := noise.NewGenerator(seed)
	geo := geology.NewSampler(gen, settings)

	p0 := Params{WorldSeed: seed, ChunkX: 0, ChunkZ: 0, OriginX: 0, OriginZ: 0, CellSize: 1.0}
	h0 := Generate(32, gen, geo, settings, p0)

	// The same chunk origin generated with a 48-cell interior covers every
	// world position of the 32-cell grid; a cell deep inside both grids must
	// get the same height from either.
	pWide := Params{WorldSeed: seed, ChunkX: 0, ChunkZ: 0, OriginX: 0, OriginZ: 0, CellSize: 1.0}
	hWide := Generate(48, gen, geo, settings, pWide)

	x, z := 20, 20
	if math.Abs(h0.At(x, z)-hWide.At(x, z)) > 1e-9 {
		t.Fatalf("chunk independence violated at interior cell: %v vs %v", h0.At(x, z), hWide.At(x, z))
	}
}

func TestSlopeErosionMassConservation(t *testing.T) {
	settings := intent.DeriveSettings(intent.AlpineYoungPreset())
	side := 40
	ext := &Extended{Side: side, Values: make([]float64, side*side)}
	gen := noise.NewGenerator(3)
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			ext.Values[z*side+x] = gen.FBM2D(float64(x)*2, float64(z)*2, noise.FBMParams{
				Octaves: 4, Persistence: 0.5, Lacunarity: 2.0, Frequency: 0.05,
			}) * 20
		}
	}
	before := 0.0
	for _, v := range ext.Values {
		before += v
	}

	applySlopeErosion(ext, settings, 0.5)

	after := 0.0
	for _, v := range ext.Values {
		after += v
	}

	tolerance := 1e-3 * settings.HeightScale * float64(side*side)
	if math.Abs(after-before) > tolerance {
		t.Fatalf("slope erosion did not conserve mass: before=%v after=%v tolerance=%v", before, after, tolerance)
	}
}

func TestFlatPlainsLessVariedThanAlpine(t *testing.T) {
	// Relative sanity check: Flat Plains (low elevation range, no ridge
	// noise) must vary far less than Alpine Young (high elevation range,
	// ridge noise enabled), regardless of exact calibration constants.
	flat := genTestHeightmapWithPreset(intent.FlatPlainsPreset(), 42, 0, 0)
	alpine := genTestHeightmapWithPreset(intent.AlpineYoungPreset(), 42, 0, 0)

	spread := func(h *Heightmap) float64 {
		min, max := math.Inf(1), math.Inf(-1)
		for _, v := range h.Values {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		return max - min
	}

	if spread(flat) >= spread(alpine) {
		t.Fatalf("expected flat plains spread (%v) < alpine young spread (%v)", spread(flat), spread(alpine))
	}
}

func genTestHeightmapWithPreset(in intent.Intent, seed int64, cx, cz int) *Heightmap {
	settings := intent.DeriveSettings(in)
	gen := noise.NewGenerator(seed)
	geo := geology.NewSampler(gen, settings)
	p := Params{
		WorldSeed: seed, ChunkX: cx, ChunkZ: cz,
		OriginX: float64(cx) * 32, OriginZ: float64(cz) * 32,
		CellSize: 0.5,
	}
	return Generate(64, gen, geo, settings, p)
}

func BenchmarkGenerate(b *testing.B) {
	settings := intent.DeriveSettings(intent.RollingTemperatePreset())
	gen := noise.NewGenerator(42)
	geo := geology.NewSampler(gen, settings)
	p := Params{WorldSeed: 42, CellSize: 0.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Generate(64, gen, geo, settings, p)
	}
}
