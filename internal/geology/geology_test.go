package geology

import (
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
)

func TestSampleDeterministic(t *testing.T) {
	gen := noise.NewGenerator(42)
	settings := intent.DeriveSettings(intent.RollingTemperatePreset())
	s1 := NewSampler(gen, settings)
	s2 := NewSampler(gen, settings)

	for i := 0; i < 50; i++ {
		wx := float64(i) * 3.0
		wz := float64(i) * 5.0
		a := s1.Sample(wx, wz)
		b := s2.Sample(wx, wz)
		if a != b {
			t.Fatalf("sample not deterministic at (%v,%v): %+v vs %+v", wx, wz, a, b)
		}
	}
}

func TestSampleFieldRanges(t *testing.T) {
	gen := noise.NewGenerator(7)
	settings := intent.DeriveSettings(intent.AlpineYoungPreset())
	s := NewSampler(gen, settings)

	for i := 0; i < 200; i++ {
		wx := float64(i) * 13.0
		wz := float64(i) * -7.0
		v := s.Sample(wx, wz)
		if v.Continental < -0.001 || v.Continental > 1.001 {
			t.Fatalf("continental out of [0,1]: %v", v.Continental)
		}
		if v.ElevationAmplitude < -0.001 || v.ElevationAmplitude > 1.001 {
			t.Fatalf("elevation amplitude out of [0,1]: %v", v.ElevationAmplitude)
		}
		if v.UpliftMask < -0.001 || v.UpliftMask > 1.001 {
			t.Fatalf("uplift mask out of [0,1]: %v", v.UpliftMask)
		}
		if v.ErosionAge < -0.001 || v.ErosionAge > 1.001 {
			t.Fatalf("erosion age out of [0,1]: %v", v.ErosionAge)
		}
		if v.OceanMask < -0.001 || v.OceanMask > 1.001 {
			t.Fatalf("ocean mask out of [0,1]: %v", v.OceanMask)
		}
	}
}
