package noise

import (
	"math"
	"testing"
)

func TestEval2DDeterministic(t *testing.T) {
	g1 := NewGenerator(42)
	g2 := NewGenerator(42)
	for i := 0; i < 100; i++ {
		x := float64(i) * 1.37
		z := float64(i) * 0.53
		if g1.Eval2D(x, z) != g2.Eval2D(x, z) {
			t.Fatalf("noise not deterministic at i=%d", i)
		}
	}
}

func TestEval2DRange(t *testing.T) {
	g := NewGenerator(1)
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.1
		z := float64(i) * 0.2
		v := g.Eval2D(x, z)
		if v < -1.001 || v > 1.001 {
			t.Fatalf("Eval2D(%v,%v) = %v out of [-1,1]", x, z, v)
		}
	}
}

func TestFBMRange(t *testing.T) {
	g := NewGenerator(7)
	p := FBMParams{Octaves: 5, Persistence: 0.5, Lacunarity: 2.0, Frequency: 0.01}
	for i := 0; i < 500; i++ {
		v := g.FBM2D(float64(i)*3.1, float64(i)*1.9, p)
		if v < -1.001 || v > 1.001 {
			t.Fatalf("FBM2D out of range: %v", v)
		}
	}
}

func TestRidgeRange(t *testing.T) {
	g := NewGenerator(7)
	p := FBMParams{Octaves: 3, Persistence: 0.5, Lacunarity: 2.0, Frequency: 0.01}
	for i := 0; i < 500; i++ {
		v := g.Ridge2D(float64(i)*3.1, float64(i)*1.9, p)
		if v < -0.001 || v > 1.001 {
			t.Fatalf("Ridge2D out of range: %v", v)
		}
	}
}

func TestNewGeneratorFromSeedNil(t *testing.T) {
	if _, err := NewGeneratorFromSeed(nil); err != ErrInvalidSeed {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
}

func TestNewGeneratorFromSeedValid(t *testing.T) {
	s := int64(99)
	g, err := NewGeneratorFromSeed(&s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g == nil {
		t.Fatal("expected non-nil generator")
	}
}

func TestSmoothstepMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20.0
		v := Smoothstep(0, 1, x)
		if v < prev-1e-9 {
			t.Fatalf("smoothstep not monotonic at x=%v", x)
		}
		prev = v
	}
	if math.Abs(Smoothstep(0, 1, 0)-0) > 1e-9 || math.Abs(Smoothstep(0, 1, 1)-1) > 1e-9 {
		t.Fatal("smoothstep endpoints incorrect")
	}
}
