// Package noise implements the gradient noise primitives the terrain pipeline
// samples through: 2-D and 3-D gradient noise in [-1,1], fractal Brownian
// motion, and ridge noise.
package noise

import (
	"errors"
	"math"
	"math/rand"
)

// ErrInvalidSeed is returned when a caller passes a nil seed pointer to
// NewGeneratorFromSeed where a concrete seed is required.
var ErrInvalidSeed = errors.New("noise: invalid seed")

// Gradient tables, carried over from the permutation-table noise already
// used for terrain generation elsewhere in this codebase.
var (
	grad3X = [16]float64{1, -1, 1, -1, 1, -1, 1, -1, 0, 0, 0, 0, 1, 0, -1, 0}
	grad3Y = [16]float64{1, 1, -1, -1, 0, 0, 0, 0, 1, -1, 1, -1, 1, -1, 1, -1}
	grad3Z = [16]float64{0, 0, 0, 0, 1, 1, -1, -1, 1, 1, -1, -1, 0, 1, 0, -1}
)

// Generator produces deterministic gradient noise from a 512-entry
// permutation table built by shuffling 0..255 with a seeded PRNG and
// duplicating the lower half into the upper half.
type Generator struct {
	perm [512]int
}

// NewGenerator builds a Generator from an int64 seed.
func NewGenerator(seed int64) *Generator {
	g := &Generator{}
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < 256; i++ {
		g.perm[i] = i
	}
	for i := 0; i < 256; i++ {
		j := rnd.Intn(256-i) + i
		g.perm[i], g.perm[j] = g.perm[j], g.perm[i]
		g.perm[i+256] = g.perm[i]
	}
	return g
}

// NewGeneratorFromSeed builds a Generator from a seed pointer, returning
// ErrInvalidSeed if seed is nil.
func NewGeneratorFromSeed(seed *int64) (*Generator, error) {
	if seed == nil {
		return nil, ErrInvalidSeed
	}
	return NewGenerator(*seed), nil
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func (g *Generator) grad3(hash int, x, y, z float64) float64 {
	i := hash & 15
	return grad3X[i]*x + grad3Y[i]*y + grad3Z[i]*z
}

func floorInt(v float64) int {
	i := int(v)
	if v < float64(i) {
		i--
	}
	return i
}

// Eval2D returns gradient noise at (x, z), in [-1, 1].
func (g *Generator) Eval2D(x, z float64) float64 {
	return g.Eval3D(x, 0, z)
}

// Eval3D returns gradient noise at (x, y, z), in [-1, 1].
func (g *Generator) Eval3D(x, y, z float64) float64 {
	xi := floorInt(x) & 255
	yi := floorInt(y) & 255
	zi := floorInt(z) & 255

	fx := x - math.Floor(x)
	fy := y - math.Floor(y)
	fz := z - math.Floor(z)

	u := fade(fx)
	v := fade(fy)
	w := fade(fz)

	p := g.perm[:]
	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, g.grad3(p[aa], fx, fy, fz), g.grad3(p[ba], fx-1, fy, fz)),
			lerp(u, g.grad3(p[ab], fx, fy-1, fz), g.grad3(p[bb], fx-1, fy-1, fz))),
		lerp(v,
			lerp(u, g.grad3(p[aa+1], fx, fy, fz-1), g.grad3(p[ba+1], fx-1, fy, fz-1)),
			lerp(u, g.grad3(p[ab+1], fx, fy-1, fz-1), g.grad3(p[bb+1], fx-1, fy-1, fz-1))))
}

// FBMParams configures fractal Brownian motion and ridge noise octave sums.
type FBMParams struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Frequency   float64
}

// FBM2D returns fractal Brownian motion: sum of octaves of Eval2D at
// amplitude persistence^i and frequency lacunarity^i*frequency, normalised
// by the sum of amplitudes so the result stays in [-1, 1].
func (g *Generator) FBM2D(x, z float64, p FBMParams) float64 {
	var sum, amp, freq, ampSum float64
	amp = 1
	freq = p.Frequency
	for i := 0; i < p.Octaves; i++ {
		sum += g.Eval2D(x*freq, z*freq) * amp
		ampSum += amp
		amp *= p.Persistence
		freq *= p.Lacunarity
	}
	if ampSum == 0 {
		return 0
	}
	return sum / ampSum
}

// FBM3D is the 3-D counterpart of FBM2D.
func (g *Generator) FBM3D(x, y, z float64, p FBMParams) float64 {
	var sum, amp, freq, ampSum float64
	amp = 1
	freq = p.Frequency
	for i := 0; i < p.Octaves; i++ {
		sum += g.Eval3D(x*freq, y*freq, z*freq) * amp
		ampSum += amp
		amp *= p.Persistence
		freq *= p.Lacunarity
	}
	if ampSum == 0 {
		return 0
	}
	return sum / ampSum
}

// Ridge2D returns ridge noise: an octave sum of (1-|n|)^2, normalised to
// [0, 1] by the sum of amplitudes.
func (g *Generator) Ridge2D(x, z float64, p FBMParams) float64 {
	var sum, amp, freq, ampSum float64
	amp = 1
	freq = p.Frequency
	for i := 0; i < p.Octaves; i++ {
		n := g.Eval2D(x*freq, z*freq)
		ridge := 1 - math.Abs(n)
		sum += ridge * ridge * amp
		ampSum += amp
		amp *= p.Persistence
		freq *= p.Lacunarity
	}
	if ampSum == 0 {
		return 0
	}
	return sum / ampSum
}

// Smoothstep is the standard cubic smoothstep, clamped to [edge0, edge1].
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
