// Package biome classifies cells into a soft blend of ten biomes from
// temperature, moisture, and wetland fields.
package biome

import "github.com/P7AC1D/genesis-sub000/internal/noise"

// Biome is one of the ten closed biome categories.
type Biome int

const (
	Polar Biome = iota
	Tundra
	Boreal
	Temperate
	Mediterranean
	Grassland
	Desert
	Tropical
	Rainforest
	Wetland
	biomeCount
)

var names = [...]string{
	"Polar", "Tundra", "Boreal", "Temperate", "Mediterranean",
	"Grassland", "Desert", "Tropical", "Rainforest", "Wetland",
}

// String returns the biome's display name.
func (b Biome) String() string {
	if b < 0 || int(b) >= len(names) {
		return "Unknown"
	}
	return names[b]
}

// Color is a reference display colour for the debug colormap view.
type Color struct{ R, G, B float64 }

var colors = [...]Color{
	Polar:         {0.95, 0.95, 1.0},
	Tundra:        {0.7, 0.75, 0.8},
	Boreal:        {0.2, 0.4, 0.3},
	Temperate:     {0.3, 0.6, 0.3},
	Mediterranean: {0.6, 0.7, 0.4},
	Grassland:     {0.7, 0.8, 0.4},
	Desert:        {0.9, 0.8, 0.5},
	Tropical:      {0.2, 0.7, 0.3},
	Rainforest:    {0.1, 0.5, 0.2},
	Wetland:       {0.3, 0.5, 0.5},
}

// ColorOf returns b's reference display colour.
func ColorOf(b Biome) Color {
	if b < 0 || int(b) >= len(colors) {
		return Color{}
	}
	return colors[b]
}

// Weights holds one weight per biome, summing to 1 after Classify.
type Weights [biomeCount]float64

// band is the smoothstep threshold band S(v, threshold, width) from spec
// §4.11, ported verbatim from BiomeClassifier.cpp.
func band(v, threshold, width float64) float64 {
	t := noise.Clamp((v-threshold+width)/(2*width), 0, 1)
	return noise.Smoothstep(0, 1, t)
}

// Classify computes the per-biome weight blend for one cell from its
// temperature and moisture fields and its wetland flag.
func Classify(temperature, moisture float64, isWetland bool) Weights {
	var w Weights

	w[Polar] = band(-temperature, 0.6, 0.15)
	w[Tundra] = band(-temperature, 0.3, 0.15) * (1 - band(-temperature, 0.6, 0.15))
	w[Boreal] = band(-temperature, 0.0, 0.2) * (1 - band(-temperature, 0.3, 0.15)) * band(moisture, 0.3, 0.15)
	w[Desert] = band(-moisture, -0.15, 0.1) * band(temperature, -0.2, 0.2)
	w[Grassland] = band(moisture, 0.2, 0.15) * band(-moisture, -0.5, 0.15) * band(temperature, 0.0, 0.2)
	w[Mediterranean] = band(temperature, 0.2, 0.2) * band(moisture, 0.2, 0.15) * band(-moisture, -0.5, 0.15)
	w[Tropical] = band(moisture, 0.5, 0.15) * band(temperature, 0.3, 0.15) * (1 - band(moisture, 0.7, 0.15))
	w[Rainforest] = band(moisture, 0.7, 0.1) * band(temperature, 0.4, 0.15)
	w[Temperate] = band(temperature, -0.3, 0.2) * band(-temperature, -0.5, 0.2) * band(moisture, 0.25, 0.15) * band(-moisture, -0.7, 0.15)
	if isWetland {
		w[Wetland] = 0.7
	}

	var total float64
	for _, v := range w {
		total += v
	}
	if total < 0.01 {
		var fallback Weights
		fallback[Temperate] = 1
		return fallback
	}
	for i := range w {
		w[i] /= total
	}
	return w
}

// Dominant returns the highest-weighted biome.
func (w Weights) Dominant() Biome {
	best := Biome(0)
	for i := 1; i < len(w); i++ {
		if w[i] > w[best] {
			best = Biome(i)
		}
	}
	return best
}
