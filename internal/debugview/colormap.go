// Package debugview renders intermediate terrain fields as SVG colormaps,
// one rectangle per cell, for offline inspection of a generated chunk.
//
// Grounded on TerrainDebugView.h/.cpp's GrayscaleMap/TemperatureMap/
// MoistureMap/FertilityMap/HeatMap colour ramps (supplemented feature: the
// spec's distillation dropped the debug-view system entirely). Rendered
// with github.com/ajstarks/svgo instead of an in-memory RGBA texture, since
// this module has no GPU/window surface to upload one to.
package debugview

import "math"

// rgb is a colour in [0,1] per channel.
type rgb struct{ r, g, b float64 }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func lerpRGB(a, b rgb, t float64) rgb {
	t = clamp01(t)
	return rgb{lerp(a.r, b.r, t), lerp(a.g, b.g, t), lerp(a.b, b.b, t)}
}

// grayscale maps value in [0,1] to black..white.
func grayscale(value float64) rgb {
	v := clamp01(value)
	return rgb{v, v, v}
}

// temperatureColormap maps value in [0,1] to blue (cold) .. red (hot).
func temperatureColormap(value float64) rgb {
	return lerpRGB(rgb{0.1, 0.2, 0.9}, rgb{0.9, 0.15, 0.1}, value)
}

// moistureColormap maps value in [0,1] to brown (dry) .. blue-green (wet).
func moistureColormap(value float64) rgb {
	return lerpRGB(rgb{0.55, 0.4, 0.2}, rgb{0.1, 0.55, 0.5}, value)
}

// fertilityColormap maps value in [0,1] to red (barren) .. green (fertile).
func fertilityColormap(value float64) rgb {
	return lerpRGB(rgb{0.8, 0.2, 0.15}, rgb{0.2, 0.75, 0.2}, value)
}

var heatStops = []rgb{
	{0, 0, 0},
	{0.1, 0.1, 0.6},
	{0.1, 0.7, 0.8},
	{0.2, 0.8, 0.2},
	{0.95, 0.9, 0.1},
	{0.9, 0.15, 0.1},
	{1, 1, 1},
}

// heatmap maps value in [0,1] across a black-blue-cyan-green-yellow-red-white
// ramp, used for log-scaled flow accumulation.
func heatmap(value float64) rgb {
	v := clamp01(value)
	segments := float64(len(heatStops) - 1)
	scaled := v * segments
	i := int(math.Floor(scaled))
	if i >= len(heatStops)-1 {
		return heatStops[len(heatStops)-1]
	}
	return lerpRGB(heatStops[i], heatStops[i+1], scaled-float64(i))
}

// logScale normalizes a flow accumulation count against a maximum using
// log1p, so the long tail of high-accumulation river cells doesn't crush
// everything else to black.
func logScale(value uint32, max uint32) float64 {
	if max == 0 {
		return 0
	}
	return math.Log1p(float64(value)) / math.Log1p(float64(max))
}
