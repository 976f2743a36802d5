package debugview

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/P7AC1D/genesis-sub000/internal/chunk"
	"github.com/P7AC1D/genesis-sub000/internal/registry"
)

// CellPixels is the side length, in SVG pixels, each terrain cell renders
// as. Kept small since debug views are meant for a W up to a few hundred.
const CellPixels = 4

func colorString(c rgb) string {
	return svgFillStyle(byte(clamp01(c.r)*255), byte(clamp01(c.g)*255), byte(clamp01(c.b)*255))
}

func svgFillStyle(r, g, b byte) string {
	return "fill:rgb(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) + ")"
}

// render draws one CellPixels x CellPixels rectangle per cell of a w x w
// grid, colouring each with valueAt(x, z).
func render(out io.Writer, w int, valueAt func(x, z int) rgb) {
	canvas := svg.New(out)
	side := w * CellPixels
	canvas.Start(side, side)
	for z := 0; z < w; z++ {
		for x := 0; x < w; x++ {
			canvas.Rect(x*CellPixels, z*CellPixels, CellPixels, CellPixels, colorString(valueAt(x, z)))
		}
	}
	canvas.End()
}

// WriteHeightView renders the chunk's heightmap as a grayscale ramp over
// [baseHeight, baseHeight+heightScale].
func WriteHeightView(out io.Writer, c *chunk.Chunk, baseHeight, heightScale float64) {
	render(out, c.W, func(x, z int) rgb {
		t := (c.Heightmap.At(x, z) - baseHeight) / heightScale
		return grayscale(t)
	})
}

// WriteSlopeView renders the drainage slope field, clamped to [0,1] (a
// slope of 1.0 is a 45 degree grade, matching drainage's own scale).
func WriteSlopeView(out io.Writer, c *chunk.Chunk) {
	render(out, c.W, func(x, z int) rgb {
		return grayscale(c.Drainage.SlopeAt(x, z))
	})
}

// WriteFlowAccumulationView renders log-scaled flow accumulation on the
// black-blue-cyan-green-yellow-red-white heat ramp, matching
// GenerateFlowAccumulationView's log-scale heatmap.
func WriteFlowAccumulationView(out io.Writer, c *chunk.Chunk) {
	var maxAccum uint32
	for z := 0; z < c.W; z++ {
		for x := 0; x < c.W; x++ {
			if a := c.Drainage.AccumAt(x, z); a > maxAccum {
				maxAccum = a
			}
		}
	}
	render(out, c.W, func(x, z int) rgb {
		return heatmap(logScale(c.Drainage.AccumAt(x, z), maxAccum))
	})
}

// WriteTemperatureView renders the climate temperature field, which
// internal/climate keeps in [-1,1], remapped to [0,1] for the colormap.
func WriteTemperatureView(out io.Writer, c *chunk.Chunk) {
	render(out, c.W, func(x, z int) rgb {
		return temperatureColormap((c.Climate.TemperatureAt(x, z) + 1) / 2)
	})
}

// WriteMoistureView renders the climate moisture field.
func WriteMoistureView(out io.Writer, c *chunk.Chunk) {
	render(out, c.W, func(x, z int) rgb {
		return moistureColormap(c.Climate.MoistureAt(x, z))
	})
}

// WriteFertilityView renders the climate fertility field.
func WriteFertilityView(out io.Writer, c *chunk.Chunk) {
	render(out, c.W, func(x, z int) rgb {
		return fertilityColormap(c.Climate.FertilityAt(x, z))
	})
}

// WriteDistanceToWaterView renders the hydrology distance-to-water field as
// a grayscale ramp over [0, maxDistance].
func WriteDistanceToWaterView(out io.Writer, c *chunk.Chunk, maxDistance float64) {
	render(out, c.W, func(x, z int) rgb {
		return grayscale(c.Hydrology.DistanceToWaterAt(x, z) / maxDistance)
	})
}

// WriteBiomeView renders each cell's dominant biome using the registry's
// categorical legend colours.
func WriteBiomeView(out io.Writer, c *chunk.Chunk) {
	render(out, c.W, func(x, z int) rgb {
		col := registry.BiomeColor(c.BiomeAt(x, z).Dominant())
		return rgb{col.R, col.G, col.B}
	})
}

// WriteMaterialView renders each cell's dominant material using the
// registry's categorical legend colours.
func WriteMaterialView(out io.Writer, c *chunk.Chunk) {
	render(out, c.W, func(x, z int) rgb {
		col := registry.MaterialColor(c.MaterialAt(x, z).Dominant())
		return rgb{col.R, col.G, col.B}
	})
}
