package debugview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/chunk"
	"github.com/P7AC1D/genesis-sub000/internal/geology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
	"github.com/P7AC1D/genesis-sub000/internal/ocean"
	"github.com/P7AC1D/genesis-sub000/internal/registry"
)

func testChunk(t *testing.T) *chunk.Chunk {
	t.Helper()
	gen := noise.NewGenerator(5)
	settings := intent.DeriveSettings(intent.RollingTemperatePreset())
	geo := geology.NewSampler(gen, settings)
	return chunk.Generate(chunk.Coord{CX: 0, CZ: 0}, chunk.Config{
		Gen: gen, Geo: geo, Settings: settings,
		W: 8, CellSize: 0.5, SeaLevel: 0.45,
		WorldEdges: ocean.EdgeFlags{North: true, South: true, East: true, West: true},
	})
}

func TestWriteHeightViewProducesWellFormedSVG(t *testing.T) {
	registry.InitRegistry()
	c := testChunk(t)
	var buf bytes.Buffer
	WriteHeightView(&buf, c, 0, 20)

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected a well-formed svg document, got: %s", out)
	}
	if strings.Count(out, "<rect") != c.W*c.W {
		t.Fatalf("expected %d rects, got %d", c.W*c.W, strings.Count(out, "<rect"))
	}
}

func TestWriteBiomeViewUsesRegisteredColors(t *testing.T) {
	registry.InitRegistry()
	c := testChunk(t)
	var buf bytes.Buffer
	WriteBiomeView(&buf, c)
	if buf.Len() == 0 {
		t.Fatal("expected non-empty SVG output")
	}
	col := registry.BiomeColor(c.BiomeAt(0, 0).Dominant())
	if want := colorString(rgb{col.R, col.G, col.B}); !strings.Contains(buf.String(), want) {
		t.Fatalf("expected the registered colour %q of the dominant biome at (0,0)", want)
	}
}

func TestWriteFlowAccumulationViewHandlesAllZero(t *testing.T) {
	c := testChunk(t)
	for i := range c.Drainage.FlowAccum {
		c.Drainage.FlowAccum[i] = 0
	}
	var buf bytes.Buffer
	WriteFlowAccumulationView(&buf, c)
	if buf.Len() == 0 {
		t.Fatal("expected non-empty SVG output even with uniform accumulation")
	}
}
