// Command terraingen runs the terrain generation pipeline for one chunk,
// writes its debug colormaps to an output directory, and prints a summary
// of chunk statistics to standard output.
//
// Grounded on DowLucas-promptlands/backend/cmd/server/main.go's
// flag.String/flag.Bool/flag.Parse() entry-point style, adapted from an HTTP
// server's config-path-plus-overrides flags to a one-shot CLI tool's
// seed/preset/coordinate flags.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/P7AC1D/genesis-sub000/internal/chunk"
	"github.com/P7AC1D/genesis-sub000/internal/config"
	"github.com/P7AC1D/genesis-sub000/internal/debugview"
	"github.com/P7AC1D/genesis-sub000/internal/geology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
	"github.com/P7AC1D/genesis-sub000/internal/ocean"
	"github.com/P7AC1D/genesis-sub000/internal/registry"
)

func main() {
	seed := flag.Int64("seed", 1, "world seed")
	preset := flag.String("preset", "Rolling Temperate", "named intent preset to use")
	intentPath := flag.String("intent", "", "path to a custom intent YAML file; overrides -preset")
	w := flag.Int("w", 64, "cells per chunk side")
	cellSize := flag.Float64("cell-size", 0.5, "world units per cell")
	seaLevel := flag.Float64("sea-level", 0.45, "sea level, in normalised height units")
	cx := flag.Int("cx", 0, "chunk X coordinate")
	cz := flag.Int("cz", 0, "chunk Z coordinate")
	outDir := flag.String("out", "terraingen_out", "output directory for debug views")
	flag.Parse()

	registry.InitRegistry()

	chosenIntent, err := resolveIntent(*preset, *intentPath)
	if err != nil {
		log.Fatalf("terraingen: %v", err)
	}

	settings := intent.DeriveSettings(chosenIntent)
	gen := noise.NewGenerator(*seed)
	geo := geology.NewSampler(gen, settings)

	c := chunk.Generate(chunk.Coord{CX: *cx, CZ: *cz}, chunk.Config{
		Gen:        gen,
		Geo:        geo,
		Settings:   settings,
		W:          *w,
		CellSize:   *cellSize,
		SeaLevel:   settings.BaseHeight + *seaLevel*settings.HeightScale,
		WorldEdges: ocean.EdgeFlags{North: true, South: true, East: true, West: true},
	})

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("terraingen: creating output directory: %v", err)
	}
	if err := writeDebugViews(c, settings, *outDir); err != nil {
		log.Fatalf("terraingen: writing debug views: %v", err)
	}

	printSummary(c)
}

func resolveIntent(preset, intentPath string) (intent.Intent, error) {
	if intentPath != "" {
		if err := config.LoadFromYAML(intentPath); err != nil {
			return intent.Intent{}, fmt.Errorf("loading intent file %s: %w", intentPath, err)
		}
		return config.ResolveIntent()
	}
	i, ok := intent.PresetByName(preset)
	if !ok {
		return intent.Intent{}, fmt.Errorf("unknown preset %q", preset)
	}
	return i, nil
}

type debugWriter struct {
	name string
	fn   func(f *os.File)
}

func writeDebugViews(c *chunk.Chunk, settings intent.Settings, outDir string) error {
	views := []debugWriter{
		{"height.svg", func(f *os.File) { debugview.WriteHeightView(f, c, settings.BaseHeight, settings.HeightScale) }},
		{"slope.svg", func(f *os.File) { debugview.WriteSlopeView(f, c) }},
		{"flow_accumulation.svg", func(f *os.File) { debugview.WriteFlowAccumulationView(f, c) }},
		{"temperature.svg", func(f *os.File) { debugview.WriteTemperatureView(f, c) }},
		{"moisture.svg", func(f *os.File) { debugview.WriteMoistureView(f, c) }},
		{"fertility.svg", func(f *os.File) { debugview.WriteFertilityView(f, c) }},
		{"distance_to_water.svg", func(f *os.File) { debugview.WriteDistanceToWaterView(f, c, 20.0) }},
		{"biome.svg", func(f *os.File) { debugview.WriteBiomeView(f, c) }},
		{"material.svg", func(f *os.File) { debugview.WriteMaterialView(f, c) }},
	}

	for _, v := range views {
		path := filepath.Join(outDir, v.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		v.fn(f)
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
	}
	return nil
}

func printSummary(c *chunk.Chunk) {
	biomeCounts := make(map[string]int)
	var moistureSum, temperatureSum float64

	for z := 0; z < c.W; z++ {
		for x := 0; x < c.W; x++ {
			biomeCounts[c.BiomeAt(x, z).Dominant().String()]++
			moistureSum += c.Climate.MoistureAt(x, z)
			temperatureSum += c.Climate.TemperatureAt(x, z)
		}
	}

	cellCount := float64(c.W * c.W)
	fmt.Printf("chunk (%d, %d): %d x %d cells\n", c.Coord.CX, c.Coord.CZ, c.W, c.W)
	fmt.Printf("rivers: %d paths, %d segments\n", len(c.Rivers.Paths), len(c.Rivers.Segments))
	fmt.Printf("lakes: %d basins\n", len(c.Lakes.Basins))
	fmt.Printf("mean moisture: %.3f, mean temperature: %.3f\n", moistureSum/cellCount, temperatureSum/cellCount)
	fmt.Println("biome distribution:")
	for _, name := range []string{"Polar", "Tundra", "Boreal", "Temperate", "Mediterranean", "Grassland", "Desert", "Tropical", "Rainforest", "Wetland"} {
		if n := biomeCounts[name]; n > 0 {
			fmt.Printf("  %-14s %5d (%4.1f%%)\n", name, n, 100*float64(n)/cellCount)
		}
	}
}
