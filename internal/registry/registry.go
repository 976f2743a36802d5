// Package registry holds ordered, init-once definition tables for biomes and
// materials: display name, legend colour, and render metadata that the
// classification packages themselves don't carry.
//
// Grounded on blocks.go's RegisterBlock/InitRegistry idiom — a fixed
// registration order that other code can rely on for stable indexing — here
// redirected from block textures/hardness at biome and material legend
// entries used by internal/debugview and cmd/terraingen.
package registry

import (
	"github.com/P7AC1D/genesis-sub000/internal/biome"
	"github.com/P7AC1D/genesis-sub000/internal/material"
)

// BiomeDefinition is the legend/display metadata for one biome.
type BiomeDefinition struct {
	ID    biome.Biome
	Name  string
	Color biome.Color
}

// MaterialDefinition is the legend/display metadata for one material.
type MaterialDefinition struct {
	ID    material.Material
	Name  string
	Color biome.Color // reuse the same RGB-in-[0,1] shape biome.Color uses
}

var (
	BiomeDefs    = make(map[biome.Biome]*BiomeDefinition)
	MaterialDefs = make(map[material.Material]*MaterialDefinition)

	// BiomeOrder and MaterialOrder record registration order, the stable
	// iteration order debugview legends and cmd/terraingen summaries use.
	BiomeOrder    []biome.Biome
	MaterialOrder []material.Material
)

// RegisterBiome adds one biome to the registry. Call order determines
// legend order.
func RegisterBiome(def *BiomeDefinition) {
	BiomeDefs[def.ID] = def
	BiomeOrder = append(BiomeOrder, def.ID)
}

// RegisterMaterial adds one material to the registry. Call order determines
// legend order.
func RegisterMaterial(def *MaterialDefinition) {
	MaterialDefs[def.ID] = def
	MaterialOrder = append(MaterialOrder, def.ID)
}

// InitRegistry populates both tables in a fixed order: coldest-to-warmest
// for biomes, hardest-to-softest for materials, so a legend built by
// iterating BiomeOrder/MaterialOrder reads the same way every run.
func InitRegistry() {
	RegisterBiome(&BiomeDefinition{ID: biome.Polar, Name: "Polar", Color: biome.ColorOf(biome.Polar)})
	RegisterBiome(&BiomeDefinition{ID: biome.Tundra, Name: "Tundra", Color: biome.ColorOf(biome.Tundra)})
	RegisterBiome(&BiomeDefinition{ID: biome.Boreal, Name: "Boreal", Color: biome.ColorOf(biome.Boreal)})
	RegisterBiome(&BiomeDefinition{ID: biome.Temperate, Name: "Temperate", Color: biome.ColorOf(biome.Temperate)})
	RegisterBiome(&BiomeDefinition{ID: biome.Mediterranean, Name: "Mediterranean", Color: biome.ColorOf(biome.Mediterranean)})
	RegisterBiome(&BiomeDefinition{ID: biome.Grassland, Name: "Grassland", Color: biome.ColorOf(biome.Grassland)})
	RegisterBiome(&BiomeDefinition{ID: biome.Desert, Name: "Desert", Color: biome.ColorOf(biome.Desert)})
	RegisterBiome(&BiomeDefinition{ID: biome.Tropical, Name: "Tropical", Color: biome.ColorOf(biome.Tropical)})
	RegisterBiome(&BiomeDefinition{ID: biome.Rainforest, Name: "Rainforest", Color: biome.ColorOf(biome.Rainforest)})
	RegisterBiome(&BiomeDefinition{ID: biome.Wetland, Name: "Wetland", Color: biome.ColorOf(biome.Wetland)})

	RegisterMaterial(&MaterialDefinition{ID: material.Rock, Name: "Rock", Color: biome.Color{R: 0.5, G: 0.5, B: 0.5}})
	RegisterMaterial(&MaterialDefinition{ID: material.Dirt, Name: "Dirt", Color: biome.Color{R: 0.45, G: 0.3, B: 0.18}})
	RegisterMaterial(&MaterialDefinition{ID: material.Grass, Name: "Grass", Color: biome.Color{R: 0.3, G: 0.55, B: 0.2}})
	RegisterMaterial(&MaterialDefinition{ID: material.Sand, Name: "Sand", Color: biome.Color{R: 0.85, G: 0.8, B: 0.55}})
	RegisterMaterial(&MaterialDefinition{ID: material.Snow, Name: "Snow", Color: biome.Color{R: 0.95, G: 0.95, B: 0.98}})
	RegisterMaterial(&MaterialDefinition{ID: material.Ice, Name: "Ice", Color: biome.Color{R: 0.75, G: 0.9, B: 0.95}})
	RegisterMaterial(&MaterialDefinition{ID: material.Mud, Name: "Mud", Color: biome.Color{R: 0.35, G: 0.25, B: 0.15}})
	RegisterMaterial(&MaterialDefinition{ID: material.Water, Name: "Water", Color: biome.Color{R: 0.15, G: 0.35, B: 0.55}})
}

// BiomeColor returns the registered legend colour for b, or black if b was
// never registered (mirrors GetTextureLayer's fallback-to-zero idiom).
func BiomeColor(b biome.Biome) biome.Color {
	if def, ok := BiomeDefs[b]; ok {
		return def.Color
	}
	return biome.Color{}
}

// MaterialColor returns the registered legend colour for m, or black if m
// was never registered.
func MaterialColor(m material.Material) biome.Color {
	if def, ok := MaterialDefs[m]; ok {
		return def.Color
	}
	return biome.Color{}
}
