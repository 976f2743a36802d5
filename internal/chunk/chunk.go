// Package chunk orchestrates the ten-stage terrain pipeline for one chunk:
// it owns every field array produced along the way and runs stages in the
// order the pipeline validator enforces.
//
// Grounded on internal/world/chunk.go's owning-struct-plus-bounds-checked-
// accessor idiom, redirected from a voxel block grid at the terrain field
// stack described in spec §3.
package chunk

import (
	"log"

	"github.com/P7AC1D/genesis-sub000/internal/biome"
	"github.com/P7AC1D/genesis-sub000/internal/climate"
	"github.com/P7AC1D/genesis-sub000/internal/drainage"
	"github.com/P7AC1D/genesis-sub000/internal/geology"
	"github.com/P7AC1D/genesis-sub000/internal/heightmap"
	"github.com/P7AC1D/genesis-sub000/internal/hydrology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/lake"
	"github.com/P7AC1D/genesis-sub000/internal/material"
	"github.com/P7AC1D/genesis-sub000/internal/mesh"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
	"github.com/P7AC1D/genesis-sub000/internal/ocean"
	"github.com/P7AC1D/genesis-sub000/internal/pipeline"
	"github.com/P7AC1D/genesis-sub000/internal/profiling"
	"github.com/P7AC1D/genesis-sub000/internal/river"
)

// Coord identifies a chunk by its integer (cx, cz) position.
type Coord struct{ CX, CZ int }

// Config bundles everything Generate needs beyond the chunk's own
// coordinate: the world-wide noise generator and geological sampler (shared
// across every chunk for the lifetime of the seed), the derived settings,
// cell geometry, and the declared world-boundary edges used to seed the
// ocean flood fill.
type Config struct {
	Gen         *noise.Generator
	Geo         *geology.Sampler
	Settings    intent.Settings
	W           int
	CellSize    float64
	SeaLevel    float64
	WorldEdges  ocean.EdgeFlags
	PreviewMode bool
}

// Chunk owns the complete field stack for one (cx, cz) position, plus the
// validator that recorded the order its stages actually ran in.
type Chunk struct {
	Coord Coord
	W     int

	Heightmap    *heightmap.Heightmap
	Drainage     *drainage.Data
	Rivers       *river.Network
	Lakes        *lake.Network
	Ocean        *ocean.Mask
	Hydrology    *hydrology.Data
	Climate      *climate.Data
	BiomeData    []biome.Weights
	MaterialData []material.Weights

	TerrainMesh *mesh.IndexedMesh
	RiverMesh   *mesh.Mesh
	LakeMesh    *mesh.Mesh

	Validator *pipeline.Validator
}

// BiomeAt returns the biome weight blend at (x, z), or the Temperate
// fallback if out of bounds.
func (c *Chunk) BiomeAt(x, z int) biome.Weights {
	if x < 0 || x >= c.W || z < 0 || z >= c.W {
		var fallback biome.Weights
		fallback[biome.Temperate] = 1
		return fallback
	}
	return c.BiomeData[z*c.W+x]
}

// MaterialAt returns the material weight blend at (x, z), or the Dirt
// fallback if out of bounds.
func (c *Chunk) MaterialAt(x, z int) material.Weights {
	if x < 0 || x >= c.W || z < 0 || z >= c.W {
		return material.DefaultWeights()
	}
	return c.MaterialData[z*c.W+x]
}

// beginStage asserts the validator's ordering invariant and logs a warning
// on violation, per spec §4.15: "the validator is a debug/invariant aid, not a
// scheduler; production paths assert and log on violation." Generate always
// calls stages in dependency order, so this should never fire outside a
// future caller misuse.
func beginStage(v *pipeline.Validator, s pipeline.Stage) {
	if err := v.BeginStage(s); err != nil {
		log.Printf("pipeline: %v", err)
	}
}

// Generate runs every pipeline stage for one chunk in dependency order,
// recomputing drainage after river carving and again after lake carving per
// spec invariant 2 ("geometry precedes water" — once carving occurs,
// downstream fields must be recomputed).
func Generate(coord Coord, cfg Config) *Chunk {
	defer profiling.Track("chunk.Generate")()

	c := &Chunk{Coord: coord, W: cfg.W, Validator: pipeline.NewValidator()}

	originX := float64(coord.CX) * float64(cfg.W) * cfg.CellSize
	originZ := float64(coord.CZ) * float64(cfg.W) * cfg.CellSize

	beginStage(c.Validator, pipeline.StageHeightmap)
	c.Heightmap = heightmap.Generate(cfg.W, cfg.Gen, cfg.Geo, cfg.Settings, heightmap.Params{
		WorldSeed:   0,
		ChunkX:      coord.CX,
		ChunkZ:      coord.CZ,
		OriginX:     originX,
		OriginZ:     originZ,
		CellSize:    cfg.CellSize,
		PreviewMode: cfg.PreviewMode,
	})
	c.Validator.EndStage(pipeline.StageHeightmap)

	beginStage(c.Validator, pipeline.StageDrainage)
	c.Drainage = drainage.Compute(c.Heightmap, cfg.W, cfg.SeaLevel, cfg.CellSize)
	c.Validator.EndStage(pipeline.StageDrainage)

	beginStage(c.Validator, pipeline.StageRiver)
	c.Rivers = river.Build(c.Drainage, c.Heightmap, cfg.Settings, cfg.SeaLevel)
	river.CarveRivers(c.Heightmap, c.Rivers, cfg.CellSize, cfg.Settings.ChannelDepth, 0.3)
	c.Validator.EndStage(pipeline.StageRiver)

	// River carving modified the heightmap: recompute drainage before lake
	// detection reads it.
	lakeDrainage := drainage.Compute(c.Heightmap, cfg.W, cfg.SeaLevel, cfg.CellSize)

	beginStage(c.Validator, pipeline.StageLake)
	c.Lakes = lake.Build(lakeDrainage, c.Heightmap)
	lake.Apply(c.Heightmap, c.Lakes, lake.Adjustments{
		BedFlatness:    0.6,
		ShorelineBlend: 0.5,
		CellSize:       cfg.CellSize,
	})
	c.Validator.EndStage(pipeline.StageLake)

	// Lake carving modified the heightmap again: the drainage fed to ocean
	// and hydrology is the final, post-carve pass.
	c.Drainage = drainage.Compute(c.Heightmap, cfg.W, cfg.SeaLevel, cfg.CellSize)

	beginStage(c.Validator, pipeline.StageOcean)
	c.Ocean = ocean.Build(c.Heightmap, cfg.W, cfg.SeaLevel)
	c.Ocean.FloodFill(cfg.WorldEdges)
	c.Validator.EndStage(pipeline.StageOcean)

	beginStage(c.Validator, pipeline.StageHydrology)
	c.Hydrology = hydrology.Compute(c.Drainage, c.Heightmap, c.Rivers, c.Lakes, cfg.Settings, cfg.SeaLevel, cfg.CellSize)
	c.Validator.EndStage(pipeline.StageHydrology)

	heights := make([]float64, cfg.W*cfg.W)
	for z := 0; z < cfg.W; z++ {
		for x := 0; x < cfg.W; x++ {
			heights[z*cfg.W+x] = c.Heightmap.At(x, z)
		}
	}

	beginStage(c.Validator, pipeline.StageClimate)
	c.Climate = climate.Generate(cfg.W, cfg.Gen, heights, c.Hydrology, cfg.Settings, cfg.SeaLevel, cfg.Settings.HeightScale, cfg.CellSize, originX, originZ)
	c.Validator.EndStage(pipeline.StageClimate)

	beginStage(c.Validator, pipeline.StageBiome)
	c.BiomeData = make([]biome.Weights, cfg.W*cfg.W)
	for z := 0; z < cfg.W; z++ {
		for x := 0; x < cfg.W; x++ {
			i := z*cfg.W + x
			c.BiomeData[i] = biome.Classify(c.Climate.TemperatureAt(x, z), c.Climate.MoistureAt(x, z), c.Hydrology.IsWetland[i])
		}
	}
	c.Validator.EndStage(pipeline.StageBiome)

	beginStage(c.Validator, pipeline.StageMaterial)
	c.MaterialData = make([]material.Weights, cfg.W*cfg.W)
	for z := 0; z < cfg.W; z++ {
		for x := 0; x < cfg.W; x++ {
			i := z*cfg.W + x
			c.MaterialData[i] = material.Blend(material.Inputs{
				Height:          heights[i],
				SeaLevel:        cfg.SeaLevel,
				HeightScale:     cfg.Settings.HeightScale,
				Slope:           c.Hydrology.Slope[i],
				Temperature:     c.Climate.TemperatureAt(x, z),
				Moisture:        c.Climate.MoistureAt(x, z),
				Fertility:       c.Climate.FertilityAt(x, z),
				DistanceToWater: c.Hydrology.DistanceToWaterAt(x, z),
				WaterType:       c.Hydrology.WaterTypeAt(x, z),
			})
		}
	}
	c.Validator.EndStage(pipeline.StageMaterial)

	// Mesh building produces vertex data only; handing it to the GPU is the
	// renderer collaborator's job (spec §5), not this package's.
	beginStage(c.Validator, pipeline.StageMesh)
	c.TerrainMesh = mesh.BuildTerrainSmooth(c.Heightmap, cfg.W, cfg.CellSize, cfg.Settings.BaseHeight, cfg.Settings.HeightScale)
	c.RiverMesh = mesh.BuildRiverMesh(c.Rivers, c.Drainage, cfg.CellSize)
	c.LakeMesh = mesh.BuildLakeMesh(c.Lakes, cfg.CellSize)
	c.Validator.EndStage(pipeline.StageMesh)

	return c
}
