// Package config holds the process-wide WorldSettings used to derive a
// generation pass: cell geometry, view distance, world seed, and the
// terrain intent/settings pair. Adapted from the teacher's mutex-guarded
// global settings idiom (RenderSettings/WorldGenSettings), collapsed into
// one struct since this module has no separate renderer-configuration
// surface to keep distinct from world generation.
package config

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/P7AC1D/genesis-sub000/internal/intent"
)

// WorldSettings holds every configuration value a generation pass needs.
type WorldSettings struct {
	mu sync.RWMutex

	worldSeed     int64
	cellsPerChunk int
	cellSize      float64
	viewDistance  int // in chunks
	seaLevel      float64
	waterEnabled  bool
	presetName    string
	customIntent  intent.Intent
}

var globalWorldSettings = &WorldSettings{
	worldSeed:     1,
	cellsPerChunk: 64,
	cellSize:      1.0,
	viewDistance:  8,
	seaLevel:      0.45,
	waterEnabled:  true,
	presetName:    "Rolling Temperate",
}

// FileConfig is the plain, mutex-free shape WorldSettings (de)serializes
// to/from YAML, matching spec §6's "Intent/WorldSettings are serialised
// with gopkg.in/yaml.v3".
type FileConfig struct {
	WorldSeed     int64          `yaml:"worldSeed"`
	CellsPerChunk int            `yaml:"cellsPerChunk"`
	CellSize      float64        `yaml:"cellSize"`
	ViewDistance  int            `yaml:"viewDistance"`
	SeaLevel      float64        `yaml:"seaLevel"`
	WaterEnabled  bool           `yaml:"waterEnabled"`
	Preset        string         `yaml:"preset,omitempty"`
	CustomIntent  *intent.Intent `yaml:"customIntent,omitempty"`
}

// GetViewDistance returns the current view distance in chunks.
func GetViewDistance() int {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.viewDistance
}

// SetViewDistance sets the view distance, clamped to [1, 32].
func SetViewDistance(distance int) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	if distance < 1 {
		distance = 1
	}
	if distance > 32 {
		distance = 32
	}
	globalWorldSettings.viewDistance = distance
}

// GetCellsPerChunk returns W, the number of cells per chunk side.
func GetCellsPerChunk() int {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.cellsPerChunk
}

// SetCellsPerChunk sets W, clamped to a sane [8, 512] range.
func SetCellsPerChunk(w int) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	if w < 8 {
		w = 8
	}
	if w > 512 {
		w = 512
	}
	globalWorldSettings.cellsPerChunk = w
}

// GetCellSize returns the world-units-per-cell scale S.
func GetCellSize() float64 {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.cellSize
}

// SetCellSize sets S; non-positive values are ignored.
func SetCellSize(s float64) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	if s <= 0 {
		return
	}
	globalWorldSettings.cellSize = s
}

// GetSeaLevel returns the configured sea level, in world height units.
func GetSeaLevel() float64 {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.seaLevel
}

// SetSeaLevel sets the sea level.
func SetSeaLevel(level float64) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.seaLevel = level
}

// GetWaterEnabled returns whether rivers/lakes/ocean generation is enabled.
func GetWaterEnabled() bool {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.waterEnabled
}

// SetWaterEnabled toggles rivers/lakes/ocean generation.
func SetWaterEnabled(enabled bool) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.waterEnabled = enabled
}

// GetWorldSeed returns the active world seed.
func GetWorldSeed() int64 {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	return globalWorldSettings.worldSeed
}

// SetWorldSeed sets the world seed.
func SetWorldSeed(seed int64) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.worldSeed = seed
}

// ResolveIntent returns the active Intent: the named preset if one was set,
// otherwise the custom Intent loaded from file.
func ResolveIntent() (intent.Intent, error) {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	if globalWorldSettings.presetName != "" {
		if i, ok := intent.PresetByName(globalWorldSettings.presetName); ok {
			return i, nil
		}
	}
	return intent.NewIntent(globalWorldSettings.customIntent)
}

// SetPreset selects a named preset, clearing any custom Intent.
func SetPreset(name string) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.presetName = name
	globalWorldSettings.customIntent = intent.Intent{}
}

// SetCustomIntent installs an explicit Intent, clearing the preset name.
func SetCustomIntent(i intent.Intent) {
	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.presetName = ""
	globalWorldSettings.customIntent = i
}

func snapshot() FileConfig {
	globalWorldSettings.mu.RLock()
	defer globalWorldSettings.mu.RUnlock()
	fc := FileConfig{
		WorldSeed:     globalWorldSettings.worldSeed,
		CellsPerChunk: globalWorldSettings.cellsPerChunk,
		CellSize:      globalWorldSettings.cellSize,
		ViewDistance:  globalWorldSettings.viewDistance,
		SeaLevel:      globalWorldSettings.seaLevel,
		WaterEnabled:  globalWorldSettings.waterEnabled,
		Preset:        globalWorldSettings.presetName,
	}
	if globalWorldSettings.presetName == "" {
		ci := globalWorldSettings.customIntent
		fc.CustomIntent = &ci
	}
	return fc
}

// SaveToYAML writes the current settings to path as YAML.
func SaveToYAML(path string) error {
	out, err := yaml.Marshal(snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// LoadFromYAML reads settings from a YAML file at path and installs them as
// the active global configuration.
func LoadFromYAML(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return err
	}

	globalWorldSettings.mu.Lock()
	defer globalWorldSettings.mu.Unlock()
	globalWorldSettings.worldSeed = fc.WorldSeed
	if fc.CellsPerChunk > 0 {
		globalWorldSettings.cellsPerChunk = fc.CellsPerChunk
	}
	if fc.CellSize > 0 {
		globalWorldSettings.cellSize = fc.CellSize
	}
	if fc.ViewDistance > 0 {
		globalWorldSettings.viewDistance = fc.ViewDistance
	}
	globalWorldSettings.seaLevel = fc.SeaLevel
	globalWorldSettings.waterEnabled = fc.WaterEnabled
	globalWorldSettings.presetName = fc.Preset
	if fc.CustomIntent != nil {
		globalWorldSettings.customIntent = *fc.CustomIntent
	}
	return nil
}
