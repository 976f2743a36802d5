package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/P7AC1D/genesis-sub000/internal/intent"
)

func TestSetViewDistanceClamps(t *testing.T) {
	SetViewDistance(0)
	if got := GetViewDistance(); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	SetViewDistance(1000)
	if got := GetViewDistance(); got != 32 {
		t.Fatalf("expected clamp to 32, got %d", got)
	}
	SetViewDistance(8)
	if got := GetViewDistance(); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
}

func TestSetCellSizeIgnoresNonPositive(t *testing.T) {
	SetCellSize(2.0)
	SetCellSize(-1.0)
	if got := GetCellSize(); got != 2.0 {
		t.Fatalf("expected non-positive value to be ignored, got %f", got)
	}
	SetCellSize(0)
	if got := GetCellSize(); got != 2.0 {
		t.Fatalf("expected zero value to be ignored, got %f", got)
	}
}

func TestSetPresetThenResolveIntentReturnsPreset(t *testing.T) {
	SetPreset("Rolling Temperate")
	got, err := ResolveIntent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := intent.RollingTemperatePreset()
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSetCustomIntentClearsPreset(t *testing.T) {
	SetPreset("Arid Plateaus")
	custom := intent.Intent{
		ContinentalScale: 0.5, ElevationRange: 0.5, MountainCoverage: 0.5,
		MountainSharpness: 0.5, Ruggedness: 0.5, ErosionAge: 0.5,
		RiverStrength: 0.5, Chaos: 0.5,
	}
	SetCustomIntent(custom)

	got, err := ResolveIntent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != custom {
		t.Fatalf("expected custom intent %+v, got %+v", custom, got)
	}
}

func TestSaveAndLoadYAMLRoundTrips(t *testing.T) {
	SetWorldSeed(42)
	SetSeaLevel(0.5)
	SetViewDistance(12)
	SetPreset("Volcanic Ranges")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := SaveToYAML(path); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}

	SetWorldSeed(1)
	SetSeaLevel(0.1)
	SetViewDistance(1)
	SetPreset("")

	if err := LoadFromYAML(path); err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if GetWorldSeed() != 42 {
		t.Fatalf("expected seed 42, got %d", GetWorldSeed())
	}
	if GetSeaLevel() != 0.5 {
		t.Fatalf("expected sea level 0.5, got %f", GetSeaLevel())
	}
	if GetViewDistance() != 12 {
		t.Fatalf("expected view distance 12, got %d", GetViewDistance())
	}
}
