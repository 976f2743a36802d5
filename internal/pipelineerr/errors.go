// Package pipelineerr defines the error taxonomy shared by every pipeline
// stage. Recoverable kinds never abort a chunk: callers degrade (skip a
// feature, fall back to a default) rather than propagate a fatal error.
package pipelineerr

import "fmt"

// ConfigurationError is raised when an Intent or Settings value fails
// validation at construction. The caller must correct it; it is not
// recoverable by the pipeline itself.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// PrerequisiteMissing is raised when BeginStage is called without every
// required predecessor stage complete. Logged as a warning; generation
// proceeds best-effort.
type PrerequisiteMissing struct {
	Stage       string
	MissingStep string
}

func (e *PrerequisiteMissing) Error() string {
	return fmt.Sprintf("prerequisite missing for stage %s: %s not complete", e.Stage, e.MissingStep)
}

// DegenerateGeometry marks a basin or path discarded as too small to be
// meaningful (e.g. a basin under minBasinSize, a river path under 2
// segments). Callers silently skip it; it is not propagated as a failure.
type DegenerateGeometry struct {
	What   string
	Reason string
}

func (e *DegenerateGeometry) Error() string {
	return fmt.Sprintf("degenerate geometry: %s: %s", e.What, e.Reason)
}

// NoiseStabilityViolation is raised when persistence*lacunarity >= 1 after
// settings derivation. The caller clamps persistence to 0.9/lacunarity and
// continues; this type documents that the clamp occurred.
type NoiseStabilityViolation struct {
	Persistence float64
	Lacunarity  float64
}

func (e *NoiseStabilityViolation) Error() string {
	return fmt.Sprintf("noise stability violation: persistence=%.4f lacunarity=%.4f (product >= 1)", e.Persistence, e.Lacunarity)
}

// CarvingWouldRaise is an internal guard signal during river/lake carving:
// the requested carve would have raised terrain, so the cell was left
// unchanged. Never propagated past the carving call site.
type CarvingWouldRaise struct {
	X, Z int
}

func (e *CarvingWouldRaise) Error() string {
	return fmt.Sprintf("carving would raise terrain at (%d,%d); skipped", e.X, e.Z)
}

// ResourceError wraps a failure from an external collaborator (mesh or
// texture upload refused). It is propagated upward; the chunk that
// produced it is marked unloaded.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource error: %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
