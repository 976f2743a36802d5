// Package pipeline validates that a chunk's ten generation stages run in
// dependency order. It is a debug/invariant aid, not a scheduler:
// production code may proceed best-effort even when BeginStage reports a
// missing prerequisite.
package pipeline

import "github.com/P7AC1D/genesis-sub000/internal/pipelineerr"

// Stage is one of the ten pipeline stages, in the order the DAG in spec §2
// requires them to complete.
type Stage int

const (
	StageHeightmap Stage = iota
	StageDrainage
	StageRiver
	StageLake
	StageOcean
	StageHydrology
	StageClimate
	StageBiome
	StageMaterial
	StageMesh
	stageCount
)

var names = [...]string{
	"Heightmap", "Drainage", "River", "Lake", "Ocean",
	"Hydrology", "Climate", "Biome", "Material", "Mesh",
}

// String returns the stage's display name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(names) {
		return "Unknown"
	}
	return names[s]
}

// requires lists every stage that must already be complete before s may
// begin, per the DAG in spec §2.
var requires = [stageCount][]Stage{
	StageHeightmap: {},
	StageDrainage:  {StageHeightmap},
	StageRiver:     {StageDrainage},
	StageLake:      {StageDrainage},
	StageOcean:     {StageHeightmap},
	StageHydrology: {StageDrainage, StageRiver, StageLake, StageOcean},
	StageClimate:   {StageHydrology},
	StageBiome:     {StageClimate, StageHydrology},
	StageMaterial:  {StageBiome, StageClimate, StageHydrology},
	StageMesh:      {StageMaterial},
}

// Validator tracks which stages have completed for one chunk, as a
// completion bitmask.
type Validator struct {
	completed uint32
}

// NewValidator returns an empty validator with no stages completed.
func NewValidator() *Validator {
	return &Validator{}
}

func bit(s Stage) uint32 { return 1 << uint(s) }

// Done reports whether s has completed.
func (v *Validator) Done(s Stage) bool {
	return v.completed&bit(s) != 0
}

// BeginStage reports PrerequisiteMissing if any of s's required
// predecessors has not completed. It does not itself mark anything
// complete — call EndStage once s actually finishes.
func (v *Validator) BeginStage(s Stage) error {
	for _, req := range requires[s] {
		if !v.Done(req) {
			return &pipelineerr.PrerequisiteMissing{Stage: s.String(), MissingStep: req.String()}
		}
	}
	return nil
}

// EndStage marks s complete.
func (v *Validator) EndStage(s Stage) {
	v.completed |= bit(s)
}

// Reset clears every stage's completion flag.
func (v *Validator) Reset() {
	v.completed = 0
}
