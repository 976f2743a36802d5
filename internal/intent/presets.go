package intent

// Preset constructors return a literal Intent 8-tuple, the same
// named-constructor-function shape used by the reference preset catalogue
// this module's configuration surface is modelled on, rather than a
// data-driven table loaded at runtime.

// AlpineYoungPreset favours tall, sharp, young mountains with active
// erosion and strong rivers.
func AlpineYoungPreset() Intent {
	return Intent{
		ContinentalScale:  0.8,
		ElevationRange:    0.9,
		MountainCoverage:  0.7,
		MountainSharpness: 0.8,
		Ruggedness:        0.55,
		ErosionAge:        0.2,
		RiverStrength:     0.6,
		Chaos:             0.3,
	}
}

// AncientHighlandsPreset favours worn, rounded high terrain: old erosion
// age, moderate mountain coverage, low sharpness.
func AncientHighlandsPreset() Intent {
	return Intent{
		ContinentalScale:  0.7,
		ElevationRange:    0.6,
		MountainCoverage:  0.5,
		MountainSharpness: 0.3,
		Ruggedness:        0.4,
		ErosionAge:        0.85,
		RiverStrength:     0.4,
		Chaos:             0.2,
	}
}

// AridPlateausPreset favours flat-topped, dry uplands with little river
// activity.
func AridPlateausPreset() Intent {
	return Intent{
		ContinentalScale:  0.6,
		ElevationRange:    0.5,
		MountainCoverage:  0.3,
		MountainSharpness: 0.6,
		Ruggedness:        0.3,
		ErosionAge:        0.6,
		RiverStrength:     0.2,
		Chaos:             0.4,
	}
}

// VolcanicRangesPreset favours isolated, sharp young peaks with heavy
// ruggedness and chaotic domain warp.
func VolcanicRangesPreset() Intent {
	return Intent{
		ContinentalScale:  0.5,
		ElevationRange:    0.95,
		MountainCoverage:  0.6,
		MountainSharpness: 0.85,
		Ruggedness:        0.75,
		ErosionAge:        0.15,
		RiverStrength:     0.3,
		Chaos:             0.7,
	}
}

// RollingTemperatePreset is the general-purpose default: moderate hills,
// moderate erosion, healthy rivers.
func RollingTemperatePreset() Intent {
	return Intent{
		ContinentalScale:  0.6,
		ElevationRange:    0.35,
		MountainCoverage:  0.2,
		MountainSharpness: 0.25,
		Ruggedness:        0.35,
		ErosionAge:        0.7,
		RiverStrength:     0.55,
		Chaos:             0.25,
	}
}

// CoastalFjordsPreset favours steep coastal terrain cut by deep river
// valleys.
func CoastalFjordsPreset() Intent {
	return Intent{
		ContinentalScale:  0.55,
		ElevationRange:    0.8,
		MountainCoverage:  0.55,
		MountainSharpness: 0.7,
		Ruggedness:        0.5,
		ErosionAge:        0.5,
		RiverStrength:     0.75,
		Chaos:             0.35,
	}
}

// FlatPlainsPreset is nearly featureless terrain: minimal elevation range,
// no mountains, gentle noise.
func FlatPlainsPreset() Intent {
	return Intent{
		ContinentalScale:  0.8,
		ElevationRange:    0.15,
		MountainCoverage:  0.02,
		MountainSharpness: 0.2,
		Ruggedness:        0.2,
		ErosionAge:        0.8,
		RiverStrength:     0.3,
		Chaos:             0.15,
	}
}

// CustomPreset returns the midpoint of every axis except Chaos (0.3), a starting
// point for a user-authored Intent rather than a finished look.
func CustomPreset() Intent {
	return Intent{
		ContinentalScale:  0.5,
		ElevationRange:    0.5,
		MountainCoverage:  0.5,
		MountainSharpness: 0.5,
		Ruggedness:        0.5,
		ErosionAge:        0.5,
		RiverStrength:     0.5,
		Chaos:             0.3,
	}
}

// PresetNames lists every named preset in definition order.
var PresetNames = []string{
	"Alpine Young",
	"Ancient Highlands",
	"Arid Plateaus",
	"Volcanic Ranges",
	"Rolling Temperate",
	"Coastal Fjords",
	"Flat Plains",
	"Custom",
}

// PresetByName returns the Intent for a named preset, and false if the name
// is not recognised.
func PresetByName(name string) (Intent, bool) {
	switch name {
	case "Alpine Young":
		return AlpineYoungPreset(), true
	case "Ancient Highlands":
		return AncientHighlandsPreset(), true
	case "Arid Plateaus":
		return AridPlateausPreset(), true
	case "Volcanic Ranges":
		return VolcanicRangesPreset(), true
	case "Rolling Temperate":
		return RollingTemperatePreset(), true
	case "Coastal Fjords":
		return CoastalFjordsPreset(), true
	case "Flat Plains":
		return FlatPlainsPreset(), true
	case "Custom":
		return CustomPreset(), true
	default:
		return Intent{}, false
	}
}
