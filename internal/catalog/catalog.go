package catalog

import "github.com/julianstephens/calories/internal/models"

// FallbackIndex is the entry used whenever a label cannot be resolved.
// It is also the default selection of a new screen.
const FallbackIndex = 0

// levels is the fixed, ordered intensity table. Order is display order.
var levels = []models.IntensityLevel{
	{Label: "Light", Multiplier: 1.3},
	{Label: "Usual", Multiplier: 1.5},
	{Label: "Moderate", Multiplier: 1.7},
	{Label: "High", Multiplier: 2.0},
	{Label: "Very high", Multiplier: 2.2},
}

// Len returns the number of catalog entries.
func Len() int {
	return len(levels)
}

// Levels returns a copy of the catalog in display order.
func Levels() []models.IntensityLevel {
	out := make([]models.IntensityLevel, len(levels))
	copy(out, levels)
	return out
}

// Labels returns the display labels in catalog order.
func Labels() []string {
	labels := make([]string, len(levels))
	for i, l := range levels {
		labels[i] = l.Label
	}
	return labels
}

// ByIndex returns the entry at i. ok is false when i is out of range.
func ByIndex(i int) (models.IntensityLevel, bool) {
	if i < 0 || i >= len(levels) {
		return models.IntensityLevel{}, false
	}
	return levels[i], true
}

// Fallback returns the entry used for unknown labels.
func Fallback() models.IntensityLevel {
	return levels[FallbackIndex]
}

// Lookup finds label by exact, case-sensitive match.
func Lookup(label string) (models.IntensityLevel, int, bool) {
	for i, l := range levels {
		if l.Label == label {
			return l, i, true
		}
	}
	return models.IntensityLevel{}, -1, false
}

// Resolve returns the multiplier for label, or the fallback entry's
// multiplier when label is not in the catalog. It never returns 0.
func Resolve(label string) float64 {
	if l, _, ok := Lookup(label); ok {
		return l.Multiplier
	}
	return Fallback().Multiplier
}

// IndexOf returns the catalog index for label, or FallbackIndex and false.
func IndexOf(label string) (int, bool) {
	if _, i, ok := Lookup(label); ok {
		return i, true
	}
	return FallbackIndex, false
}
