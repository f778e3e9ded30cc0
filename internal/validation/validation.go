package validation

import (
	"fmt"
	"math"

	"github.com/julianstephens/calories/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyCatalog       ConflictType = "empty_catalog"
	ConflictEmptyLabel         ConflictType = "empty_label"
	ConflictDuplicateLabel     ConflictType = "duplicate_label"
	ConflictInvalidMultiplier  ConflictType = "invalid_multiplier"
	ConflictUnorderedIntensity ConflictType = "unordered_intensity"
)

// Conflict represents a problem found in an intensity table
type Conflict struct {
	Type        ConflictType
	Description string
	Index       int      // Catalog index of the offending entry, -1 if not applicable
	Items       []string // Labels involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks intensity tables
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateCatalog checks that levels is usable as an intensity catalog:
// non-empty, unique non-empty labels, finite positive multipliers, and
// multipliers non-decreasing in display order.
func (v *Validator) ValidateCatalog(levels []models.IntensityLevel) ValidationResult {
	var result ValidationResult

	if len(levels) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyCatalog,
			Description: "Intensity catalog has no entries",
			Index:       -1,
		})
		return result
	}

	seen := make(map[string]int)
	for i, level := range levels {
		if level.Label == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyLabel,
				Description: fmt.Sprintf("Intensity at index %d has an empty label", i),
				Index:       i,
			})
		} else if first, dup := seen[level.Label]; dup {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateLabel,
				Description: fmt.Sprintf("Intensity label %q appears at index %d and %d", level.Label, first, i),
				Index:       i,
				Items:       []string{level.Label},
			})
		} else {
			seen[level.Label] = i
		}

		m := level.Multiplier
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidMultiplier,
				Description: fmt.Sprintf("Intensity %q has invalid multiplier %v (must be > 0)", level.Label, m),
				Index:       i,
				Items:       []string{level.Label},
			})
			continue
		}

		if i > 0 && m < levels[i-1].Multiplier {
			prev := levels[i-1]
			desc := fmt.Sprintf("Intensity %q (%.2f) is lower than the preceding %q (%.2f)",
				level.Label, m, prev.Label, prev.Multiplier)
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnorderedIntensity,
				Description: desc,
				Index:       i,
				Items:       []string{prev.Label, level.Label},
			})
		}
	}

	return result
}
