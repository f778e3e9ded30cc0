package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/calories/internal/models"
)

func TestLevels_CanonicalOrder(t *testing.T) {
	want := []models.IntensityLevel{
		{Label: "Light", Multiplier: 1.3},
		{Label: "Usual", Multiplier: 1.5},
		{Label: "Moderate", Multiplier: 1.7},
		{Label: "High", Multiplier: 2.0},
		{Label: "Very high", Multiplier: 2.2},
	}
	if diff := cmp.Diff(want, Levels()); diff != "" {
		t.Errorf("Levels() mismatch (-want +got):\n%s", diff)
	}
	if Len() != len(want) {
		t.Errorf("Len() = %d, want %d", Len(), len(want))
	}
}

func TestLevels_ReturnsCopy(t *testing.T) {
	got := Levels()
	got[0].Multiplier = 99

	if Levels()[0].Multiplier != 1.3 {
		t.Error("mutating the result of Levels() changed the catalog")
	}
}

func TestLabels(t *testing.T) {
	want := []string{"Light", "Usual", "Moderate", "High", "Very high"}
	if diff := cmp.Diff(want, Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"light", "Light", 1.3},
		{"usual", "Usual", 1.5},
		{"moderate", "Moderate", 1.7},
		{"high", "High", 2.0},
		{"very high", "Very high", 2.2},
		{"unknown label falls back to first entry", "Extreme", 1.3},
		{"empty label falls back", "", 1.3},
		{"match is case-sensitive", "light", 1.3},
		{"legacy Hard is not an alias", "Hard", 1.3},
		{"legacy Very hard is not an alias", "Very hard", 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.label); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestResolve_NeverZero(t *testing.T) {
	for _, label := range []string{"", "Extreme", "0", "Very  high"} {
		if got := Resolve(label); got <= 0 {
			t.Errorf("Resolve(%q) = %v, want a positive fallback", label, got)
		}
	}
}

func TestResolve_RoundTripThroughIndex(t *testing.T) {
	for i := 0; i < Len(); i++ {
		level, ok := ByIndex(i)
		if !ok {
			t.Fatalf("ByIndex(%d) not found", i)
		}
		if got := Resolve(level.Label); got != level.Multiplier {
			t.Errorf("Resolve(%q) = %v, want %v", level.Label, got, level.Multiplier)
		}
		idx, found := IndexOf(level.Label)
		if !found || idx != i {
			t.Errorf("IndexOf(%q) = (%d, %v), want (%d, true)", level.Label, idx, found, i)
		}
	}
}

func TestByIndex_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, Len(), 100} {
		if _, ok := ByIndex(i); ok {
			t.Errorf("ByIndex(%d) ok = true, want false", i)
		}
	}
}

func TestFallback(t *testing.T) {
	fb := Fallback()
	first, _ := ByIndex(0)
	if fb != first {
		t.Errorf("Fallback() = %+v, want first entry %+v", fb, first)
	}

	idx, found := IndexOf("Extreme")
	if found || idx != FallbackIndex {
		t.Errorf("IndexOf(unknown) = (%d, %v), want (%d, false)", idx, found, FallbackIndex)
	}
}
