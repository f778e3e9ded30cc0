package calculator

import (
	"math"
	"testing"

	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/models"
)

func TestNormalizeWeight(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"integer", "70", 70},
		{"decimal", "72.5", 72.5},
		{"surrounding whitespace", " 80 ", 80},
		{"empty", "", 0},
		{"letters", "abc", 0},
		{"lone minus", "-", 0},
		{"lone dot", ".", 0},
		{"trailing garbage", "70kg", 0},
		{"negative", "-5", 0},
		{"nan", "NaN", 0},
		{"infinity", "Inf", 0},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWeight(tt.text); got != tt.want {
				t.Errorf("NormalizeWeight(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEstimate_ReferenceScenarios(t *testing.T) {
	tests := []struct {
		name      string
		weight    string
		sex       models.Sex
		intensity string
		want      int
	}{
		// (879 + 70*10.2) * 1.5 = 2389.5
		{"male 70 usual", "70", models.SexMale, "Usual", 2389},
		// 795 * 1.3 = 1033.5
		{"female empty light", "", models.SexFemale, "Light", 1033},
		// (795 + 60*7.18) * 2.2 = 2696.76
		{"female 60 very high", "60", models.SexFemale, "Very high", 2696},
		// 879 * 1.7 = 1494.3
		{"male 0 moderate", "0", models.SexMale, "Moderate", 1494},
		// unknown label resolves to Light (1.3): 879 * 1.3 = 1142.7
		{"male 0 unknown label", "0", models.SexMale, "Extreme", 1142},
		// (879 + 80*10.2) * 2.0 = 3390
		{"male 80 high", "80", models.SexMale, "High", 3390},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(NormalizeWeight(tt.weight), tt.sex, catalog.Resolve(tt.intensity))
			if got != tt.want {
				t.Errorf("Estimate(%q, %v, %q) = %d, want %d", tt.weight, tt.sex, tt.intensity, got, tt.want)
			}
		})
	}
}

func TestEstimate_UnparseableWeightUsesBaseRateOnly(t *testing.T) {
	for _, text := range []string{"", "abc", "-"} {
		for _, sex := range models.Sexes {
			for _, level := range catalog.Levels() {
				c := ConstantsFor(sex)
				want := int(c.BaseMetabolicRate * level.Multiplier)
				got := Estimate(NormalizeWeight(text), sex, level.Multiplier)
				if got != want {
					t.Errorf("Estimate(%q, %v, %v) = %d, want %d", text, sex, level.Multiplier, got, want)
				}
			}
		}
	}
}

func TestEstimate_TruncatesTowardZero(t *testing.T) {
	// 879 * 2.2 = 1933.8 must not round up
	if got := Estimate(0, models.SexMale, 2.2); got != 1933 {
		t.Errorf("Estimate(0, Male, 2.2) = %d, want 1933", got)
	}
}

func TestEstimate_MonotonicInMultiplier(t *testing.T) {
	weights := []float64{0, 1, 45.5, 70, 120, 250}
	levels := catalog.Levels()

	for _, sex := range models.Sexes {
		for _, w := range weights {
			prev := math.MinInt
			for _, level := range levels {
				got := Estimate(w, sex, level.Multiplier)
				if got < prev {
					t.Errorf("sex=%v weight=%v: estimate decreased to %d at %q (prev %d)", sex, w, got, level.Label, prev)
				}
				prev = got
			}
		}
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	first := Estimate(63.2, models.SexFemale, 1.7)
	for i := 0; i < 10; i++ {
		if got := Estimate(63.2, models.SexFemale, 1.7); got != first {
			t.Fatalf("call %d returned %d, first call returned %d", i, got, first)
		}
	}
}

func TestEstimate_InvalidMultiplierUsesFallback(t *testing.T) {
	want := Estimate(0, models.SexMale, catalog.Fallback().Multiplier)
	for _, m := range []float64{0, -1.5, math.NaN(), math.Inf(1)} {
		if got := Estimate(0, models.SexMale, m); got != want {
			t.Errorf("Estimate(0, Male, %v) = %d, want fallback %d", m, got, want)
		}
	}
}

func TestEstimate_NegativeWeightIsZero(t *testing.T) {
	if got, want := Estimate(-20, models.SexFemale, 1.5), Estimate(0, models.SexFemale, 1.5); got != want {
		t.Errorf("Estimate(-20) = %d, want %d", got, want)
	}
}

func TestConstantsFor(t *testing.T) {
	male := ConstantsFor(models.SexMale)
	if male.BaseMetabolicRate != 879 || male.WeightFactor != 10.2 {
		t.Errorf("male constants = %+v", male)
	}
	female := ConstantsFor(models.SexFemale)
	if female.BaseMetabolicRate != 795 || female.WeightFactor != 7.18 {
		t.Errorf("female constants = %+v", female)
	}
	if got := ConstantsFor(models.Sex(42)); got != male {
		t.Errorf("unknown sex constants = %+v, want default %+v", got, male)
	}
}

func TestCompute(t *testing.T) {
	res := Compute(models.Input{WeightText: "60", Sex: models.SexFemale, IntensityLabel: "Very high"})
	if res.Calories != 2696 {
		t.Errorf("Calories = %d, want 2696", res.Calories)
	}
	if !res.IntensityFound || res.LevelIndex != 4 || res.Level.Label != "Very high" {
		t.Errorf("unexpected level resolution: %+v", res)
	}
	if res.Weight != 60 {
		t.Errorf("Weight = %v, want 60", res.Weight)
	}
}

func TestCompute_UnknownLabel(t *testing.T) {
	res := Compute(models.Input{WeightText: "abc", Sex: models.SexMale, IntensityLabel: "Hard"})
	if res.IntensityFound {
		t.Error("IntensityFound = true for unknown label")
	}
	if res.LevelIndex != catalog.FallbackIndex || res.Level != catalog.Fallback() {
		t.Errorf("level = %+v (index %d), want fallback", res.Level, res.LevelIndex)
	}
	if res.Calories != 1142 {
		t.Errorf("Calories = %d, want 1142", res.Calories)
	}
}

func TestComputeIndexed_OutOfRange(t *testing.T) {
	res := ComputeIndexed("70", models.SexMale, 9, true)
	if res.IntensityFound || res.LevelIndex != catalog.FallbackIndex {
		t.Errorf("out-of-range index not replaced by fallback: %+v", res)
	}
}
