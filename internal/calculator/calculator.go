package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/calories/internal/catalog"
	"github.com/julianstephens/calories/internal/models"
)

// SexConstants are the per-sex terms of the estimate formula.
type SexConstants struct {
	BaseMetabolicRate float64
	WeightFactor      float64
}

var sexConstants = map[models.Sex]SexConstants{
	models.SexMale:   {BaseMetabolicRate: 879, WeightFactor: 10.2},
	models.SexFemale: {BaseMetabolicRate: 795, WeightFactor: 7.18},
}

// ConstantsFor returns the formula constants for sex. Unknown values use the
// default category's constants.
func ConstantsFor(sex models.Sex) SexConstants {
	if c, ok := sexConstants[sex]; ok {
		return c
	}
	return sexConstants[models.DefaultSex]
}

// NormalizeWeight parses text as a weight. Anything that is not a finite,
// non-negative number (including empty or partially typed input) becomes 0.
func NormalizeWeight(text string) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return clampWeight(w)
}

func clampWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}

// Estimate returns the daily calorie estimate, truncated toward zero:
//
//	int((bmr + weight*factor) * multiplier)
//
// A multiplier that is not finite and positive is replaced by the catalog
// fallback multiplier.
func Estimate(weight float64, sex models.Sex, multiplier float64) int {
	weight = clampWeight(weight)
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier <= 0 {
		multiplier = catalog.Fallback().Multiplier
	}

	c := ConstantsFor(sex)
	// The explicit conversion keeps the compiler from fusing into an FMA,
	// which would change results on some architectures.
	return int((c.BaseMetabolicRate + float64(weight*c.WeightFactor)) * multiplier)
}

// Compute derives a full Result from raw input values.
func Compute(in models.Input) models.Result {
	idx, found := catalog.IndexOf(in.IntensityLabel)
	return ComputeIndexed(in.WeightText, in.Sex, idx, found)
}

// ComputeIndexed derives a Result for a catalog index selection. An index
// outside the catalog resolves to the fallback entry.
func ComputeIndexed(weightText string, sex models.Sex, index int, found bool) models.Result {
	level, ok := catalog.ByIndex(index)
	if !ok {
		level, index, found = catalog.Fallback(), catalog.FallbackIndex, false
	}

	weight := NormalizeWeight(weightText)
	return models.Result{
		Weight:         weight,
		Sex:            sex,
		Level:          level,
		LevelIndex:     index,
		IntensityFound: found,
		Calories:       Estimate(weight, sex, level.Multiplier),
	}
}
