package models

// Input is the raw, unvalidated set of values a screen holds.
type Input struct {
	WeightText     string
	Sex            Sex
	IntensityLabel string
}

// Result is a single derivation of an Input. It is never stored; callers
// rebuild it whenever an input changes.
type Result struct {
	Weight         float64
	Sex            Sex
	Level          IntensityLevel
	LevelIndex     int
	IntensityFound bool
	Calories       int
}
