package models

// IntensityLevel is one named activity level and its calorie multiplier.
type IntensityLevel struct {
	Label      string
	Multiplier float64
}
