package constants

const (
	AppName          = "calories"
	Version          = "v0.1.0"
	DefaultConfigDir = "~/.config/calories"
	DotEnvFile       = ".env"

	// Display
	ResultPrefix  = "Calories: "
	WeightLabel   = "Enter weight"
	IntensityHint = "Select intensity"
)

// Field identifies which input has focus on the screen.
type Field int

const (
	FieldWeight Field = iota
	FieldSex
	FieldIntensity
)

// FieldCount is the number of focusable inputs.
const FieldCount = 3
