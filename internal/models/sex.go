package models

import (
	"fmt"
	"strings"
)

// Sex is the biological-sex category used to pick the formula constants.
type Sex int

const (
	SexMale Sex = iota
	SexFemale
)

// DefaultSex is selected when a screen opens.
const DefaultSex = SexMale

// Sexes lists the selectable categories in display order.
var Sexes = []Sex{SexMale, SexFemale}

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// Valid reports whether s is one of the known categories.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// ParseSex accepts "male"/"female" in any case, plus the short forms "m"/"f".
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	default:
		return DefaultSex, fmt.Errorf("invalid sex: %q (expected male or female)", s)
	}
}
