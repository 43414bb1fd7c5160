package household

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces free-form monetary input to a non-negative float.
// Anything unparseable, negative, or non-finite reads as zero — the engine
// is total over its inputs and never rejects a form field.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	return v
}

// ParseCount coerces free-form integer input the same way.
func ParseCount(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}

	return v
}
