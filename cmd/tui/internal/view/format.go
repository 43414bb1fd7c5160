package view

import (
	"fmt"
	"strconv"

	"github.com/tmi-labs/compass/internal/scoring"
)

// stringOf returns a pointer to the decimal string for n, for pre-filling a
// form input. Zero becomes the empty string so placeholders show through.
func stringOf(n int) *string {
	s := ""
	if n != 0 {
		s = strconv.Itoa(n)
	}

	return &s
}

// amountString is stringOf for monetary amounts.
func amountString(v float64) *string {
	s := ""
	if v != 0 {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return &s
}

// horizonText renders a payoff horizon for display.
func horizonText(h scoring.Horizon) string {
	switch {
	case h.InterestOnly():
		return "NEVER (interest-only)"
	case !h.Defined():
		return "unknown"
	}

	months, _ := h.Months()
	if months == 1 {
		return "1 month"
	}

	return fmt.Sprintf("%d months", months)
}
