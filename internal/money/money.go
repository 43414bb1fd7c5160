// Package money formats monetary amounts and rates for display. All
// engine math stays in raw float64 dollars; formatting happens only at the
// presentation edge.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders a dollar amount rounded to whole dollars with thousands
// separators: 1234.6 becomes "$1,235". Non-finite input renders as "$0".
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0"
	}

	r := int64(math.Round(v))
	if r < 0 {
		return printer.Sprintf("-$%d", -r)
	}

	return printer.Sprintf("$%d", r)
}

// Percent renders a fraction as a percentage with one decimal: 0.125
// becomes "12.5%".
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0%"
	}

	return fmt.Sprintf("%.1f%%", v*100)
}
