package scoring

import (
	"fmt"
	"math"
)

type horizonKind int

const (
	horizonUndefined horizonKind = iota
	horizonInterestOnly
	horizonMonths
)

// Horizon is a payoff projection: a finite month count, the interest-only
// sentinel for debts that never amortize under their payment, or undefined
// when no projection is solvable. The sentinel is a tagged value so it can
// never be mistaken for a real month count downstream.
type Horizon struct {
	kind   horizonKind
	months int
}

// HorizonUndefined is the "no projection" value. The zero Horizon is
// equivalent.
var HorizonUndefined = Horizon{}

// HorizonInterestOnly marks a debt that never amortizes under its payment.
var HorizonInterestOnly = Horizon{kind: horizonInterestOnly}

// HorizonOf wraps a finite month count.
func HorizonOf(months int) Horizon {
	return Horizon{kind: horizonMonths, months: months}
}

// Months returns the finite month count, or false for either sentinel.
func (h Horizon) Months() (int, bool) {
	return h.months, h.kind == horizonMonths
}

// InterestOnly reports whether the debt never amortizes.
func (h Horizon) InterestOnly() bool {
	return h.kind == horizonInterestOnly
}

// Defined reports whether any projection exists (finite or interest-only).
func (h Horizon) Defined() bool {
	return h.kind != horizonUndefined
}

func (h Horizon) String() string {
	switch h.kind {
	case horizonInterestOnly:
		return "interest-only, never amortizes"
	case horizonMonths:
		return fmt.Sprintf("%d months", h.months)
	default:
		return "undefined"
	}
}

// Amortize solves for the number of months to retire principal at the given
// monthly rate and payment using the standard amortization formula
// n = ln(p / (p − bal·r)) / ln(1+r). Zero-rate debts divide out directly.
// A payment at or below the monthly interest yields the interest-only
// sentinel; a zero payment on a positive balance is undefined.
func Amortize(monthlyRate, payment, principal float64) Horizon {
	if principal <= 0 {
		return HorizonOf(0)
	}

	if payment <= 0 {
		return HorizonUndefined
	}

	if monthlyRate <= 0 {
		return HorizonOf(int(math.Ceil(principal / payment)))
	}

	if payment <= principal*monthlyRate {
		return HorizonInterestOnly
	}

	n := math.Log(payment/(payment-principal*monthlyRate)) / math.Log(1+monthlyRate)

	return HorizonOf(int(math.Ceil(n)))
}
