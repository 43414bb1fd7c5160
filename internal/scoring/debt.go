package scoring

import (
	"sort"

	"github.com/tmi-labs/compass/internal/household"
)

// DebtMath carries a debt entry together with its derived figures.
type DebtMath struct {
	household.Debt

	TotalPayment    float64
	MonthlyInterest float64
	PriorityScore   float64
	Payoff          Horizon

	// InterestOnly is set when the minimum payment alone cannot cover the
	// monthly interest. Such a debt is flagged, never silently projected.
	InterestOnly bool
}

func analyzeDebts(debts []household.Debt) []DebtMath {
	maxBalance := 1.0
	for _, d := range debts {
		if d.Active() && d.Balance > maxBalance {
			maxBalance = d.Balance
		}
	}

	calcs := make([]DebtMath, 0, len(debts))
	for _, d := range debts {
		c := DebtMath{
			Debt:            d,
			TotalPayment:    d.MinPayment + d.ExtraPayment,
			MonthlyInterest: d.Balance * (d.APR / 100) / 12,
		}

		if d.Active() {
			c.InterestOnly = d.MinPayment > 0 && d.MinPayment <= c.MonthlyInterest
			c.PriorityScore = priorityScore(d, maxBalance)
			c.Payoff = payoffHorizon(c)
		}

		calcs = append(calcs, c)
	}

	return calcs
}

// priorityScore ranks a debt for the attack order. It is a hybrid
// avalanche/snowball heuristic: credit cards double, high APR multiplies,
// balances under $1,000 get a snowball boost, and the relative balance
// weighs larger debts.
func priorityScore(d household.Debt, maxBalance float64) float64 {
	cardFactor := 1.0
	if d.Type == household.DebtCreditCard {
		cardFactor = 2.0
	}

	rateFactor := 1 + min(d.APR/100*10, 5)

	smallFactor := 1.0
	if d.Balance < 1000 {
		smallFactor = 1.5
	}

	if maxBalance <= 0 {
		maxBalance = 1
	}

	return cardFactor * rateFactor * smallFactor * (d.Balance / maxBalance)
}

func payoffHorizon(c DebtMath) Horizon {
	if c.InterestOnly {
		return HorizonInterestOnly
	}

	if c.RemainingTerm > 0 {
		return HorizonOf(c.RemainingTerm)
	}

	if c.APR > 0 && c.TotalPayment > c.MonthlyInterest {
		h := Amortize(c.APR/100/12, c.TotalPayment, c.Balance)
		if n, ok := h.Months(); ok && n > c.Type.MaxTermMonths() {
			return HorizonOf(c.Type.MaxTermMonths())
		}

		return h
	}

	if c.TotalPayment > 0 {
		return Amortize(0, c.TotalPayment, c.Balance)
	}

	return HorizonUndefined
}

// AttackOrder returns the active debts sorted by descending priority score.
// The sort is stable so ties keep their input order.
func AttackOrder(calcs []DebtMath) []DebtMath {
	order := make([]DebtMath, 0, len(calcs))
	for _, c := range calcs {
		if c.Active() {
			order = append(order, c)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].PriorityScore > order[j].PriorityScore
	})

	return order
}
