package plan

import (
	"fmt"

	"github.com/tmi-labs/compass/internal/money"
	"github.com/tmi-labs/compass/internal/scoring"
)

// buildProjection compares the minimum-payments-only payoff path with an
// accelerated path where cash-flow surplus and every recommended cut attack
// the debt, and estimates the composite score once the plan is executed.
func buildProjection(r scoring.Result, totalCuts float64) Projection {
	p := Projection{
		ProjectedScore: whatIfScore(r, totalCuts),
	}

	if r.TotalDebt == 0 {
		p.Narrative = fmt.Sprintf("Debt-free already. Executing the plan projects your score to %.0f (from %.0f).",
			p.ProjectedScore, r.Composite)
		return p
	}

	p.CurrentPath = currentPath(r.Debts)

	var minPayments float64
	for _, d := range r.Debts {
		if d.Active() {
			minPayments += d.MinPayment
			p.Firepower += d.MinPayment
		}
	}
	if r.CashFlow > 0 {
		p.Firepower += r.CashFlow
	}
	p.Firepower += totalCuts

	aggregateRate := 0.0
	if r.TotalDebt > 0 {
		aggregateRate = r.TotalMonthlyInterest / r.TotalDebt
	}
	p.Accelerated = scoring.Amortize(aggregateRate, p.Firepower, r.TotalDebt)

	p.Narrative = narrative(r, p)

	return p
}

// currentPath is the payoff horizon across all active debts under minimum
// payments alone: the slowest debt sets the date, and any debt that never
// amortizes makes the whole path interest-only.
func currentPath(debts []scoring.DebtMath) scoring.Horizon {
	worst := 0
	sawFinite := false

	for _, d := range debts {
		if !d.Active() {
			continue
		}

		h := scoring.Amortize(d.APR/100/12, d.MinPayment, d.Balance)
		if h.InterestOnly() {
			return scoring.HorizonInterestOnly
		}

		if n, ok := h.Months(); ok {
			sawFinite = true
			if n > d.Type.MaxTermMonths() {
				n = d.Type.MaxTermMonths()
			}
			if n > worst {
				worst = n
			}
		} else {
			// A debt with no payment at all never retires either.
			return scoring.HorizonInterestOnly
		}
	}

	if !sawFinite {
		return scoring.HorizonUndefined
	}

	return scoring.HorizonOf(worst)
}

func narrative(r scoring.Result, p Projection) string {
	current := "your debt NEVER dies - minimum payments only service the interest"
	if n, ok := p.CurrentPath.Months(); ok {
		current = fmt.Sprintf("minimum payments alone take %d months", n)
	}

	accelerated := "the payoff date is still undefined"
	if n, ok := p.Accelerated.Months(); ok {
		accelerated = fmt.Sprintf("you are debt-free in %d months", n)
	}

	return fmt.Sprintf("On the current path %s. With your full firepower of %s/month, %s. Executing the plan projects your score to %.0f (from %.0f).",
		current, money.Format(p.Firepower), accelerated, p.ProjectedScore, r.Composite)
}

// whatIfScore recomputes the composite assuming the plan executed: debt
// gone, every cut taken (so no overspend remains), and the freed cash
// raising the savings rate. The liquidity cap still applies.
func whatIfScore(r scoring.Result, totalCuts float64) float64 {
	if r.TotalIncome == 0 {
		return 0
	}

	savingsRate := (r.CashFlow + totalCuts) / r.TotalIncome

	var savingsScore float64
	switch {
	case savingsRate >= 0.20:
		savingsScore = scoring.SavingsMax
	case savingsRate >= 0.15:
		savingsScore = 12
	case savingsRate >= 0.10:
		savingsScore = 8
	}

	sum := scoring.RibaMax + r.EFScore + scoring.ExpenseMax + savingsScore

	ceiling := 100.0
	switch {
	case r.MonthsProtected == 0:
		ceiling = 40
	case r.MonthsProtected < 1:
		ceiling = 50
	case r.MonthsProtected < 3:
		ceiling = 60
	}

	if sum > ceiling {
		return ceiling
	}

	return sum
}
