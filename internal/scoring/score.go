// Package scoring implements the benchmarking and scoring engine. Compute
// is a pure function of the household snapshot: it never errors, guards
// every division, and yields identical output for identical input.
package scoring

import (
	"github.com/tmi-labs/compass/internal/benchmark"
	"github.com/tmi-labs/compass/internal/household"
)

// Component score ceilings. The four weights sum to 100.
const (
	RibaMax    = 40.0
	EFMax      = 25.0
	ExpenseMax = 20.0
	SavingsMax = 15.0
)

// surplusCrisisThreshold is the monthly surplus above which an empty
// emergency fund is called out as inexcusable.
const surplusCrisisThreshold = 5000.0

// Result is the full output of the engine. Everything downstream — action
// plan, report, share, analytics — reads from here and nowhere else.
type Result struct {
	// Aggregates.
	TotalIncome              float64
	TotalExpenses            float64
	CashFlow                 float64
	SavingsRate              float64
	TotalDebt                float64
	Debts                    []DebtMath
	DebtPaymentsExclMortgage float64
	TotalMonthlyInterest     float64
	EmergencyFund            float64
	MonthsProtected          float64

	// Peer comparison.
	PeerAverages   map[household.Category]float64
	Spend          map[household.Category]float64
	Differences    map[household.Category]float64
	OverspendCount int
	SavingsTarget  float64

	// Component scores and composite.
	RibaScore    float64
	EFScore      float64
	ExpenseScore float64
	SavingsScore float64
	Composite    float64

	// Display classifications.
	RibaStatus    string
	EFStatus      string
	ExpenseStatus string
	SavingsStatus string
	Label         string

	Milestones []Milestone
}

// DebtFree reports whether the household carries no active debt.
func (r Result) DebtFree() bool {
	return r.TotalDebt == 0
}

// InvestmentReady reports whether the composite readiness condition holds.
func (r Result) InvestmentReady() bool {
	return r.Composite >= 70 && r.MonthsProtected >= 3 && r.DebtFree()
}

// Compute runs the full scoring pass over the snapshot.
func Compute(s household.Snapshot) Result {
	r := Result{
		TotalIncome:   s.Income.Total(),
		EmergencyFund: s.EmergencyFund,
	}

	r.PeerAverages = benchmark.PeerAverages(s.Demographics.Location, s.Demographics.IncomeRange, r.TotalIncome)
	r.SavingsTarget = benchmark.SavingsTarget(s.Demographics.IncomeRange)

	r.Debts = analyzeDebts(s.Debts)
	for _, d := range r.Debts {
		r.TotalMonthlyInterest += d.MonthlyInterest
		if d.Active() {
			r.TotalDebt += d.Balance
			if d.Type != household.DebtMortgage {
				r.DebtPaymentsExclMortgage += d.TotalPayment
			}
		}
	}

	r.Spend = make(map[household.Category]float64, len(household.Categories))
	for _, cat := range household.Categories {
		r.Spend[cat] = s.Expenses[cat]
	}

	// Mortgage payments are assumed to already sit inside the housing
	// expense, so only non-mortgage debt service is added on top.
	r.TotalExpenses = s.Expenses.Total() + r.DebtPaymentsExclMortgage
	r.CashFlow = r.TotalIncome - r.TotalExpenses

	switch {
	case r.TotalIncome > 0:
		r.SavingsRate = r.CashFlow / r.TotalIncome
	case r.CashFlow < 0:
		r.SavingsRate = -1
	default:
		r.SavingsRate = 0
	}

	r.Differences = make(map[household.Category]float64, len(household.Categories))
	for _, cat := range household.Categories {
		if pa := r.PeerAverages[cat]; pa > 0 {
			r.Differences[cat] = r.Spend[cat] - pa
		} else {
			r.Differences[cat] = 0
		}
	}

	for _, cat := range household.Categories {
		if r.Differences[cat] > 0 {
			r.OverspendCount++
		}
	}

	if r.TotalExpenses > 0 {
		r.MonthsProtected = r.EmergencyFund / r.TotalExpenses
	}

	r.RibaScore = ribaScore(r.TotalDebt, r.TotalIncome)
	r.EFScore = efScore(r.MonthsProtected)
	r.ExpenseScore = ExpenseMax - float64(r.OverspendCount)*3
	r.SavingsScore = savingsScore(r.SavingsRate)
	r.Composite = composite(r)

	r.RibaStatus = ribaStatus(r.RibaScore)
	r.EFStatus = efStatus(r.EFScore)
	r.ExpenseStatus = expenseStatus(r.ExpenseScore)
	r.SavingsStatus = savingsStatus(r.SavingsRate, r.SavingsScore)
	r.Label = classify(r)
	r.Milestones = milestones(r)

	return r
}

// ribaScore weighs the debt burden against income. Being debt-free scores
// the full 40 outright; any debt at all drops to the 5–30 band. The jump is
// deliberate: interest-free is categorical, not a point on a curve.
func ribaScore(totalDebt, totalIncome float64) float64 {
	if totalDebt == 0 {
		return RibaMax
	}

	burden := totalDebt / max(1, totalIncome) * 20

	return clamp(30-min(20, burden), 5, 30)
}

func efScore(months float64) float64 {
	switch {
	case months >= 6:
		return EFMax
	case months >= 3:
		return 20
	case months >= 1:
		return 10
	default:
		return months * 10
	}
}

// savingsScore is a hard cliff: below the 10% minimum there is no partial
// credit at all.
func savingsScore(rate float64) float64 {
	switch {
	case rate >= 0.20:
		return SavingsMax
	case rate >= 0.15:
		return 12
	case rate >= 0.10:
		return 8
	default:
		return 0
	}
}

// composite sums the components and applies the liquidity cap: a household
// with a thin emergency fund cannot be rated highly no matter how well it
// scores elsewhere. Zero income short-circuits to zero.
func composite(r Result) float64 {
	if r.TotalIncome == 0 {
		return 0
	}

	sum := r.RibaScore + r.EFScore + r.ExpenseScore + r.SavingsScore

	ceiling := 100.0
	switch {
	case r.MonthsProtected == 0:
		ceiling = 40
	case r.MonthsProtected < 1:
		ceiling = 50
	case r.MonthsProtected < 3:
		ceiling = 60
	}

	return clamp(sum, 0, ceiling)
}

func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}
