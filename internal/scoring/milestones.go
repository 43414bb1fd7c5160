package scoring

import "github.com/tmi-labs/compass/internal/household"

// Milestone is one entry of the progress checklist. Each is evaluated
// independently against the same aggregates; there is no ordering between
// them.
type Milestone struct {
	Label    string
	Achieved bool
}

// overspendMateriality is the per-category tolerance for the "Expenses
// Optimized" milestone. Running a few dollars over peers is not a miss.
const overspendMateriality = 50.0

func milestones(r Result) []Milestone {
	return []Milestone{
		{Label: "Riba-Free", Achieved: r.TotalDebt == 0},
		{Label: "10% Minimum Savings", Achieved: r.SavingsRate >= 0.10},
		{Label: "1-Month Buffer", Achieved: r.MonthsProtected >= 1},
		{Label: "3-Month Safety Net", Achieved: r.MonthsProtected >= 3},
		{Label: "6-Month Fortress", Achieved: r.MonthsProtected >= 6},
		{Label: "Expenses Optimized", Achieved: expensesOptimized(r)},
		{Label: "15% Savings Rate", Achieved: r.SavingsRate >= 0.15},
		{Label: "20% Savings Rate", Achieved: r.SavingsRate >= 0.20},
		{Label: "Investment Ready", Achieved: r.InvestmentReady()},
	}
}

func expensesOptimized(r Result) bool {
	for _, cat := range household.ScoredCategories {
		if r.Differences[cat] > overspendMateriality {
			return false
		}
	}

	return true
}
