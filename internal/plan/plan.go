// Package plan turns a scoring result into a prioritized action plan: a
// headline, a battle plan with concrete steps, expense cuts, a freedom-date
// projection, ethics messaging, and a closing message. Build is pure and
// deterministic; like the engine, it never errors.
package plan

import (
	"github.com/tmi-labs/compass/internal/household"
	"github.com/tmi-labs/compass/internal/scoring"
)

// Cut is one recommended expense reduction, sized by the overspend against
// the peer average.
type Cut struct {
	Category household.Category
	Amount   float64
}

// Strategy is the debt-elimination block, present only when debt exists.
type Strategy struct {
	// Order is the attack order: highest priority first.
	Order []scoring.DebtMath

	MonthlyInterest float64
	DailyRibaCost   float64
}

// Projection compares the current payoff path against the accelerated one
// where all firepower (surplus plus cuts) attacks the debt.
type Projection struct {
	CurrentPath scoring.Horizon
	Accelerated scoring.Horizon

	// Firepower is the total monthly amount available to attack debt:
	// existing minimum payments, positive cash flow, and all cuts.
	Firepower float64

	// ProjectedScore is the what-if composite after the plan is executed.
	ProjectedScore float64

	Narrative string
}

// Plan is the complete generated action plan.
type Plan struct {
	Headline    string
	BattleTitle string
	Steps       []string

	Cuts []Cut
	// CharityReduction is the amount by which charity could shrink to the
	// 2.5% obligatory floor while debt remains. Charity is never cut
	// below the floor, and never cut at all when debt-free.
	CharityReduction float64
	TotalCuts        float64

	Projection Projection
	Ethics     []string
	Strategy   *Strategy
	Closing    string
}

// Build generates the plan for a scoring result. The display name
// personalizes the closing message and may be empty.
func Build(r scoring.Result, name string) Plan {
	p := Plan{}

	p.Cuts, p.CharityReduction, p.TotalCuts = buildCuts(r)

	for _, rule := range headlineRules {
		if rule.when(r) {
			rule.apply(&p, r)
			break
		}
	}

	p.Projection = buildProjection(r, p.TotalCuts)
	p.Ethics = buildEthics(r)

	if r.TotalDebt > 0 {
		p.Strategy = &Strategy{
			Order:           scoring.AttackOrder(r.Debts),
			MonthlyInterest: r.TotalMonthlyInterest,
			DailyRibaCost:   r.TotalMonthlyInterest / 30,
		}
	}

	p.Closing = closing(r, name)

	return p
}
