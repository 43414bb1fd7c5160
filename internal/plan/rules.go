package plan

import (
	"fmt"
	"math"

	"github.com/tmi-labs/compass/internal/money"
	"github.com/tmi-labs/compass/internal/scoring"
)

type headlineRule struct {
	when  func(scoring.Result) bool
	apply func(*Plan, scoring.Result)
}

// headlineRules mirror the crisis-label cascade: evaluated in order, first
// match wins, most urgent condition first. Each branch sets the headline,
// the battle-plan title, and one to three numbered steps.
var headlineRules = []headlineRule{
	{
		when: func(r scoring.Result) bool { return r.TotalIncome == 0 },
		apply: func(p *Plan, r scoring.Result) {
			p.Headline = "CRITICAL: NO INCOME DETECTED - secure an income source before anything else!"
			p.BattleTitle = "First Mission: Income"
			p.Steps = []string{
				"1. Focus every effort on restoring income - employment, trade, or business.",
				"2. Return to this assessment once money is coming in.",
			}
		},
	},
	{
		when: func(r scoring.Result) bool {
			return r.MonthsProtected == 0 && r.CashFlow > 5000
		},
		apply: func(p *Plan, r scoring.Result) {
			target := 3 * r.TotalExpenses
			p.Headline = fmt.Sprintf("EMERGENCY FUND CRISIS: You have %s/month surplus but ZERO savings - BUILD IT NOW!", money.Format(r.CashFlow))
			p.BattleTitle = "Emergency Fund Blitz"
			p.Steps = []string{
				fmt.Sprintf("1. Transfer %s today into a separate account you can reach within 24 hours.", money.Format(r.CashFlow)),
				fmt.Sprintf("2. Automate %s/month until the fund holds %s (3 months of expenses).", money.Format(r.CashFlow), money.Format(target)),
			}
		},
	},
	{
		when: func(r scoring.Result) bool {
			return r.TotalDebt > 0 && r.CashFlow > r.TotalDebt
		},
		apply: func(p *Plan, r scoring.Result) {
			p.Headline = fmt.Sprintf("YOU CAN PAY OFF ALL %s DEBT TODAY WITH YOUR %s MONTHLY SURPLUS - DO IT NOW!", money.Format(r.TotalDebt), money.Format(r.CashFlow))
			p.BattleTitle = "Total Riba Elimination - Today"
			p.Steps = []string{
				fmt.Sprintf("1. Pay off every balance today, in attack order - all %s of it.", money.Format(r.TotalDebt)),
				fmt.Sprintf("2. Redirect the freed %s/month of payments straight into your emergency fund.", money.Format(r.DebtPaymentsExclMortgage)),
			}
		},
	},
	{
		when: func(r scoring.Result) bool {
			return r.TotalDebt > 0 && r.CashFlow > r.TotalDebt/3
		},
		apply: func(p *Plan, r scoring.Result) {
			months := int(math.Ceil(r.TotalDebt / r.CashFlow))
			p.Headline = fmt.Sprintf("YOU CAN BE DEBT-FREE IN 3 MONTHS - You have %s/month to eliminate %s - NO EXCUSES!", money.Format(r.CashFlow), money.Format(r.TotalDebt))
			p.BattleTitle = "90-Day Riba Purge"
			p.Steps = []string{
				fmt.Sprintf("1. Throw your full %s surplus at the top debt in the attack order each month.", money.Format(r.CashFlow)),
				fmt.Sprintf("2. At this pace the last balance dies in %d months - put the date on your wall.", months),
			}
		},
	},
	{
		when: func(r scoring.Result) bool { return r.TotalDebt > 0 && r.CashFlow < 0 },
		apply: func(p *Plan, r scoring.Result) {
			deficit := math.Abs(r.CashFlow)
			p.Headline = fmt.Sprintf("DOUBLE EMERGENCY: RIBA (%s) + NEGATIVE CASH FLOW (%s/month deficit)", money.Format(r.TotalDebt), money.Format(deficit))
			p.BattleTitle = "Stop the Bleeding"
			p.Steps = []string{
				fmt.Sprintf("1. Close the %s/month deficit first - the cuts below free up %s.", money.Format(deficit), money.Format(p.TotalCuts)),
				"2. Freeze all new borrowing. No exceptions.",
				"3. Once cash flow is positive, point every spare dollar at the attack order.",
			}
		},
	},
	{
		when: func(r scoring.Result) bool { return r.TotalDebt > 0 },
		apply: func(p *Plan, r scoring.Result) {
			p.Headline = fmt.Sprintf("ELIMINATE RIBA - %s blocking your path to Allah's pleasure", money.Format(r.TotalDebt))
			p.BattleTitle = "Riba Elimination Campaign"
			p.Steps = []string{
				"1. Attack the first debt in the strike order with every spare dollar; pay minimums on the rest.",
				fmt.Sprintf("2. Apply the %s/month of cuts below as extra payment firepower.", money.Format(p.TotalCuts)),
			}
		},
	},
	{
		when: func(r scoring.Result) bool {
			return r.MonthsProtected < 1 && r.CashFlow > 0
		},
		apply: func(p *Plan, r scoring.Result) {
			target := 3 * r.TotalExpenses
			months := monthsToTarget(target, r.EmergencyFund, r.CashFlow)
			p.Headline = fmt.Sprintf("Less than 1 month emergency fund - Build it NOW with your %s/month surplus", money.Format(r.CashFlow))
			p.BattleTitle = "Build the Buffer"
			p.Steps = []string{
				fmt.Sprintf("1. Save %s/month for %d months to reach a 3-month buffer of %s.", money.Format(r.CashFlow), months, money.Format(target)),
				"2. Keep the fund liquid - accessible within 24 hours, never invested.",
			}
		},
	},
	{
		when: func(r scoring.Result) bool { return r.CashFlow < 0 },
		apply: func(p *Plan, r scoring.Result) {
			p.Headline = fmt.Sprintf("NEGATIVE CASH FLOW - You're spending %s more than you earn - heading toward RIBA!", money.Format(math.Abs(r.CashFlow)))
			p.BattleTitle = "Stop the Bleeding"
			p.Steps = []string{
				fmt.Sprintf("1. Cut the categories below to claw back %s/month.", money.Format(p.TotalCuts)),
				"2. Do not bridge the gap with borrowing - that road ends in Riba.",
			}
		},
	},
	{
		when: func(r scoring.Result) bool { return r.SavingsRate < 0.1 },
		apply: func(p *Plan, r scoring.Result) {
			shortfall := r.TotalIncome*0.1 - r.CashFlow
			p.Headline = fmt.Sprintf("Your %s savings rate is below the Islamic minimum of 10%%", money.Percent(r.SavingsRate))
			p.BattleTitle = "Reach the 10% Minimum"
			p.Steps = []string{
				fmt.Sprintf("1. Free up %s/month - the cuts below cover %s of it.", money.Format(shortfall), money.Format(p.TotalCuts)),
				fmt.Sprintf("2. Automate the transfer so %s moves to savings the day income lands.", money.Format(r.TotalIncome*0.1)),
			}
		},
	},
	{
		when: func(r scoring.Result) bool { return r.MonthsProtected < 6 },
		apply: func(p *Plan, r scoring.Result) {
			target := 6 * r.TotalExpenses
			months := monthsToTarget(target, r.EmergencyFund, r.CashFlow)
			p.Headline = "Complete your 6-month financial fortress"
			p.BattleTitle = "Complete the Fortress"
			p.Steps = []string{
				fmt.Sprintf("1. Keep saving %s/month; the fortress of %s is %d months away.", money.Format(r.CashFlow), money.Format(target), months),
			}
		},
	},
	{
		when: func(r scoring.Result) bool { return true },
		apply: func(p *Plan, r scoring.Result) {
			p.Headline = "Ready for investment preparation - your foundation is solid!"
			p.BattleTitle = "Investment Preparation"
			p.Steps = []string{
				"1. Hold the line: riba-free, fortress funded, savings automated.",
				"2. Begin studying halal investment vehicles before deploying a single dollar.",
			}
		},
	},
}

// monthsToTarget is ceil((target - fund) / capacity), floored at one month.
func monthsToTarget(target, fund, capacity float64) int {
	if capacity <= 0 {
		return 0
	}

	m := int(math.Ceil((target - fund) / capacity))
	if m < 1 {
		m = 1
	}

	return m
}
