// Package report renders the full compass result as a downloadable
// markdown report. It reads a snapshot of the computed result and plan and
// mutates nothing.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tmi-labs/compass/internal/household"
	"github.com/tmi-labs/compass/internal/money"
	"github.com/tmi-labs/compass/internal/plan"
	"github.com/tmi-labs/compass/internal/scoring"
)

// Service writes reports into a fixed output directory.
type Service struct {
	outputDir string
	now       func() time.Time
}

// NewService creates a report service writing into outputDir.
func NewService(outputDir string) *Service {
	return &Service{outputDir: outputDir, now: time.Now}
}

// Generate writes the report file and returns its path.
func (s *Service) Generate(r scoring.Result, p plan.Plan, name string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := fmt.Sprintf("compass-report-%s.md", s.now().Format("20060102-150405"))
	path := filepath.Join(s.outputDir, filename)

	if err := os.WriteFile(path, []byte(Render(r, p, name)), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}

// Render builds the report body. Every field the engine computes appears in
// some section.
func Render(r scoring.Result, p plan.Plan, name string) string {
	var sb strings.Builder

	sb.WriteString("# Akhirah Financial Compass Report\n\n")
	if name != "" {
		sb.WriteString(fmt.Sprintf("Prepared for %s.\n\n", name))
	}

	sb.WriteString(fmt.Sprintf("## Islamic Investment Readiness Score: %.0f / 100\n\n", r.Composite))
	sb.WriteString(fmt.Sprintf("**%s**\n\n", r.Label))

	writeBreakdown(&sb, r)
	writeSituation(&sb, r)
	writePeerComparison(&sb, r)
	writeActionPlan(&sb, p)
	writeProjection(&sb, p)
	writeEthics(&sb, p)
	writeStrategy(&sb, p)
	writeProtectionLadder(&sb, r)
	writeMilestones(&sb, r)

	sb.WriteString("## Closing\n\n")
	sb.WriteString(p.Closing)
	sb.WriteString("\n\nYour data stays private - this report was generated locally on your device.\n")

	return sb.String()
}

func writeBreakdown(sb *strings.Builder, r scoring.Result) {
	sb.WriteString("## Score Breakdown\n\n")
	rows := []struct {
		label  string
		score  float64
		max    float64
		status string
	}{
		{"Riba Elimination", r.RibaScore, scoring.RibaMax, r.RibaStatus},
		{"Emergency Fund", r.EFScore, scoring.EFMax, r.EFStatus},
		{"Expense Control", r.ExpenseScore, scoring.ExpenseMax, r.ExpenseStatus},
		{"Savings Rate", r.SavingsScore, scoring.SavingsMax, r.SavingsStatus},
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("- %s: %.0f/%.0f - %s\n", row.label, row.score, row.max, row.status))
	}
	sb.WriteString("\n")
}

func writeSituation(sb *strings.Builder, r scoring.Result) {
	sb.WriteString("## Current Situation\n\n")

	income := money.Format(r.TotalIncome) + "/month"
	if r.TotalIncome == 0 {
		income = "$0 - GET INCOME FIRST"
	}

	debt := "Debt-Free - Alhamdulillah!"
	if r.TotalDebt > 0 {
		debt = fmt.Sprintf("%s (interest %s/month, %s/day)",
			money.Format(r.TotalDebt), money.Format(r.TotalMonthlyInterest), money.Format(r.TotalMonthlyInterest/30))
	}

	sb.WriteString(fmt.Sprintf("- Monthly Income: %s\n", income))
	sb.WriteString(fmt.Sprintf("- Monthly Expenses: %s\n", money.Format(r.TotalExpenses)))
	sb.WriteString(fmt.Sprintf("- Cash Flow: %s (%s savings rate, peer target %s)\n",
		money.Format(r.CashFlow), money.Percent(r.SavingsRate), money.Percent(r.SavingsTarget)))
	sb.WriteString(fmt.Sprintf("- Debt Status: %s\n", debt))
	sb.WriteString(fmt.Sprintf("- Emergency Fund: %s (%.1f months protected)\n\n",
		money.Format(r.EmergencyFund), r.MonthsProtected))
}

func writePeerComparison(sb *strings.Builder, r scoring.Result) {
	sb.WriteString("## Peer Comparison\n\n")
	sb.WriteString("| Category | You | Peer Average | Difference |\n")
	sb.WriteString("|---|---|---|---|\n")

	for _, cat := range household.Categories {
		pa, ok := r.PeerAverages[cat]
		if !ok || pa == 0 {
			sb.WriteString(fmt.Sprintf("| %s | %s | - | - |\n", cat.Label(), money.Format(r.Spend[cat])))
			continue
		}

		diff := r.Differences[cat]
		sign := ""
		if diff > 0 {
			sign = "+"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s%s |\n",
			cat.Label(), money.Format(r.Spend[cat]), money.Format(pa), sign, money.Format(diff)))
	}

	sb.WriteString(fmt.Sprintf("\nCategories over peer average: %d\n\n", r.OverspendCount))
}

func writeActionPlan(sb *strings.Builder, p plan.Plan) {
	sb.WriteString("## Your Action Plan\n\n")
	sb.WriteString(fmt.Sprintf("**%s**\n\n", p.Headline))
	sb.WriteString(fmt.Sprintf("### %s\n\n", p.BattleTitle))
	for _, step := range p.Steps {
		sb.WriteString(step + "\n")
	}
	sb.WriteString("\n")

	if len(p.Cuts) > 0 || p.CharityReduction > 0 {
		sb.WriteString("### Recommended Expense Cuts\n\n")
		for _, c := range p.Cuts {
			sb.WriteString(fmt.Sprintf("- %s: cut %s/month\n", c.Category.Label(), money.Format(c.Amount)))
		}
		if p.CharityReduction > 0 {
			sb.WriteString(fmt.Sprintf("- Charity: reduce to the 2.5%% minimum until Riba is eliminated (frees %s/month)\n", money.Format(p.CharityReduction)))
		}
		sb.WriteString(fmt.Sprintf("\nTotal firepower from cuts: %s/month\n\n", money.Format(p.TotalCuts)))
	}
}

func writeProjection(sb *strings.Builder, p plan.Plan) {
	sb.WriteString("## Projected Impact\n\n")
	sb.WriteString(p.Projection.Narrative + "\n\n")
}

func writeEthics(sb *strings.Builder, p plan.Plan) {
	if len(p.Ethics) == 0 {
		return
	}

	sb.WriteString("## On Riba\n\n")
	for _, line := range p.Ethics {
		sb.WriteString("> " + line + "\n\n")
	}
}

func writeStrategy(sb *strings.Builder, p plan.Plan) {
	if p.Strategy == nil {
		return
	}

	sb.WriteString("## Debt Elimination Strategy\n\n")
	sb.WriteString("Priority attack order:\n\n")
	for i, d := range p.Strategy.Order {
		dName := d.Name
		if dName == "" {
			dName = fmt.Sprintf("Debt %d", i+1)
		}

		flag := ""
		if d.InterestOnly {
			flag = " - WARNING: INTEREST-ONLY, never amortizes at the minimum payment"
		}

		sb.WriteString(fmt.Sprintf("%d. %s - %s at %.1f%% APR, payoff: %s%s\n",
			i+1, dName, money.Format(d.Balance), d.APR, d.Payoff, flag))
	}
	sb.WriteString(fmt.Sprintf("\nDaily Riba cost: %s\n\n", money.Format(p.Strategy.DailyRibaCost)))
}

// writeProtectionLadder shows the 1/3/6/12-month emergency fund tiers.
func writeProtectionLadder(sb *strings.Builder, r scoring.Result) {
	sb.WriteString("## Protection Ladder\n\n")

	tiers := []struct {
		label  string
		months float64
	}{
		{"Critical Minimum (1 month)", 1},
		{"Basic Protection (3 months)", 3},
		{"Recommended (6 months)", 6},
		{"Optimal (12 months)", 12},
	}

	for _, tier := range tiers {
		target := tier.months * r.TotalExpenses
		status := "NOT YET"
		if r.TotalExpenses > 0 && r.EmergencyFund >= target {
			status = "ACHIEVED"
		}
		sb.WriteString(fmt.Sprintf("- %s: %s - %s\n", tier.label, money.Format(target), status))
	}
	sb.WriteString("\n")
}

func writeMilestones(sb *strings.Builder, r scoring.Result) {
	sb.WriteString("## Progress Milestones\n\n")
	for _, m := range r.Milestones {
		mark := "[ ]"
		if m.Achieved {
			mark = "[x]"
		}
		sb.WriteString(fmt.Sprintf("- %s %s\n", mark, m.Label))
	}
	sb.WriteString("\n")
}
