package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmi-labs/compass/internal/money"
	"github.com/tmi-labs/compass/internal/plan"
	"github.com/tmi-labs/compass/internal/report"
	"github.com/tmi-labs/compass/internal/scoring"
	"github.com/tmi-labs/compass/internal/share"
)

// RestartMsg signals that the user wants a fresh assessment.
type RestartMsg struct{}

type resultsState int

const (
	resultsStateShow resultsState = iota
	resultsStateExporting
)

// ResultsModel renders the score, the action plan, and the follow-up
// actions: export, share, restart.
type ResultsModel struct {
	CommonModel
	reportService *report.Service

	state   resultsState
	spinner spinner.Model

	result scoring.Result
	plan   plan.Plan
	name   string

	status string
	err    error
}

func NewResultsModel(svc *report.Service, r scoring.Result, p plan.Plan, name string) ResultsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ResultsModel{
		reportService: svc,
		spinner:       s,
		result:        r,
		plan:          p,
		name:          name,
	}
}

func (m ResultsModel) Title() string { return "Your Readiness Score" }

func (m ResultsModel) ShortHelp() string {
	if m.state == resultsStateExporting {
		return "Writing report..."
	}

	return "e: export report | w: WhatsApp link | c: copy message | r: start over | Esc: back | q: quit"
}

func (m ResultsModel) Init() tea.Cmd {
	return nil
}

func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		m.state = resultsStateShow
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = fmt.Sprintf("Report written to %s", msg.path)
		}

		return m, nil

	case tea.KeyMsg:
		if m.state == resultsStateExporting {
			break
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, func() tea.Msg { return RestartMsg{} }
		case "e":
			m.state = resultsStateExporting
			return m, tea.Batch(m.spinner.Tick, m.exportCmd())
		case "w":
			if err := share.CopyLink(int(m.result.Composite)); err != nil {
				m.err = err
				m.status = ""
			} else {
				m.err = nil
				m.status = "WhatsApp link copied to clipboard"
			}

			return m, nil
		case "c":
			if err := share.Copy(int(m.result.Composite)); err != nil {
				m.err = err
				m.status = ""
			} else {
				m.err = nil
				m.status = "Share message copied to clipboard"
			}

			return m, nil
		}
	}

	if m.state == resultsStateExporting {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m ResultsModel) exportCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := m.reportService.Generate(m.result, m.plan, m.name)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m ResultsModel) View() string {
	p := m.plan

	sections := []string{
		m.viewScore(),
		m.viewComponents(),
		m.viewPlan(),
	}

	if p.Strategy != nil {
		sections = append(sections, m.viewStrategy())
	}

	sections = append(sections, m.viewMilestones())

	if m.state == resultsStateExporting {
		sections = append(sections, fmt.Sprintf("%s Writing report...", m.spinner.View()))
	} else if m.err != nil {
		sections = append(sections, badStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.status != "" {
		sections = append(sections, goodStyle.Render(m.status))
	}

	sections = append(sections, "", subtleStyle.Render(m.ShortHelp()))

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m ResultsModel) viewScore() string {
	r := m.result

	score := fmt.Sprintf("%.0f / 100", r.Composite)
	scoreStyle := badStyle
	switch {
	case r.Composite >= 70:
		scoreStyle = goodStyle
	case r.Composite >= 40:
		scoreStyle = warnStyle
	}

	lines := []string{
		titleStyle.Render("Islamic Investment Readiness Score"),
		"",
		scoreStyle.Bold(true).Render(score) + "  " + scoreStyle.Render(r.Label),
	}

	if r.InvestmentReady() {
		lines = append(lines, goodStyle.Render("You are ready to begin halal investing."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m ResultsModel) viewComponents() string {
	r := m.result

	row := func(name string, score, limit float64, status string) string {
		return fmt.Sprintf("%-18s %s %4.0f/%-3.0f %s", name, bar(score, limit), score, limit, subtleStyle.Render(status))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		row("Riba Exposure", r.RibaScore, scoring.RibaMax, r.RibaStatus),
		row("Emergency Fund", r.EFScore, scoring.EFMax, r.EFStatus),
		row("Expense Control", r.ExpenseScore, scoring.ExpenseMax, r.ExpenseStatus),
		row("Savings Rate", r.SavingsScore, scoring.SavingsMax, r.SavingsStatus),
		"",
		fmt.Sprintf("Income %s/mo   Expenses %s/mo   Cash flow %s/mo",
			money.Format(r.TotalIncome), money.Format(r.TotalExpenses), money.Format(r.CashFlow)),
		fmt.Sprintf("Emergency fund %s (%.1f months of protection)",
			money.Format(r.EmergencyFund), r.MonthsProtected),
	)
}

// bar renders a 20-cell score bar.
func bar(score, limit float64) string {
	const cells = 20

	filled := 0
	if limit > 0 {
		filled = int(score / limit * cells)
	}
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}

	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", cells-filled) + "]"
}

func (m ResultsModel) viewPlan() string {
	p := m.plan

	lines := []string{
		"",
		titleStyle.Render(p.Headline),
	}

	if p.BattleTitle != "" {
		lines = append(lines, warnStyle.Render(p.BattleTitle))
	}

	for _, step := range p.Steps {
		lines = append(lines, "  "+step)
	}

	if len(p.Cuts) > 0 {
		lines = append(lines, "", "Recommended cuts (vs. peers in your bracket):")
		for _, c := range p.Cuts {
			lines = append(lines, fmt.Sprintf("  %-28s cut %s/mo", c.Category.Label(), money.Format(c.Amount)))
		}
	}

	if p.CharityReduction > 0 {
		lines = append(lines, fmt.Sprintf("  Charity to 2.5%% floor while in debt: frees %s/mo", money.Format(p.CharityReduction)))
	}

	if p.Projection.Narrative != "" {
		lines = append(lines, "", p.Projection.Narrative)
	}

	if p.Projection.ProjectedScore > m.result.Composite {
		lines = append(lines, fmt.Sprintf("Follow the plan and your score rises to %.0f/100.", p.Projection.ProjectedScore))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m ResultsModel) viewStrategy() string {
	s := m.plan.Strategy

	lines := []string{
		"",
		titleStyle.Render("Debt Attack Order"),
		fmt.Sprintf("Riba is costing you %s/mo (%s every day).",
			money.Format(s.MonthlyInterest), money.Format(s.DailyRibaCost)),
	}

	for i, d := range s.Order {
		line := fmt.Sprintf("  %d. %s  %s at %.1f%%  payoff: %s",
			i+1, d.Name, money.Format(d.Balance), d.APR, horizonText(d.Payoff))
		if d.InterestOnly {
			line += "  " + badStyle.Render("INTEREST-ONLY")
		}

		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m ResultsModel) viewMilestones() string {
	lines := []string{
		"",
		titleStyle.Render("Milestones"),
	}

	for _, ms := range m.result.Milestones {
		mark := subtleStyle.Render("[ ]")
		if ms.Achieved {
			mark = goodStyle.Render("[x]")
		}

		lines = append(lines, fmt.Sprintf("  %s %s", mark, ms.Label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
