package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmi-labs/compass/internal/household"
)

// MizanDoneMsg carries the completed income and expense picture.
type MizanDoneMsg struct {
	Income   household.Income
	Expenses household.Expenses
}

// MizanModel collects monthly income and expenses. All amounts are free-text
// and coerced leniently: anything unparseable reads as zero.
type MizanModel struct {
	CommonModel

	form *huh.Form
}

func NewMizanModel(income household.Income, expenses household.Expenses) MizanModel {
	m := MizanModel{}

	incomeGroup := huh.NewGroup(
		huh.NewInput().Key("primary").
			Title("Primary income (monthly)").
			Placeholder("0").
			Value(amountString(income.Primary)),
		huh.NewInput().Key("spouse").
			Title("Spouse income").
			Placeholder("0").
			Value(amountString(income.Spouse)),
		huh.NewInput().Key("business").
			Title("Business income").
			Placeholder("0").
			Value(amountString(income.Business)),
		huh.NewInput().Key("investment").
			Title("Halal investment income").
			Placeholder("0").
			Value(amountString(income.Investment)),
	).Title("Monthly Income")

	fields := make([]huh.Field, 0, len(household.Categories))
	for _, cat := range household.Categories {
		fields = append(fields,
			huh.NewInput().Key(string(cat)).
				Title(cat.Label()).
				Placeholder("0").
				Value(amountString(expenses[cat])),
		)
	}

	expenseGroup := huh.NewGroup(fields...).Title("Monthly Expenses")

	m.form = huh.NewForm(incomeGroup, expenseGroup).
		WithWidth(60).
		WithShowHelp(false)

	return m
}

func (m MizanModel) Title() string { return "The Mizan - Income & Expenses" }

func (m MizanModel) ShortHelp() string { return "Esc: back | Enter: continue" }

func (m MizanModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m MizanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	income := household.Income{
		Primary:    household.ParseAmount(m.form.GetString("primary")),
		Spouse:     household.ParseAmount(m.form.GetString("spouse")),
		Business:   household.ParseAmount(m.form.GetString("business")),
		Investment: household.ParseAmount(m.form.GetString("investment")),
	}

	expenses := make(household.Expenses, len(household.Categories))
	for _, cat := range household.Categories {
		expenses[cat] = household.ParseAmount(m.form.GetString(string(cat)))
	}

	return m, func() tea.Msg {
		return MizanDoneMsg{Income: income, Expenses: expenses}
	}
}

func (m MizanModel) View() string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		m.form.View(),
		subtleStyle.Render(m.ShortHelp()),
	))
}
