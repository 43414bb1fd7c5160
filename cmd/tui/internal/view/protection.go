package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmi-labs/compass/internal/household"
)

// ProtectionDoneMsg carries the emergency fund balance.
type ProtectionDoneMsg struct {
	EmergencyFund float64
}

// ProtectionModel asks for the liquid emergency fund.
type ProtectionModel struct {
	CommonModel

	form *huh.Form
}

func NewProtectionModel(fund float64) ProtectionModel {
	m := ProtectionModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("fund").
				Title("Emergency fund (liquid savings)").
				Description("Cash you could reach within days, not investments").
				Placeholder("0").
				Value(amountString(fund)),
		),
	).WithWidth(60).WithShowHelp(false)

	return m
}

func (m ProtectionModel) Title() string { return "Protection - Emergency Fund" }

func (m ProtectionModel) ShortHelp() string { return "Esc: back | Enter: see results" }

func (m ProtectionModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ProtectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	fund := household.ParseAmount(m.form.GetString("fund"))

	return m, func() tea.Msg {
		return ProtectionDoneMsg{EmergencyFund: fund}
	}
}

func (m ProtectionModel) View() string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		m.form.View(),
		subtleStyle.Render(m.ShortHelp()),
	))
}
