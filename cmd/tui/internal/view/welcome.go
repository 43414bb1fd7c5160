package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StartMsg signals that the user wants to begin the assessment.
type StartMsg struct{}

type WelcomeModel struct {
	CommonModel
}

func NewWelcomeModel() WelcomeModel {
	return WelcomeModel{}
}

func (m WelcomeModel) Title() string { return "Akhirah Financial Compass" }

func (m WelcomeModel) ShortHelp() string { return "Enter: begin | q: quit" }

func (m WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, func() tea.Msg { return StartMsg{} }
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m WelcomeModel) View() string {
	header := titleStyle.Render("Akhirah Financial Compass")

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		"Discover your Islamic Investment Readiness Score in a few minutes.",
		"",
		"You will be asked about your household, income, monthly expenses,",
		"any debts you carry, and your emergency savings. Everything stays",
		"on this machine; nothing is required beyond honest numbers.",
		"",
		subtleStyle.Render("The Muslim Investor - Akhirah-First Wealth Building"),
		"",
		subtleStyle.Render(m.ShortHelp()),
	)

	return boxStyle.Render(body)
}
