package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// IdentityDoneMsg carries the optional identity fields to the wizard.
type IdentityDoneMsg struct {
	Name  string
	Email string
}

// IdentityModel collects an optional name and email. Both fields may be left
// blank; they only personalize the plan and the analytics record.
type IdentityModel struct {
	CommonModel

	form  *huh.Form
	name  string
	email string
}

func NewIdentityModel(name, email string) IdentityModel {
	m := IdentityModel{name: name, email: email}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Your name (optional)").
				Placeholder("e.g. Yusuf").
				Value(&m.name),
			huh.NewInput().
				Key("email").
				Title("Email (optional)").
				Placeholder("you@example.com").
				Value(&m.email),
		),
	).WithWidth(50).WithShowHelp(false)

	return m
}

func (m IdentityModel) Title() string { return "Who Is This For?" }

func (m IdentityModel) ShortHelp() string { return "Esc: back | Enter: continue" }

func (m IdentityModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m IdentityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	name := m.form.GetString("name")
	email := m.form.GetString("email")

	return m, func() tea.Msg {
		return IdentityDoneMsg{Name: name, Email: email}
	}
}

func (m IdentityModel) View() string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		m.form.View(),
		subtleStyle.Render(m.ShortHelp()),
	))
}
