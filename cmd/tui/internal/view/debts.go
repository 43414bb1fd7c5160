package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmi-labs/compass/internal/household"
	"github.com/tmi-labs/compass/internal/money"
)

// DebtsDoneMsg carries the completed debt list.
type DebtsDoneMsg struct {
	Debts []household.Debt
}

type debtsState int

const (
	debtsStateList debtsState = iota
	debtsStateForm
)

// DebtsModel collects zero or more debt entries. An empty list is the happy
// path and is never treated as missing data.
type DebtsModel struct {
	CommonModel

	state  debtsState
	debts  []household.Debt
	cursor int
	form   *huh.Form
}

func NewDebtsModel(debts []household.Debt) DebtsModel {
	return DebtsModel{debts: debts}
}

func (m DebtsModel) Title() string { return "Riba & Debts" }

func (m DebtsModel) ShortHelp() string {
	if m.state == debtsStateForm {
		return "Esc: cancel | Enter: save"
	}

	return "a: add debt | x: remove | Enter: continue | Esc: back"
}

func (m DebtsModel) Init() tea.Cmd {
	return nil
}

func (m DebtsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == debtsStateForm {
		return m.updateForm(msg)
	}

	return m.updateList(msg)
}

func (m DebtsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.debts)-1 {
			m.cursor++
		}
	case "a":
		m.form = buildDebtForm()
		m.state = debtsStateForm

		return m, m.form.Init()
	case "x":
		if len(m.debts) > 0 {
			m.debts = append(m.debts[:m.cursor], m.debts[m.cursor+1:]...)
			if m.cursor >= len(m.debts) && m.cursor > 0 {
				m.cursor--
			}
		}
	case "enter":
		debts := m.debts
		return m, func() tea.Msg {
			return DebtsDoneMsg{Debts: debts}
		}
	}

	return m, nil
}

func (m DebtsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = debtsStateList
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	d := household.Debt{
		Name:          m.form.GetString("name"),
		Type:          household.DebtType(m.form.GetString("type")),
		Balance:       household.ParseAmount(m.form.GetString("balance")),
		APR:           household.ParseAmount(m.form.GetString("apr")),
		MinPayment:    household.ParseAmount(m.form.GetString("minPayment")),
		ExtraPayment:  household.ParseAmount(m.form.GetString("extraPayment")),
		RemainingTerm: household.ParseCount(m.form.GetString("remainingTerm")),
	}
	if d.Name == "" {
		d.Name = string(d.Type)
	}

	m.debts = append(m.debts, d)
	m.cursor = len(m.debts) - 1
	m.state = debtsStateList

	return m, nil
}

func buildDebtForm() *huh.Form {
	typeOptions := make([]huh.Option[string], len(household.DebtTypes))
	for i, t := range household.DebtTypes {
		typeOptions[i] = huh.NewOption(string(t), string(t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("name").
				Title("Name").
				Placeholder("e.g. Visa card"),
			huh.NewSelect[string]().Key("type").
				Title("Type").
				Options(typeOptions...),
			huh.NewInput().Key("balance").
				Title("Balance owed").
				Placeholder("0"),
			huh.NewInput().Key("apr").
				Title("Interest rate (APR %)").
				Placeholder("0"),
			huh.NewInput().Key("minPayment").
				Title("Minimum monthly payment").
				Placeholder("0"),
			huh.NewInput().Key("extraPayment").
				Title("Extra payment (if any)").
				Placeholder("0"),
			huh.NewInput().Key("remainingTerm").
				Title("Months remaining (if known)").
				Placeholder("0"),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m DebtsModel) View() string {
	if m.state == debtsStateForm {
		return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Add Debt"),
			"",
			m.form.View(),
			subtleStyle.Render(m.ShortHelp()),
		))
	}

	var rows string
	if len(m.debts) == 0 {
		rows = goodStyle.Render("No debts. Alhamdulillah - riba-free households score highest.")
	} else {
		for i, d := range m.debts {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}

			rows += fmt.Sprintf("%s%s (%s)  %s at %.1f%%, min %s/mo\n",
				cursor, d.Name, d.Type, money.Format(d.Balance), d.APR, money.Format(d.MinPayment))
		}
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		"List every debt you carry, including credit cards and loans.",
		"",
		rows,
		"",
		subtleStyle.Render(m.ShortHelp()),
	))
}
