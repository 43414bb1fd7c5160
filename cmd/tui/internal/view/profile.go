package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmi-labs/compass/internal/benchmark"
	"github.com/tmi-labs/compass/internal/household"
)

// ProfileDoneMsg carries the completed demographics to the wizard.
type ProfileDoneMsg struct {
	Demographics household.Demographics
}

// ProfileModel collects the household profile. Location and income range
// drive the peer benchmarks; the rest is context for the analytics record.
type ProfileModel struct {
	CommonModel

	form *huh.Form
}

func NewProfileModel(d household.Demographics) ProfileModel {
	if d.Location == "" {
		d.Location = benchmark.Locations[0]
	}
	if d.IncomeRange == "" {
		d.IncomeRange = benchmark.IncomeRanges[0]
	}
	if d.Adults == 0 {
		d.Adults = 1
	}

	m := ProfileModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("location").
				Title("Where do you live?").
				Options(huh.NewOptions(benchmark.Locations...)...).
				Value(&d.Location),
			huh.NewSelect[string]().
				Key("incomeRange").
				Title("Annual household income").
				Options(huh.NewOptions(benchmark.IncomeRanges...)...).
				Value(&d.IncomeRange),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("ageRange").
				Title("Age range").
				Options(huh.NewOptions(household.AgeRanges...)...).
				Value(&d.AgeRange),
			huh.NewSelect[string]().
				Key("education").
				Title("Education").
				Options(huh.NewOptions(household.EducationLevels...)...).
				Value(&d.Education),
			huh.NewSelect[string]().
				Key("employment").
				Title("Employment").
				Options(huh.NewOptions(household.EmploymentTypes...)...).
				Value(&d.Employment),
			huh.NewInput().
				Key("adults").
				Title("Adults in household").
				Placeholder("1").
				Value(stringOf(d.Adults)),
			huh.NewInput().
				Key("children").
				Title("Children in household").
				Placeholder("0").
				Value(stringOf(d.Children)),
		),
	).WithWidth(60).WithShowHelp(false)

	return m
}

func (m ProfileModel) Title() string { return "Your Household" }

func (m ProfileModel) ShortHelp() string { return "Esc: back | Enter: continue" }

func (m ProfileModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	d := household.Demographics{
		Location:    m.form.GetString("location"),
		IncomeRange: m.form.GetString("incomeRange"),
		AgeRange:    m.form.GetString("ageRange"),
		Education:   m.form.GetString("education"),
		Employment:  m.form.GetString("employment"),
		Adults:      household.ParseCount(m.form.GetString("adults")),
		Children:    household.ParseCount(m.form.GetString("children")),
	}
	if d.Adults == 0 {
		d.Adults = 1
	}

	return m, func() tea.Msg {
		return ProfileDoneMsg{Demographics: d}
	}
}

func (m ProfileModel) View() string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		m.form.View(),
		subtleStyle.Render(m.ShortHelp()),
	))
}
