package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/tmi-labs/compass/cmd/tui/internal/view"
	"github.com/tmi-labs/compass/internal/analytics"
	"github.com/tmi-labs/compass/internal/config"
	"github.com/tmi-labs/compass/internal/household"
	"github.com/tmi-labs/compass/internal/plan"
	"github.com/tmi-labs/compass/internal/report"
	"github.com/tmi-labs/compass/internal/scoring"
)

type Step int

const (
	StepWelcome    Step = 0
	StepIdentity   Step = 1
	StepProfile    Step = 2
	StepMizan      Step = 3
	StepDebts      Step = 4
	StepProtection Step = 5
	StepResults    Step = 6
)

type model struct {
	reportService *report.Service
	sink          *analytics.Sink

	currentStep Step
	snapshot    household.Snapshot

	welcomeView    view.WelcomeModel
	identityView   view.IdentityModel
	profileView    view.ProfileModel
	mizanView      view.MizanModel
	debtsView      view.DebtsModel
	protectionView view.ProtectionModel
	resultsView    view.ResultsModel
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	return model{
		reportService: report.NewService(cfg.Report.OutputDir),
		sink:          analytics.NewSink(cfg.Analytics.WebhookURL, cfg.Analytics.Timeout),
		currentStep:   StepWelcome,
		welcomeView:   view.NewWelcomeModel(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case view.StartMsg:
		m.currentStep = StepIdentity
		m.identityView = view.NewIdentityModel(m.snapshot.Name, m.snapshot.Email)

		return m, m.identityView.Init()

	case view.IdentityDoneMsg:
		m.snapshot.Name = msg.Name
		m.snapshot.Email = msg.Email
		m.currentStep = StepProfile
		m.profileView = view.NewProfileModel(m.snapshot.Demographics)

		return m, m.profileView.Init()

	case view.ProfileDoneMsg:
		m.snapshot.Demographics = msg.Demographics
		m.currentStep = StepMizan
		m.mizanView = view.NewMizanModel(m.snapshot.Income, m.snapshot.Expenses)

		return m, m.mizanView.Init()

	case view.MizanDoneMsg:
		m.snapshot.Income = msg.Income
		m.snapshot.Expenses = msg.Expenses
		m.currentStep = StepDebts
		m.debtsView = view.NewDebtsModel(m.snapshot.Debts)

		return m, m.debtsView.Init()

	case view.DebtsDoneMsg:
		m.snapshot.Debts = msg.Debts
		m.currentStep = StepProtection
		m.protectionView = view.NewProtectionModel(m.snapshot.EmergencyFund)

		return m, m.protectionView.Init()

	case view.ProtectionDoneMsg:
		m.snapshot.EmergencyFund = msg.EmergencyFund

		result := scoring.Compute(m.snapshot)
		actionPlan := plan.Build(result, m.snapshot.Name)
		m.sink.Dispatch(analytics.NewRecord(m.snapshot, result))

		m.currentStep = StepResults
		m.resultsView = view.NewResultsModel(m.reportService, result, actionPlan, m.snapshot.Name)

		return m, m.resultsView.Init()

	case view.RestartMsg:
		m.snapshot = household.Snapshot{}
		m.currentStep = StepWelcome
		m.welcomeView = view.NewWelcomeModel()

		return m, m.welcomeView.Init()

	case view.BackMsg:
		return m.stepBack()
	}

	switch m.currentStep {
	case StepWelcome:
		var newModel tea.Model
		newModel, cmd = m.welcomeView.Update(msg)
		m.welcomeView = newModel.(view.WelcomeModel)
	case StepIdentity:
		var newModel tea.Model
		newModel, cmd = m.identityView.Update(msg)
		m.identityView = newModel.(view.IdentityModel)
	case StepProfile:
		var newModel tea.Model
		newModel, cmd = m.profileView.Update(msg)
		m.profileView = newModel.(view.ProfileModel)
	case StepMizan:
		var newModel tea.Model
		newModel, cmd = m.mizanView.Update(msg)
		m.mizanView = newModel.(view.MizanModel)
	case StepDebts:
		var newModel tea.Model
		newModel, cmd = m.debtsView.Update(msg)
		m.debtsView = newModel.(view.DebtsModel)
	case StepProtection:
		var newModel tea.Model
		newModel, cmd = m.protectionView.Update(msg)
		m.protectionView = newModel.(view.ProtectionModel)
	case StepResults:
		var newModel tea.Model
		newModel, cmd = m.resultsView.Update(msg)
		m.resultsView = newModel.(view.ResultsModel)
	}

	return m, cmd
}

// stepBack rebuilds the previous step's view so edits carry forward.
func (m model) stepBack() (tea.Model, tea.Cmd) {
	switch m.currentStep {
	case StepIdentity:
		m.currentStep = StepWelcome
		m.welcomeView = view.NewWelcomeModel()

		return m, m.welcomeView.Init()
	case StepProfile:
		m.currentStep = StepIdentity
		m.identityView = view.NewIdentityModel(m.snapshot.Name, m.snapshot.Email)

		return m, m.identityView.Init()
	case StepMizan:
		m.currentStep = StepProfile
		m.profileView = view.NewProfileModel(m.snapshot.Demographics)

		return m, m.profileView.Init()
	case StepDebts:
		m.currentStep = StepMizan
		m.mizanView = view.NewMizanModel(m.snapshot.Income, m.snapshot.Expenses)

		return m, m.mizanView.Init()
	case StepProtection:
		m.currentStep = StepDebts
		m.debtsView = view.NewDebtsModel(m.snapshot.Debts)

		return m, m.debtsView.Init()
	case StepResults:
		m.currentStep = StepProtection
		m.protectionView = view.NewProtectionModel(m.snapshot.EmergencyFund)

		return m, m.protectionView.Init()
	}

	return m, nil
}

func (m model) View() string {
	switch m.currentStep {
	case StepWelcome:
		return m.welcomeView.View()
	case StepIdentity:
		return m.identityView.View()
	case StepProfile:
		return m.profileView.View()
	case StepMizan:
		return m.mizanView.View()
	case StepDebts:
		return m.debtsView.View()
	case StepProtection:
		return m.protectionView.View()
	case StepResults:
		return m.resultsView.View()
	}

	return "Unknown Step"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
