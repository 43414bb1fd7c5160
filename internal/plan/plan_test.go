package plan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmi-labs/compass/internal/household"
	"github.com/tmi-labs/compass/internal/plan"
	"github.com/tmi-labs/compass/internal/scoring"
)

// overspender is a debt-free household with a 2-month buffer that overspends
// housing, food, entertainment, and personal against the baseline peers.
func overspender() household.Snapshot {
	return household.Snapshot{
		Income: household.Income{Primary: 4000},
		Expenses: household.Expenses{
			household.CategoryHousing:       2000,
			household.CategoryFood:          800,
			household.CategoryTransport:     500,
			household.CategoryUtilities:     300,
			household.CategoryHealthcare:    200,
			household.CategoryPersonal:      200,
			household.CategoryEntertainment: 300,
			household.CategoryCharity:       200,
		},
		EmergencyFund: 9000,
	}
}

func buildFor(s household.Snapshot) plan.Plan {
	return plan.Build(scoring.Compute(s), s.Name)
}

func TestCutsSortedDescendingExcludingCharity(t *testing.T) {
	p := buildFor(overspender())

	// Baseline peers: housing $1,400, food $600, entertainment $200,
	// personal $160; charity is exactly at peer and never listed anyway.
	require.Len(t, p.Cuts, 4)
	assert.Equal(t, household.CategoryHousing, p.Cuts[0].Category)
	assert.InDelta(t, 600, p.Cuts[0].Amount, 0.001)
	assert.Equal(t, household.CategoryFood, p.Cuts[1].Category)
	assert.Equal(t, household.CategoryEntertainment, p.Cuts[2].Category)
	assert.Equal(t, household.CategoryPersonal, p.Cuts[3].Category)

	for _, c := range p.Cuts {
		assert.NotEqual(t, household.CategoryCharity, c.Category)
	}

	assert.Zero(t, p.CharityReduction, "no debt, charity untouched")
	assert.InDelta(t, 940, p.TotalCuts, 0.001)
}

func TestCharityReducedToFloorOnlyWhileInDebt(t *testing.T) {
	s := overspender()
	s.Debts = []household.Debt{{Type: household.DebtCreditCard, Balance: 5000, APR: 22, MinPayment: 150}}

	p := buildFor(s)

	// Floor is 2.5% of $4,000 = $100; charity spend is $200.
	assert.InDelta(t, 100, p.CharityReduction, 0.001)
	assert.InDelta(t, 1040, p.TotalCuts, 0.001)
}

func TestHeadlineCascade(t *testing.T) {
	tests := []struct {
		name         string
		snapshot     household.Snapshot
		wantHeadline string
		wantTitle    string
	}{
		{
			name:         "no income",
			snapshot:     household.Snapshot{},
			wantHeadline: "NO INCOME DETECTED",
			wantTitle:    "First Mission: Income",
		},
		{
			name: "zero fund with big surplus",
			snapshot: household.Snapshot{
				Income:   household.Income{Primary: 20000},
				Expenses: household.Expenses{household.CategoryHousing: 5000},
			},
			wantHeadline: "ZERO savings",
			wantTitle:    "Emergency Fund Blitz",
		},
		{
			name: "debt payable today",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 10000},
				Expenses:      household.Expenses{household.CategoryHousing: 4000},
				Debts:         []household.Debt{{Type: household.DebtCreditCard, Balance: 1000, APR: 20, MinPayment: 50}},
				EmergencyFund: 30000,
			},
			wantHeadline: "PAY OFF ALL",
			wantTitle:    "Total Riba Elimination - Today",
		},
		{
			name: "debt payable in three months",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 10000},
				Expenses:      household.Expenses{household.CategoryHousing: 4000},
				Debts:         []household.Debt{{Type: household.DebtCreditCard, Balance: 9000, APR: 20, MinPayment: 50}},
				EmergencyFund: 30000,
			},
			wantHeadline: "DEBT-FREE IN 3 MONTHS",
			wantTitle:    "90-Day Riba Purge",
		},
		{
			name: "debt with negative cash flow",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 4000},
				Expenses:      household.Expenses{household.CategoryHousing: 5000},
				Debts:         []household.Debt{{Type: household.DebtCreditCard, Balance: 9000, APR: 20, MinPayment: 50}},
				EmergencyFund: 60000,
			},
			wantHeadline: "DOUBLE EMERGENCY",
			wantTitle:    "Stop the Bleeding",
		},
		{
			name: "debt generically",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 6000},
				Expenses:      household.Expenses{household.CategoryHousing: 5500},
				Debts:         []household.Debt{{Type: household.DebtCreditCard, Balance: 9000, APR: 20, MinPayment: 50}},
				EmergencyFund: 60000,
			},
			wantHeadline: "ELIMINATE RIBA",
			wantTitle:    "Riba Elimination Campaign",
		},
		{
			name: "debt-free thin buffer",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 6000},
				Expenses:      household.Expenses{household.CategoryHousing: 4000},
				EmergencyFund: 2000,
			},
			wantHeadline: "Less than 1 month emergency fund",
			wantTitle:    "Build the Buffer",
		},
		{
			name: "debt-free negative cash flow",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 4000},
				Expenses:      household.Expenses{household.CategoryHousing: 5000},
				EmergencyFund: 60000,
			},
			wantHeadline: "NEGATIVE CASH FLOW",
			wantTitle:    "Stop the Bleeding",
		},
		{
			name: "savings below the minimum",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 6000},
				Expenses:      household.Expenses{household.CategoryHousing: 5700},
				EmergencyFund: 60000,
			},
			wantHeadline: "below the Islamic minimum of 10%",
			wantTitle:    "Reach the 10% Minimum",
		},
		{
			name: "building toward the fortress",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 6000},
				Expenses:      household.Expenses{household.CategoryHousing: 3000},
				EmergencyFund: 12000,
			},
			wantHeadline: "6-month financial fortress",
			wantTitle:    "Complete the Fortress",
		},
		{
			name: "fully optimized",
			snapshot: household.Snapshot{
				Income:        household.Income{Primary: 6000},
				Expenses:      household.Expenses{household.CategoryHousing: 3000},
				EmergencyFund: 30000,
			},
			wantHeadline: "Ready for investment preparation",
			wantTitle:    "Investment Preparation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildFor(tt.snapshot)
			assert.Contains(t, p.Headline, tt.wantHeadline)
			assert.Equal(t, tt.wantTitle, p.BattleTitle)
			assert.NotEmpty(t, p.Steps)
			assert.LessOrEqual(t, len(p.Steps), 3)
		})
	}
}

func TestProjectionInterestOnlyCurrentPath(t *testing.T) {
	s := household.Snapshot{
		Income:        household.Income{Primary: 6000},
		Expenses:      household.Expenses{household.CategoryHousing: 5500},
		Debts:         []household.Debt{{Type: household.DebtCreditCard, Balance: 3000, APR: 24, MinPayment: 60}},
		EmergencyFund: 60000,
	}

	p := buildFor(s)

	// $60 minimum on $3,000 at 24% exactly services the interest.
	assert.True(t, p.Projection.CurrentPath.InterestOnly())
	assert.Contains(t, p.Projection.Narrative, "NEVER")

	// Firepower = $60 minimum + $440 surplus + cuts.
	assert.Greater(t, p.Projection.Firepower, 60.0)
	_, finite := p.Projection.Accelerated.Months()
	assert.True(t, finite, "full firepower amortizes the debt")
}

func TestProjectionFiniteCurrentPath(t *testing.T) {
	s := household.Snapshot{
		Income:        household.Income{Primary: 6000},
		Expenses:      household.Expenses{household.CategoryHousing: 3000},
		Debts:         []household.Debt{{Type: household.DebtPersonalLoan, Balance: 5000, APR: 12, MinPayment: 200}},
		EmergencyFund: 30000,
	}

	p := buildFor(s)

	current, ok := p.Projection.CurrentPath.Months()
	require.True(t, ok)
	accelerated, ok := p.Projection.Accelerated.Months()
	require.True(t, ok)
	assert.Less(t, accelerated, current, "firepower beats minimum payments")
}

func TestWhatIfScoreNeverBelowComposite(t *testing.T) {
	snapshots := []household.Snapshot{
		overspender(),
		{
			Income:        household.Income{Primary: 6000},
			Expenses:      household.Expenses{household.CategoryHousing: 5500},
			Debts:         []household.Debt{{Type: household.DebtCreditCard, Balance: 9000, APR: 20, MinPayment: 50}},
			EmergencyFund: 60000,
		},
	}

	for _, s := range snapshots {
		r := scoring.Compute(s)
		p := plan.Build(r, "")
		assert.GreaterOrEqual(t, p.Projection.ProjectedScore, r.Composite)
	}
}

func TestEthicsOnlyWithDebt(t *testing.T) {
	assert.Empty(t, buildFor(overspender()).Ethics)

	s := overspender()
	s.Debts = []household.Debt{{Type: household.DebtCreditCard, Balance: 5000, APR: 22, MinPayment: 150}}
	p := buildFor(s)

	require.NotEmpty(t, p.Ethics)
	assert.Contains(t, strings.Join(p.Ethics, " "), "Riba")
	require.NotNil(t, p.Strategy)
	assert.Len(t, p.Strategy.Order, 1)
	assert.InDelta(t, p.Strategy.MonthlyInterest/30, p.Strategy.DailyRibaCost, 0.0001)
}

func TestEthicsToneForAffordableDebt(t *testing.T) {
	s := household.Snapshot{
		Income:        household.Income{Primary: 10000},
		Expenses:      household.Expenses{household.CategoryHousing: 4000},
		Debts:         []household.Debt{{Type: household.DebtCreditCard, Balance: 1000, APR: 20, MinPayment: 50}},
		EmergencyFund: 30000,
	}

	p := buildFor(s)
	require.NotEmpty(t, p.Ethics)
	assert.Contains(t, p.Ethics[0], "inexcusable")
}

func TestClosingPersonalized(t *testing.T) {
	s := overspender()
	s.Name = "Yusuf"
	p := buildFor(s)
	assert.True(t, strings.HasPrefix(p.Closing, "Yusuf - "))

	s.Name = ""
	p = buildFor(s)
	assert.NotContains(t, p.Closing, "Yusuf")
}
