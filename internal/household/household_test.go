package household_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmi-labs/compass/internal/household"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain number", input: "1200", want: 1200},
		{name: "decimal", input: "99.50", want: 99.5},
		{name: "dollar sign and commas", input: "$1,250.75", want: 1250.75},
		{name: "surrounding whitespace", input: "  300 ", want: 300},
		{name: "empty", input: "", want: 0},
		{name: "garbage", input: "abc", want: 0},
		{name: "negative coerced to zero", input: "-50", want: 0},
		{name: "infinity coerced to zero", input: "Inf", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, household.ParseAmount(tt.input))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, household.ParseCount("3"))
	assert.Equal(t, 0, household.ParseCount("-1"))
	assert.Equal(t, 0, household.ParseCount("two"))
}

func TestIncomeTotal(t *testing.T) {
	inc := household.Income{Primary: 3000, Spouse: 1500, Business: 400, Investment: 100}
	assert.Equal(t, 5000.0, inc.Total())

	assert.Equal(t, 0.0, household.Income{}.Total())
}

func TestExpensesTotal(t *testing.T) {
	exp := household.Expenses{
		household.CategoryHousing: 1200,
		household.CategoryFood:    400,
		household.CategoryOther:   50,
	}
	assert.Equal(t, 1650.0, exp.Total())
}

func TestCategoryScored(t *testing.T) {
	assert.True(t, household.CategoryHousing.Scored())
	assert.True(t, household.CategoryCharity.Scored())
	assert.False(t, household.CategoryEducation.Scored())
	assert.False(t, household.CategoryOther.Scored())
}

func TestDebtTypeMaxTerm(t *testing.T) {
	assert.Equal(t, 360, household.DebtMortgage.MaxTermMonths())
	assert.Equal(t, 72, household.DebtAutoLoan.MaxTermMonths())
	assert.Equal(t, 240, household.DebtStudentLoan.MaxTermMonths())
	assert.Equal(t, 600, household.DebtCreditCard.MaxTermMonths())
	assert.Equal(t, 600, household.DebtOther.MaxTermMonths())
}

func TestDebtActive(t *testing.T) {
	assert.True(t, household.Debt{Balance: 1}.Active())
	assert.False(t, household.Debt{Balance: 0}.Active())
}
