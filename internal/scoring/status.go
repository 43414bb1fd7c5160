package scoring

// Per-component status labels. Display only; nothing downstream computes
// from them.
func ribaStatus(score float64) string {
	switch {
	case score >= RibaMax:
		return "COMPLETE"
	case score > 20:
		return "MANAGEABLE"
	case score > 10:
		return "HEAVY"
	default:
		return "CRUSHING"
	}
}

func efStatus(score float64) string {
	switch {
	case score >= 20:
		return "STRONG"
	case score >= 10:
		return "BUILDING"
	default:
		return "WEAK"
	}
}

func expenseStatus(score float64) string {
	switch {
	case score >= 15:
		return "EXCELLENT"
	case score >= 10:
		return "GOOD"
	default:
		return "POOR"
	}
}

func savingsStatus(rate, score float64) string {
	switch {
	case rate < 0.1:
		return "UNACCEPTABLE"
	case score >= 12:
		return "EXCELLENT"
	case score >= 8:
		return "ON TARGET"
	default:
		return "BELOW TARGET"
	}
}

// Crisis/readiness labels, ordered from most to least urgent.
const (
	LabelNoIncome        = "NO INCOME CRISIS"
	LabelInexcusableEF   = "INEXCUSABLE EMERGENCY FUND CRISIS"
	LabelEmergencyFund   = "EMERGENCY FUND CRISIS"
	LabelFragileBuffer   = "FRAGILE PROTECTION"
	LabelRibaToday       = "RIBA CRISIS - CAN ELIMINATE TODAY"
	LabelRibaQuarter     = "RIBA CRISIS - 3 MONTHS TO FREEDOM"
	LabelDoubleEmergency = "DOUBLE EMERGENCY"
	LabelRiba            = "RIBA CRISIS"
	LabelSavings         = "SAVINGS CRISIS"
	LabelInvestmentReady = "INVESTMENT READY"
	LabelProgressing     = "PROGRESSING"
	LabelBuilding        = "BUILDING"
	LabelCritical        = "CRITICAL"
)

type labelRule struct {
	when  func(Result) bool
	label string
}

// classifyRules is evaluated top to bottom; the first matching rule wins.
// Structural problems (no income, no liquidity, eliminable debt) outrank
// softer ones (savings rate) even when several hold at once.
var classifyRules = []labelRule{
	{func(r Result) bool { return r.TotalIncome == 0 }, LabelNoIncome},
	{func(r Result) bool { return r.MonthsProtected == 0 && r.CashFlow > surplusCrisisThreshold }, LabelInexcusableEF},
	{func(r Result) bool { return r.MonthsProtected == 0 }, LabelEmergencyFund},
	{func(r Result) bool { return r.MonthsProtected < 1 }, LabelFragileBuffer},
	{func(r Result) bool { return r.TotalDebt > 0 && r.CashFlow > r.TotalDebt }, LabelRibaToday},
	{func(r Result) bool { return r.TotalDebt > 0 && r.CashFlow > r.TotalDebt/3 }, LabelRibaQuarter},
	{func(r Result) bool { return r.TotalDebt > 0 && r.CashFlow < 0 }, LabelDoubleEmergency},
	{func(r Result) bool { return r.TotalDebt > 0 }, LabelRiba},
	{func(r Result) bool { return r.SavingsRate < 0.1 }, LabelSavings},
	{func(r Result) bool { return r.Composite >= 70 }, LabelInvestmentReady},
	{func(r Result) bool { return r.Composite >= 50 }, LabelProgressing},
	{func(r Result) bool { return r.Composite >= 30 }, LabelBuilding},
}

func classify(r Result) string {
	for _, rule := range classifyRules {
		if rule.when(r) {
			return rule.label
		}
	}

	return LabelCritical
}
