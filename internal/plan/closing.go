package plan

import (
	"fmt"

	"github.com/tmi-labs/compass/internal/money"
	"github.com/tmi-labs/compass/internal/scoring"
)

// buildEthics emits the Riba messaging, only when debt is present. The tone
// depends on whether the household could end it today: an affordable debt
// kept alive is framed as a choice, a constrained one as a daily cost.
func buildEthics(r scoring.Result) []string {
	if r.TotalDebt == 0 {
		return nil
	}

	daily := r.TotalMonthlyInterest / 30

	if r.CashFlow > r.TotalDebt {
		return []string{
			fmt.Sprintf("You hold the means to end all Riba today. Keeping %s of interest-bearing debt alive while your surplus covers it is an inexcusable delay.", money.Format(r.TotalDebt)),
			fmt.Sprintf("Every month of hesitation hands %s to Riba.", money.Format(r.TotalMonthlyInterest)),
		}
	}

	return []string{
		fmt.Sprintf("Riba costs you %s every single day - %s a month that funds nothing good.", money.Format(daily), money.Format(r.TotalMonthlyInterest)),
		"\"And Allah has permitted trade and forbidden Riba\" - Quran 2:275. The exit plan above is your path out.",
	}
}

// closing picks the final message by readiness label and addresses the user
// by name when one was given.
func closing(r scoring.Result, name string) string {
	var msg string

	switch r.Label {
	case scoring.LabelInvestmentReady:
		msg = "Your foundation is solid: riba-free, protected, and saving strongly. You are ready to begin your halal investing journey."
	case scoring.LabelProgressing, scoring.LabelBuilding:
		msg = "You are on the path. Hold the plan above for a few months and re-run the compass - the score will follow the discipline."
	default:
		msg = "The numbers are only the starting point. Work the first step today; every journey out of difficulty begins with one transfer."
	}

	if name != "" {
		return name + " - " + msg
	}

	return msg
}
