package plan

import (
	"sort"

	"github.com/tmi-labs/compass/internal/benchmark"
	"github.com/tmi-labs/compass/internal/household"
	"github.com/tmi-labs/compass/internal/scoring"
)

// buildCuts lists every scored category (charity excepted) where spending
// exceeds the peer average, largest overspend first. While debt remains,
// charity above the 2.5% obligatory floor is listed separately as a
// reduction to the floor, never as a full cut.
func buildCuts(r scoring.Result) (cuts []Cut, charityReduction, total float64) {
	for _, cat := range household.ScoredCategories {
		if cat == household.CategoryCharity {
			continue
		}

		if over := r.Differences[cat]; over > 0 {
			cuts = append(cuts, Cut{Category: cat, Amount: over})
		}
	}

	sort.SliceStable(cuts, func(i, j int) bool {
		return cuts[i].Amount > cuts[j].Amount
	})

	if r.TotalDebt > 0 {
		floor := r.TotalIncome * benchmark.CharityFloorRate
		if spend := r.Spend[household.CategoryCharity]; spend > floor {
			charityReduction = spend - floor
		}
	}

	for _, c := range cuts {
		total += c.Amount
	}
	total += charityReduction

	return cuts, charityReduction, total
}
