package benchmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmi-labs/compass/internal/benchmark"
	"github.com/tmi-labs/compass/internal/household"
)

func TestLocationMultipliersFallback(t *testing.T) {
	known := benchmark.LocationMultipliers("London")
	assert.Equal(t, 1.6, known.Housing)

	unknown := benchmark.LocationMultipliers("Atlantis")
	baseline := benchmark.LocationMultipliers(benchmark.FallbackLocation)
	assert.Equal(t, baseline, unknown)
	assert.Equal(t, 1.0, unknown.Housing)
}

func TestIncomeBracketFallback(t *testing.T) {
	known := benchmark.IncomeBracket("$100k-$150k")
	assert.Equal(t, 26.0, known.Housing)
	assert.Equal(t, 20.0, known.Savings)

	unknown := benchmark.IncomeBracket("a gazillion")
	baseline := benchmark.IncomeBracket(benchmark.FallbackBracket)
	assert.Equal(t, baseline, unknown)
}

func TestPeerAverages(t *testing.T) {
	avgs := benchmark.PeerAverages("Dubai", "$50k-$75k", 5000)

	// housing: 30% of income scaled by Dubai's 1.4 multiplier.
	assert.InDelta(t, 5000*0.30*1.4, avgs[household.CategoryHousing], 0.001)
	assert.InDelta(t, 5000*0.12*1.3, avgs[household.CategoryFood], 0.001)

	// Fixed-percentage categories ignore location and bracket.
	assert.InDelta(t, 200, avgs[household.CategoryPersonal], 0.001)
	assert.InDelta(t, 250, avgs[household.CategoryEntertainment], 0.001)
	assert.InDelta(t, 250, avgs[household.CategoryCharity], 0.001)

	// No benchmark for education or other.
	_, ok := avgs[household.CategoryEducation]
	assert.False(t, ok)
	_, ok = avgs[household.CategoryOther]
	assert.False(t, ok)
}

func TestPeerAveragesZeroIncome(t *testing.T) {
	avgs := benchmark.PeerAverages("London", "$200k+", 0)
	for cat, v := range avgs {
		assert.Zerof(t, v, "category %s", cat)
	}
}

func TestPeerAveragesUnknownInputsUseFallbackRows(t *testing.T) {
	got := benchmark.PeerAverages("Atlantis", "unknown", 3000)
	want := benchmark.PeerAverages(benchmark.FallbackLocation, benchmark.FallbackBracket, 3000)
	assert.Equal(t, want, got)
}

func TestSavingsTarget(t *testing.T) {
	assert.InDelta(t, 0.15, benchmark.SavingsTarget("$50k-$75k"), 0.0001)
	assert.InDelta(t, 0.10, benchmark.SavingsTarget("unrecognized"), 0.0001)
}
