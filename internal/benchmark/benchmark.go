// Package benchmark holds the fixed peer-comparison lookup tables and
// computes expected monthly spend per expense category for a household's
// location and income bracket. Unrecognized locations or brackets fall back
// to named baseline entries rather than failing.
package benchmark

import (
	"math"

	"github.com/tmi-labs/compass/internal/household"
)

// FallbackLocation is the baseline cost-of-living row used when a location
// is not in the table. Riyadh is the 1.0 reference city.
const FallbackLocation = "Riyadh"

// FallbackBracket is the baseline income-bracket row used when a bracket is
// not in the table.
const FallbackBracket = "Under $30k"

// Multipliers scales category spend for a location relative to the
// reference city.
type Multipliers struct {
	Housing    float64
	Food       float64
	Transport  float64
	Utilities  float64
	Healthcare float64
	Overall    float64
}

// Bracket holds the percentage-of-income benchmarks for an annual income
// range. Savings is the advisory peer savings-rate target, not a spend
// benchmark.
type Bracket struct {
	Housing    float64
	Food       float64
	Transport  float64
	Utilities  float64
	Healthcare float64
	Savings    float64
}

// Locations lists the selectable cities in display order.
var Locations = []string{
	"Dubai", "London", "New York", "Toronto", "Riyadh", "Istanbul", "Cairo",
	"Karachi", "Jakarta", "Kuala Lumpur", "Singapore", "Sydney", "Paris", "Berlin",
}

// IncomeRanges lists the selectable annual income brackets in ascending order.
var IncomeRanges = []string{
	"Under $30k", "$30k-$50k", "$50k-$75k", "$75k-$100k",
	"$100k-$150k", "$150k-$200k", "$200k+",
}

var locationMultipliers = map[string]Multipliers{
	"Dubai":        {Housing: 1.4, Food: 1.3, Transport: 1.2, Utilities: 1.3, Healthcare: 1.4, Overall: 1.32},
	"London":       {Housing: 1.6, Food: 1.4, Transport: 1.5, Utilities: 1.4, Healthcare: 1.5, Overall: 1.48},
	"New York":     {Housing: 1.7, Food: 1.5, Transport: 1.4, Utilities: 1.5, Healthcare: 1.6, Overall: 1.54},
	"Toronto":      {Housing: 1.3, Food: 1.2, Transport: 1.2, Utilities: 1.2, Healthcare: 1.3, Overall: 1.24},
	"Riyadh":       {Housing: 1.0, Food: 1.0, Transport: 1.0, Utilities: 1.0, Healthcare: 1.0, Overall: 1.0},
	"Istanbul":     {Housing: 0.7, Food: 0.6, Transport: 0.6, Utilities: 0.65, Healthcare: 0.7, Overall: 0.65},
	"Cairo":        {Housing: 0.4, Food: 0.3, Transport: 0.3, Utilities: 0.35, Healthcare: 0.4, Overall: 0.35},
	"Karachi":      {Housing: 0.3, Food: 0.25, Transport: 0.25, Utilities: 0.3, Healthcare: 0.35, Overall: 0.29},
	"Jakarta":      {Housing: 0.5, Food: 0.4, Transport: 0.35, Utilities: 0.4, Healthcare: 0.45, Overall: 0.42},
	"Kuala Lumpur": {Housing: 0.8, Food: 0.7, Transport: 0.6, Utilities: 0.7, Healthcare: 0.75, Overall: 0.71},
	"Singapore":    {Housing: 1.8, Food: 1.3, Transport: 1.1, Utilities: 1.3, Healthcare: 1.4, Overall: 1.38},
	"Sydney":       {Housing: 1.5, Food: 1.3, Transport: 1.3, Utilities: 1.3, Healthcare: 1.4, Overall: 1.36},
	"Paris":        {Housing: 1.5, Food: 1.3, Transport: 1.4, Utilities: 1.3, Healthcare: 1.4, Overall: 1.38},
	"Berlin":       {Housing: 1.2, Food: 1.1, Transport: 1.2, Utilities: 1.1, Healthcare: 1.2, Overall: 1.16},
}

var incomeBenchmarks = map[string]Bracket{
	"Under $30k":  {Housing: 35, Food: 15, Transport: 18, Utilities: 10, Healthcare: 8, Savings: 10},
	"$30k-$50k":   {Housing: 32, Food: 14, Transport: 16, Utilities: 9, Healthcare: 7, Savings: 12},
	"$50k-$75k":   {Housing: 30, Food: 12, Transport: 15, Utilities: 8, Healthcare: 6, Savings: 15},
	"$75k-$100k":  {Housing: 28, Food: 11, Transport: 14, Utilities: 7, Healthcare: 6, Savings: 18},
	"$100k-$150k": {Housing: 26, Food: 10, Transport: 13, Utilities: 6, Healthcare: 5, Savings: 20},
	"$150k-$200k": {Housing: 24, Food: 9, Transport: 12, Utilities: 5, Healthcare: 5, Savings: 22},
	"$200k+":      {Housing: 22, Food: 8, Transport: 11, Utilities: 5, Healthcare: 4, Savings: 25},
}

// LocationMultipliers returns the cost multipliers for the location,
// falling back to the reference city for unknown input.
func LocationMultipliers(location string) Multipliers {
	if m, ok := locationMultipliers[location]; ok {
		return m
	}

	return locationMultipliers[FallbackLocation]
}

// IncomeBracket returns the percentage benchmarks for the bracket, falling
// back to the lowest bracket for unknown input.
func IncomeBracket(bracket string) Bracket {
	if b, ok := incomeBenchmarks[bracket]; ok {
		return b
	}

	return incomeBenchmarks[FallbackBracket]
}

// SavingsTarget returns the advisory peer savings rate for the bracket as a
// fraction (0.15 for 15%).
func SavingsTarget(bracket string) float64 {
	return IncomeBracket(bracket).Savings / 100
}

// Charity floor and peer percentages. Zakat obliges 2.5% at minimum; the
// peer expectation is the larger of the floor and 5% generosity.
const (
	CharityFloorRate = 0.025
	charityPeerRate  = 0.05
	personalRate     = 0.04
	entertainmentRate = 0.05
)

// PeerAverages computes the expected monthly spend per scored category for
// the given location, income bracket, and total monthly income. Categories
// without a benchmark are absent from the result.
func PeerAverages(location, bracket string, totalIncome float64) map[household.Category]float64 {
	mult := LocationMultipliers(location)
	bench := IncomeBracket(bracket)

	avgs := make(map[household.Category]float64, len(household.ScoredCategories))
	for _, cat := range household.ScoredCategories {
		switch cat {
		case household.CategoryPersonal:
			avgs[cat] = totalIncome * personalRate
		case household.CategoryEntertainment:
			avgs[cat] = totalIncome * entertainmentRate
		case household.CategoryCharity:
			avgs[cat] = math.Max(totalIncome*CharityFloorRate, totalIncome*charityPeerRate)
		case household.CategoryHousing:
			avgs[cat] = bench.Housing / 100 * totalIncome * mult.Housing
		case household.CategoryFood:
			avgs[cat] = bench.Food / 100 * totalIncome * mult.Food
		case household.CategoryTransport:
			avgs[cat] = bench.Transport / 100 * totalIncome * mult.Transport
		case household.CategoryUtilities:
			avgs[cat] = bench.Utilities / 100 * totalIncome * mult.Utilities
		case household.CategoryHealthcare:
			avgs[cat] = bench.Healthcare / 100 * totalIncome * mult.Healthcare
		}
	}

	return avgs
}
