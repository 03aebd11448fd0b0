package planner

import (
	"math"
	"strings"
)

const Currency = "USD"

type CostEstimate struct {
	PerPerson int    `json:"perPerson"`
	Total     int    `json:"total"`
	Currency  string `json:"currency"`
}

type dailyRange struct {
	min, max float64
}

var dailyRanges = map[BudgetTier]dailyRange{
	BudgetLow:    {30, 50},
	BudgetMid:    {75, 150},
	BudgetLuxury: {200, 400},
}

// DailyCost is the midpoint of the tier's daily range. Unknown tiers cost nothing.
func DailyCost(tier BudgetTier) float64 {
	r, ok := dailyRanges[tier]
	if !ok {
		return 0
	}
	return (r.min + r.max) / 2
}

func travelerMultiplier(t TravelerCount) float64 {
	switch {
	case t == TravelersSolo:
		return 1
	case t == TravelersPair:
		return 1.8
	case strings.Contains(string(t), "3-4"):
		return 3.2
	default:
		return 4.5
	}
}

// EstimateCost scales the daily midpoint by days and party size. Values are rounded with
// math.Round, so halves round away from zero.
func EstimateCost(dayCount int, tier BudgetTier, travelers TravelerCount) CostEstimate {
	if dayCount < 0 {
		dayCount = 0
	}
	base := DailyCost(tier) * float64(dayCount)
	return CostEstimate{
		PerPerson: int(math.Round(base)),
		Total:     int(math.Round(base * travelerMultiplier(travelers))),
		Currency:  Currency,
	}
}
