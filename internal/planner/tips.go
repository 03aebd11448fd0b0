package planner

import (
	"slices"
	"strings"
)

const MaxTips = 6

var (
	tierTips = map[BudgetTier][]string{
		BudgetLow: {
			"Look for free walking tours and public events",
			"Eat at local markets for authentic and affordable meals",
		},
		BudgetLuxury: {
			"Consider hiring a private guide for personalized experiences",
			"Make reservations at high-end restaurants in advance",
		},
	}

	soloTips = []string{
		"Join group tours to meet other travelers",
		"Stay in social accommodations like hostels or guesthouses",
	}

	groupTips = []string{
		"Book group discounts for attractions and tours",
		"Consider vacation rentals for larger groups",
	}

	// interestTips is checked in this order, whatever order the interests arrive in.
	interestTips = []struct {
		interest string
		tips     []string
	}{
		{"food", []string{
			"Try street food for authentic local flavors",
			"Ask locals for restaurant recommendations",
		}},
		{"culture", []string{
			"Visit during local festivals for cultural immersion",
			"Learn basic phrases in the local language",
		}},
		{"photography", []string{
			"Wake up early for the best lighting conditions",
			"Research Instagram-worthy spots in advance",
		}},
	}

	generalTips = []string{
		"Download offline maps before exploring",
		"Keep copies of important documents",
		"Check local weather forecasts daily",
		"Respect local customs and dress codes",
	}
)

// Tips builds at most MaxTips suggestions. Earlier groups win when the list overflows:
// tier, then traveler count, then interests, then general advice.
func Tips(interests []string, tier BudgetTier, travelers TravelerCount) []string {
	tips := make([]string, 0, 12)
	tips = append(tips, tierTips[tier]...)

	switch {
	case travelers == TravelersSolo:
		tips = append(tips, soloTips...)
	case strings.Contains(string(travelers), "+"):
		tips = append(tips, groupTips...)
	}

	for _, it := range interestTips {
		if slices.Contains(interests, it.interest) {
			tips = append(tips, it.tips...)
		}
	}

	tips = append(tips, generalTips...)
	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}
