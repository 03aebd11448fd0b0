package planner

import (
	"fmt"
	"strings"
)

type BudgetTier string

const (
	BudgetLow    BudgetTier = "budget"
	BudgetMid    BudgetTier = "mid-range"
	BudgetLuxury BudgetTier = "luxury"
)

var budgetTiers = []BudgetTier{BudgetLow, BudgetMid, BudgetLuxury}

// ParseBudgetTier accepts the three tier names, ignoring case and surrounding spaces.
func ParseBudgetTier(s string) (BudgetTier, error) {
	v := BudgetTier(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range budgetTiers {
		if v == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown budget tier %q", ErrInvalidRequest, s)
}

func (b BudgetTier) Valid() bool {
	for _, t := range budgetTiers {
		if b == t {
			return true
		}
	}
	return false
}

func (b BudgetTier) MarshalText() ([]byte, error) {
	return []byte(b), nil
}

func (b *BudgetTier) UnmarshalText(text []byte) error {
	v, err := ParseBudgetTier(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

type TravelerCount string

const (
	TravelersSolo  TravelerCount = "1"
	TravelersPair  TravelerCount = "2"
	TravelersSmall TravelerCount = "3-4"
	TravelersGroup TravelerCount = "5+"
)

var travelerCounts = []TravelerCount{TravelersSolo, TravelersPair, TravelersSmall, TravelersGroup}

func ParseTravelerCount(s string) (TravelerCount, error) {
	v := TravelerCount(strings.TrimSpace(s))
	for _, t := range travelerCounts {
		if v == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown traveler count %q", ErrInvalidRequest, s)
}

// TravelerCountFor buckets a head count into its descriptor. Counts below one are treated as solo.
func TravelerCountFor(people int) TravelerCount {
	switch {
	case people <= 1:
		return TravelersSolo
	case people == 2:
		return TravelersPair
	case people <= 4:
		return TravelersSmall
	default:
		return TravelersGroup
	}
}

func (t TravelerCount) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *TravelerCount) UnmarshalText(text []byte) error {
	v, err := ParseTravelerCount(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	switch v := TimeOfDay(text); v {
	case Morning, Afternoon, Evening:
		*t = v
		return nil
	default:
		return fmt.Errorf("%w: unknown time of day %q", ErrInvalidRequest, string(text))
	}
}

// Theme is the focus of a day. Interest tags become themes as-is, so the set is open.
type Theme string

const (
	ThemeArrival     Theme = "arrival"
	ThemeDeparture   Theme = "departure"
	ThemeCulture     Theme = "culture"
	ThemeFood        Theme = "food"
	ThemeNature      Theme = "nature"
	ThemePhotography Theme = "photography"
	ThemeArt         Theme = "art"
	ThemeRelaxation  Theme = "relaxation"
	ThemeEntertain   Theme = "entertainment"
)

type ActivityStatus string

const (
	StatusPlanned   ActivityStatus = "planned"
	StatusConfirmed ActivityStatus = "confirmed"
	StatusCompleted ActivityStatus = "completed"
)

func ParseActivityStatus(s string) (ActivityStatus, error) {
	switch v := ActivityStatus(strings.ToLower(strings.TrimSpace(s))); v {
	case StatusPlanned, StatusConfirmed, StatusCompleted:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown activity status %q", ErrInvalidRequest, s)
	}
}
