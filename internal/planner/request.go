package planner

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRequest = errors.New("invalid trip request")

// TripRequest is the validated input of Generate. Build it with NewTripRequest.
type TripRequest struct {
	Destination string
	Duration    int
	Budget      BudgetTier
	Travelers   TravelerCount
	Interests   []string
	Notes       string
	// Cities, when set, rotates one city per day.
	Cities []string
}

func NewTripRequest(destination string, duration int, budget BudgetTier, travelers TravelerCount, interests []string, notes string, cities []string) (TripRequest, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return TripRequest{}, fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if duration < 1 {
		return TripRequest{}, fmt.Errorf("%w: duration must be at least 1 day", ErrInvalidRequest)
	}
	if !budget.Valid() {
		return TripRequest{}, fmt.Errorf("%w: unknown budget tier %q", ErrInvalidRequest, budget)
	}
	if _, err := ParseTravelerCount(string(travelers)); err != nil {
		return TripRequest{}, err
	}

	return TripRequest{
		Destination: destination,
		Duration:    duration,
		Budget:      budget,
		Travelers:   travelers,
		Interests:   cleanList(interests),
		Notes:       strings.TrimSpace(notes),
		Cities:      cleanList(cities),
	}, nil
}

// cleanList copies in, dropping blanks and repeats while keeping the caller's order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
