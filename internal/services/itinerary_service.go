package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"travelai/internal/models/request_models"
	"travelai/internal/planner"
	"travelai/pkg/utils"
)

const (
	MinTripDays = 1
	MaxTripDays = 30
)

var ErrMissingFields = utils.InvalidInput("Missing required fields")

// GenerationObserver is told about every itinerary the service produces.
type GenerationObserver interface {
	ItineraryGenerated(budget string, ownCatalog bool)
}

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*planner.Itinerary, error)
	GenerateFromWizard(ctx context.Context, req request_models.WizardItineraryRequest) (*planner.Itinerary, error)
	Destinations() []string
}

type ItineraryService struct {
	generator *planner.Generator
	observer  GenerationObserver
	log       zerolog.Logger
}

func NewItineraryService(generator *planner.Generator, observer GenerationObserver, log zerolog.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		generator: generator,
		observer:  observer,
		log:       log,
	}
}

func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*planner.Itinerary, error) {
	budget, err := parseBudget(req.Budget)
	if err != nil {
		return nil, err
	}

	travelers := planner.TravelersSolo
	if strings.TrimSpace(req.Travelers) != "" {
		travelers, err = planner.ParseTravelerCount(req.Travelers)
		if err != nil {
			return nil, asInputError(err)
		}
	}

	tripReq, err := buildTripRequest(req.Destination, req.Duration, budget, travelers, req.Interests, req.Notes, req.Cities)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, tripReq), nil
}

// GenerateFromWizard accepts the wizard payload: a country, a departure city, a start date and the
// cities to rotate through.
func (s *ItineraryService) GenerateFromWizard(ctx context.Context, req request_models.WizardItineraryRequest) (*planner.Itinerary, error) {
	if strings.TrimSpace(req.DestCountry) == "" ||
		strings.TrimSpace(req.DepartureCity) == "" ||
		strings.TrimSpace(req.StartDate) == "" ||
		req.Duration == 0 ||
		len(req.Cities) == 0 {
		return nil, ErrMissingFields
	}
	if _, err := utils.ParseDate(req.StartDate); err != nil {
		return nil, utils.InvalidInput("startDate must be a date in YYYY-MM-DD form")
	}
	if req.Travellers.Adults < 0 || req.Travellers.Kids < 0 {
		return nil, utils.InvalidInput("traveller counts cannot be negative")
	}
	if req.Travellers.Adults < 1 {
		return nil, utils.InvalidInput("at least one adult is required")
	}

	budget, err := parseBudget(req.Budget)
	if err != nil {
		return nil, err
	}
	travelers := planner.TravelerCountFor(req.Travellers.Adults + req.Travellers.Kids)

	tripReq, err := buildTripRequest(req.DestCountry, req.Duration, budget, travelers, req.InterestTags, req.Notes, req.Cities)
	if err != nil {
		return nil, err
	}
	if len(tripReq.Cities) == 0 {
		return nil, ErrMissingFields
	}
	return s.generate(ctx, tripReq), nil
}

func (s *ItineraryService) Destinations() []string {
	return s.generator.Catalog().Destinations()
}

func (s *ItineraryService) generate(ctx context.Context, req planner.TripRequest) *planner.Itinerary {
	itinerary := s.generator.Generate(req)
	AnnotateItinerary(&itinerary)

	_, own := s.generator.Catalog().Lookup(req.Destination)
	if s.observer != nil {
		s.observer.ItineraryGenerated(string(req.Budget), own)
	}
	s.log.Debug().
		Ctx(ctx).
		Str("destination", req.Destination).
		Int("days", req.Duration).
		Str("budget", string(req.Budget)).
		Bool("own_catalog", own).
		Msg("itinerary generated")
	return &itinerary
}

// AnnotateItinerary gives every activity an id of the form "<day>-<slot>" and marks unset
// statuses as planned.
func AnnotateItinerary(it *planner.Itinerary) {
	for d := range it.Days {
		day := &it.Days[d]
		for i := range day.Activities {
			a := &day.Activities[i]
			if a.ID == "" {
				a.ID = fmt.Sprintf("%d-%d", day.Day, i+1)
			}
			if a.Status == "" {
				a.Status = planner.StatusPlanned
			}
		}
	}
}

func parseBudget(raw string) (planner.BudgetTier, error) {
	if strings.TrimSpace(raw) == "" {
		return planner.BudgetMid, nil
	}
	budget, err := planner.ParseBudgetTier(raw)
	if err != nil {
		return "", asInputError(err)
	}
	return budget, nil
}

func buildTripRequest(destination string, duration int, budget planner.BudgetTier, travelers planner.TravelerCount, interests []string, notes string, cities []string) (planner.TripRequest, error) {
	if duration < MinTripDays || duration > MaxTripDays {
		return planner.TripRequest{}, utils.InvalidInput(fmt.Sprintf("duration must be between %d and %d days", MinTripDays, MaxTripDays))
	}
	req, err := planner.NewTripRequest(destination, duration, budget, travelers, interests, notes, cities)
	if err != nil {
		return planner.TripRequest{}, asInputError(err)
	}
	return req, nil
}

func asInputError(err error) error {
	if errors.Is(err, planner.ErrInvalidRequest) {
		return utils.InvalidInput(err.Error())
	}
	return err
}
