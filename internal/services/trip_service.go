package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"travelai/internal/models/db_models"
	"travelai/internal/models/request_models"
	"travelai/internal/models/response_models"
	"travelai/internal/planner"
	"travelai/internal/repositories"
	"travelai/pkg/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, accountID string, req request_models.SaveTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, accountID string, page, pageSize int) (*response_models.PagedTripsResponse, error)
	GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, accountID, tripID string) error
}

type TripService struct {
	tripRepo    repositories.TripRepository
	itineraries ItineraryServiceInterface
	log         zerolog.Logger
}

func NewTripService(tripRepo repositories.TripRepository, itineraries ItineraryServiceInterface, log zerolog.Logger) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		itineraries: itineraries,
		log:         log,
	}
}

func (s *TripService) SaveTrip(ctx context.Context, accountID string, req request_models.SaveTripRequest) (*response_models.TripResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if req.Duration < MinTripDays || req.Duration > MaxTripDays {
		return nil, utils.InvalidInput(fmt.Sprintf("duration must be between %d and %d days", MinTripDays, MaxTripDays))
	}
	if req.Adults < 1 {
		return nil, utils.InvalidInput("at least one adult is required")
	}
	if req.Kids < 0 {
		return nil, utils.InvalidInput("kids cannot be negative")
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	budget, err := parseBudget(req.Budget)
	if err != nil {
		return nil, err
	}
	travelers := planner.TravelerCountFor(req.Adults + req.Kids)

	itinerary := req.Itinerary
	if itinerary == nil {
		itinerary, err = s.itineraries.Generate(ctx, request_models.GenerateItineraryRequest{
			Destination: req.Destination,
			Duration:    req.Duration,
			Budget:      string(budget),
			Travelers:   string(travelers),
			Interests:   req.Interests,
			Notes:       req.Notes,
			Cities:      req.Cities,
		})
		if err != nil {
			return nil, err
		}
	} else {
		annotated := itinerary.Clone()
		AnnotateItinerary(&annotated)
		itinerary = &annotated
	}

	trip, err := buildTrip(owner, req, start, budget, travelers, itinerary)
	if err != nil {
		return nil, err
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		s.log.Error().Err(err).Str("account_id", accountID).Msg("create trip")
		return nil, utils.ErrDatabaseError
	}

	s.log.Info().Str("trip_id", trip.ID.String()).Str("destination", trip.Destination).Msg("trip saved")
	return toTripResponse(trip)
}

func (s *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) (*response_models.PagedTripsResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	trips, total, err := s.tripRepo.ListByAccount(ctx, owner, page, pageSize)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", accountID).Msg("list trips")
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.TripSummaryResponse, 0, len(trips))
	for i := range trips {
		items = append(items, toTripSummary(&trips[i]))
	}
	return &response_models.PagedTripsResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *TripService) GetTrip(ctx context.Context, accountID, tripID string) (*response_models.TripResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.FindForAccount(ctx, owner, id)
	if err != nil {
		s.log.Error().Err(err).Str("trip_id", tripID).Msg("find trip")
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return toTripResponse(trip)
}

func (s *TripService) DeleteTrip(ctx context.Context, accountID, tripID string) error {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(tripID)
	if err != nil {
		return utils.ErrTripNotFound
	}

	deleted, err := s.tripRepo.DeleteForAccount(ctx, owner, id)
	if err != nil {
		s.log.Error().Err(err).Str("trip_id", tripID).Msg("delete trip")
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func parseAccountID(accountID string) (uuid.UUID, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, utils.ErrUnauthorized
	}
	return id, nil
}

func buildTrip(owner uuid.UUID, req request_models.SaveTripRequest, start time.Time, budget planner.BudgetTier, travelers planner.TravelerCount, it *planner.Itinerary) (*db_models.Trip, error) {
	tips, err := json.Marshal(it.Tips)
	if err != nil {
		return nil, err
	}
	cost, err := json.Marshal(it.EstimatedCost)
	if err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(req.Destination)
	trip := &db_models.Trip{
		AccountID:     owner,
		Name:          "Trip to " + destination,
		Destination:   destination,
		DepartureCity: strings.TrimSpace(req.DepartureCity),
		StartDate:     start,
		EndDate:       utils.TripEndDate(start, req.Duration),
		Duration:      req.Duration,
		Adults:        req.Adults,
		Kids:          req.Kids,
		Budget:        string(budget),
		Travelers:     string(travelers),
		Interests:     pq.StringArray(req.Interests),
		Cities:        pq.StringArray(req.Cities),
		Notes:         strings.TrimSpace(req.Notes),
		Tips:          datatypes.JSON(tips),
		EstimatedCost: datatypes.JSON(cost),
	}

	for _, day := range it.Days {
		tripDay := db_models.TripDay{
			DayNumber: day.Day,
			Date:      start.AddDate(0, 0, day.Day-1),
			City:      day.City,
			Theme:     string(day.Theme),
			Title:     day.Title,
			Snippet:   day.Snippet,
		}
		for _, a := range day.Activities {
			tripDay.Items = append(tripDay.Items, db_models.TripItem{
				ExternalID:  a.ID,
				Type:        "activity",
				Time:        a.Time,
				Title:       a.Title,
				Description: a.Description,
				Duration:    a.Duration,
				Cost:        a.Cost,
				Location:    a.Location,
				Status:      string(a.Status),
			})
		}
		trip.Days = append(trip.Days, tripDay)
	}
	return trip, nil
}

func toTripSummary(t *db_models.Trip) response_models.TripSummaryResponse {
	return response_models.TripSummaryResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate.Format(utils.DateLayout),
		EndDate:     t.EndDate.Format(utils.DateLayout),
		Duration:    t.Duration,
		CreatedAt:   utils.FormatRFC3339(t.CreatedTime()),
	}
}

func toTripResponse(t *db_models.Trip) (*response_models.TripResponse, error) {
	it := planner.Itinerary{
		Destination: t.Destination,
		Duration:    t.Duration,
		Days:        make([]planner.DayPlan, 0, len(t.Days)),
		Tips:        []string{},
	}
	if len(t.Tips) > 0 {
		if err := json.Unmarshal(t.Tips, &it.Tips); err != nil {
			return nil, fmt.Errorf("decode trip tips: %w", err)
		}
	}
	if len(t.EstimatedCost) > 0 {
		if err := json.Unmarshal(t.EstimatedCost, &it.EstimatedCost); err != nil {
			return nil, fmt.Errorf("decode trip cost: %w", err)
		}
	}

	for _, d := range t.Days {
		day := planner.DayPlan{
			Day:        d.DayNumber,
			Theme:      planner.Theme(d.Theme),
			City:       d.City,
			Title:      d.Title,
			Snippet:    d.Snippet,
			Activities: make([]planner.ScheduledActivity, 0, len(d.Items)),
		}
		for _, item := range d.Items {
			day.Activities = append(day.Activities, planner.ScheduledActivity{
				ID:          item.ExternalID,
				Time:        item.Time,
				Title:       item.Title,
				Description: item.Description,
				Duration:    item.Duration,
				Cost:        item.Cost,
				Location:    item.Location,
				Status:      planner.ActivityStatus(item.Status),
			})
		}
		it.Days = append(it.Days, day)
	}

	interests := []string(t.Interests)
	if interests == nil {
		interests = []string{}
	}
	cities := []string(t.Cities)
	if cities == nil {
		cities = []string{}
	}
	return &response_models.TripResponse{
		TripSummaryResponse: toTripSummary(t),
		DepartureCity:       t.DepartureCity,
		Adults:              t.Adults,
		Kids:                t.Kids,
		Budget:              t.Budget,
		Travelers:           t.Travelers,
		Interests:           interests,
		Cities:              cities,
		Notes:               t.Notes,
		Itinerary:           it,
	}, nil
}
