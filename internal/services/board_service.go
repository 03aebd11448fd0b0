package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"travelai/internal/models/db_models"
	"travelai/internal/models/request_models"
	"travelai/internal/planner"
	"travelai/internal/repositories"
	"travelai/pkg/utils"
)

const (
	blankTripDestination = "New Destination"
	blankTripDays        = 7
	blankTripAdults      = 2
	blankDayCity         = "City"
	defaultActivityTime  = "9:00 AM"
	defaultActivityDur   = "1 hour"
)

// BoardServiceInterface edits the day columns of a saved trip.
type BoardServiceInterface interface {
	CreateBlankTrip(ctx context.Context, clientID string) (*db_models.SavedTrip, error)
	// MoveActivity takes the activity out of its day and appends it to targetDay.
	MoveActivity(ctx context.Context, clientID, tripID string, req request_models.MoveActivityRequest) (*db_models.SavedTrip, error)
	AddActivity(ctx context.Context, clientID, tripID string, req request_models.AddActivityRequest) (*planner.ScheduledActivity, error)
	EditActivity(ctx context.Context, clientID, tripID, activityID string, req request_models.EditActivityRequest) (*planner.ScheduledActivity, error)
	DeleteActivity(ctx context.Context, clientID, tripID, activityID string) error
	UpdateActivityStatus(ctx context.Context, clientID, tripID, activityID string, req request_models.UpdateActivityStatusRequest) (*planner.ScheduledActivity, error)
}

type BoardService struct {
	store    repositories.SavedTripStore
	trips    SavedTripServiceInterface
	observer SavedTripObserver
	log      zerolog.Logger
	now      func() time.Time
}

func NewBoardService(store repositories.SavedTripStore, trips SavedTripServiceInterface, observer SavedTripObserver, log zerolog.Logger) BoardServiceInterface {
	return &BoardService{
		store:    store,
		trips:    trips,
		observer: observer,
		log:      log,
		now:      time.Now,
	}
}

func (b *BoardService) CreateBlankTrip(ctx context.Context, clientID string) (*db_models.SavedTrip, error) {
	now := b.now().UTC()
	trip := db_models.SavedTrip{
		Destination: blankTripDestination,
		DestCountry: blankTripDestination,
		StartDate:   now.Format(utils.DateLayout),
		Duration:    blankTripDays,
		Travellers:  &db_models.Travellers{Adults: blankTripAdults},
		Travelers:   string(planner.TravelerCountFor(blankTripAdults)),
		Interests:   []string{},
		CreatedAt:   now,
		Itinerary: planner.Itinerary{
			Destination: blankTripDestination,
			Duration:    blankTripDays,
			Days:        make([]planner.DayPlan, 0, blankTripDays),
			Tips:        []string{},
		},
	}
	for d := 1; d <= blankTripDays; d++ {
		trip.Itinerary.Days = append(trip.Itinerary.Days, planner.DayPlan{
			Day:        d,
			City:       blankDayCity,
			Activities: []planner.ScheduledActivity{},
		})
	}
	return b.trips.SaveTrip(ctx, clientID, trip)
}

func (b *BoardService) MoveActivity(ctx context.Context, clientID, tripID string, req request_models.MoveActivityRequest) (*db_models.SavedTrip, error) {
	return b.mutate(ctx, "board_move", clientID, tripID, func(it *planner.Itinerary) error {
		from, idx := findActivity(it, req.ActivityID)
		if from < 0 {
			return utils.ErrActivityNotFound
		}
		to := findDay(it, req.TargetDay)
		if to < 0 {
			return utils.ErrDayNotFound
		}
		moved := it.Days[from].Activities[idx]
		it.Days[from].Activities = append(it.Days[from].Activities[:idx], it.Days[from].Activities[idx+1:]...)
		it.Days[to].Activities = append(it.Days[to].Activities, moved)
		return nil
	})
}

func (b *BoardService) AddActivity(ctx context.Context, clientID, tripID string, req request_models.AddActivityRequest) (*planner.ScheduledActivity, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, utils.InvalidInput("title is required")
	}

	var added planner.ScheduledActivity
	_, err := b.mutate(ctx, "board_add", clientID, tripID, func(it *planner.Itinerary) error {
		d := findDay(it, req.Day)
		if d < 0 {
			return utils.ErrDayNotFound
		}
		added = planner.ScheduledActivity{
			ID:          newActivityID(it, req.Day, b.now()),
			Time:        orDefault(req.Time, defaultActivityTime),
			Title:       title,
			Description: req.Description,
			Duration:    orDefault(req.Duration, defaultActivityDur),
			Cost:        req.Cost,
			Location:    req.Location,
			Status:      planner.StatusPlanned,
		}
		it.Days[d].Activities = append(it.Days[d].Activities, added)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (b *BoardService) EditActivity(ctx context.Context, clientID, tripID, activityID string, req request_models.EditActivityRequest) (*planner.ScheduledActivity, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, utils.InvalidInput("title cannot be empty")
	}

	var edited planner.ScheduledActivity
	_, err := b.mutate(ctx, "board_edit", clientID, tripID, func(it *planner.Itinerary) error {
		d, i := findActivity(it, activityID)
		if d < 0 {
			return utils.ErrActivityNotFound
		}
		a := &it.Days[d].Activities[i]
		if req.Title != nil {
			a.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			a.Description = *req.Description
		}
		if req.Time != nil {
			a.Time = *req.Time
		}
		if req.Duration != nil {
			a.Duration = *req.Duration
		}
		if req.Location != nil {
			a.Location = *req.Location
		}
		if req.Cost != nil {
			a.Cost = *req.Cost
		}
		edited = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &edited, nil
}

func (b *BoardService) DeleteActivity(ctx context.Context, clientID, tripID, activityID string) error {
	_, err := b.mutate(ctx, "board_delete", clientID, tripID, func(it *planner.Itinerary) error {
		d, i := findActivity(it, activityID)
		if d < 0 {
			return utils.ErrActivityNotFound
		}
		it.Days[d].Activities = append(it.Days[d].Activities[:i], it.Days[d].Activities[i+1:]...)
		return nil
	})
	return err
}

func (b *BoardService) UpdateActivityStatus(ctx context.Context, clientID, tripID, activityID string, req request_models.UpdateActivityStatusRequest) (*planner.ScheduledActivity, error) {
	status, err := planner.ParseActivityStatus(req.Status)
	if err != nil {
		return nil, asInputError(err)
	}

	var updated planner.ScheduledActivity
	_, err = b.mutate(ctx, "board_status", clientID, tripID, func(it *planner.Itinerary) error {
		d, i := findActivity(it, activityID)
		if d < 0 {
			return utils.ErrActivityNotFound
		}
		it.Days[d].Activities[i].Status = status
		updated = it.Days[d].Activities[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// mutate edits one trip's itinerary in place. When fn fails nothing is written.
func (b *BoardService) mutate(ctx context.Context, op, clientID, tripID string, fn func(it *planner.Itinerary) error) (*db_models.SavedTrip, error) {
	var result db_models.SavedTrip
	_, err := b.store.Update(ctx, clientID, func(trips []db_models.SavedTrip) ([]db_models.SavedTrip, error) {
		i := indexOfTrip(trips, tripID)
		if i < 0 {
			return nil, utils.ErrSavedTripNotFound
		}
		if err := fn(&trips[i].Itinerary); err != nil {
			return nil, err
		}
		now := b.now().UTC()
		trips[i].UpdatedAt = &now
		result = trips[i]
		return trips, nil
	})
	if err = mapStoreErr(b.log, b.observer, op, clientID, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func findDay(it *planner.Itinerary, day int) int {
	for i := range it.Days {
		if it.Days[i].Day == day {
			return i
		}
	}
	return -1
}

func findActivity(it *planner.Itinerary, id string) (int, int) {
	for d := range it.Days {
		for i := range it.Days[d].Activities {
			if it.Days[d].Activities[i].ID == id {
				return d, i
			}
		}
	}
	return -1, -1
}

// newActivityID is "<day>-<unixmillis>", with a counter suffix when that id is already in the trip.
func newActivityID(it *planner.Itinerary, day int, now time.Time) string {
	base := fmt.Sprintf("%d-%d", day, now.UnixMilli())
	id := base
	for n := 2; ; n++ {
		if d, _ := findActivity(it, id); d < 0 {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
