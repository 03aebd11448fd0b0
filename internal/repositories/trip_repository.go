package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "travelai/internal/models/db_models"
)

type TripRepository interface {
	// Create stores the trip with its days and items in one transaction.
	Create(ctx context.Context, trip *dbm.Trip) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Trip, int64, error)
	FindForAccount(ctx context.Context, accountID, tripID uuid.UUID) (*dbm.Trip, error)
	DeleteForAccount(ctx context.Context, accountID, tripID uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		days := trip.Days
		trip.Days = nil
		defer func() { trip.Days = days }()

		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		for i := range days {
			days[i].TripID = trip.ID
			items := days[i].Items
			days[i].Items = nil
			if err := tx.Create(&days[i]).Error; err != nil {
				return err
			}
			for j := range items {
				items[j].TripDayID = days[i].ID
				items[j].Order = j
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
			days[i].Items = items
		}
		return nil
	})
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Trip, int64, error) {
	var (
		trips []dbm.Trip
		total int64
	)
	owned := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&dbm.Trip{}).Where("account_id = ?", accountID)
	}
	if err := owned().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	// created_at has second precision; id keeps pages stable within a second.
	err := owned().Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

// FindForAccount returns nil, nil when the trip does not exist or belongs to someone else.
func (r *tripRepository) FindForAccount(ctx context.Context, accountID, tripID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", tripID, accountID).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number ASC") }).
		Preload("Days.Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) DeleteForAccount(ctx context.Context, accountID, tripID uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip dbm.Trip
		if err := tx.Select("id").First(&trip, "id = ? AND account_id = ?", tripID, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		dayIDs := tx.Model(&dbm.TripDay{}).Select("id").Where("trip_id = ?", tripID)
		if err := tx.Where("trip_day_id IN (?)", dayIDs).Delete(&dbm.TripItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&dbm.TripDay{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&dbm.Trip{}, "id = ?", tripID).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
