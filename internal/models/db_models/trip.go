package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Trip is an itinerary saved to an account. Days and items mirror the itinerary's structure.
type Trip struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Destination   string `gorm:"index"`
	DepartureCity string
	StartDate     time.Time `gorm:"type:date"`
	EndDate       time.Time `gorm:"type:date"`
	Duration      int
	Adults        int
	Kids          int
	Budget        string
	Travelers     string
	Interests     pq.StringArray `gorm:"type:text[]"`
	Cities        pq.StringArray `gorm:"type:text[]"`
	Notes         string
	Tips          datatypes.JSON `gorm:"type:jsonb"`
	EstimatedCost datatypes.JSON `gorm:"type:jsonb"`

	Days []TripDay `gorm:"constraint:OnDelete:CASCADE"`
}

type TripDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index"`
	DayNumber int
	Date      time.Time `gorm:"type:date"`
	City      string
	Theme     string
	Title     string
	Snippet   string

	Items []TripItem `gorm:"constraint:OnDelete:CASCADE"`
}

type TripItem struct {
	BaseModel
	TripDayID   uuid.UUID `gorm:"type:uuid;index"`
	ExternalID  string
	Type        string
	Time        string
	Title       string
	Description string
	Duration    string
	Cost        string
	Location    string
	Status      string
	Order       int `gorm:"column:sort_order"`
}
