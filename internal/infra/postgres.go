package infra

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"travelai/internal/config"
	"travelai/internal/models/db_models"
)

// InitPostgresql opens the pool and migrates the account and trip tables.
func InitPostgresql(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is empty")
	}

	level := gormlogger.Warn
	if cfg.IsProduction() {
		level = gormlogger.Error
	}
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.Trip{},
		&db_models.TripDay{},
		&db_models.TripItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	log.Info().Msg("PostgreSQL connected and migrated")
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("Error getting database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
		return
	}
	log.Info().Msg("PostgreSQL database connection closed")
}
