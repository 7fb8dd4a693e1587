package database

import (
	"errors"
	"time"

	"gallery-app/config"
	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init connects to Postgres and migrates the domain models. An empty
// DB_URL is reported as an error so the caller can decide whether the
// in-memory fallback is acceptable for the environment.
func Init() error {
	dsn := config.DB_URL
	if dsn == "" {
		return errors.New("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(config.DB_MAX_CONNS)
	sqlDB.SetMaxIdleConns(config.DB_MAX_CONNS / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&users.User{},
		&artworks.Artwork{},
	); err != nil {
		return err
	}

	DB = db
	return nil
}
