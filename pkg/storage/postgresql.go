package storage

import (
	"fmt"
	"log/slog"

	"github.com/treeplant/event-manager/pkg/config"
	"github.com/treeplant/event-manager/pkg/model"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the document store connection and migrates the three
// collections (users, events, event joins). A connection failure here is fatal
// to the caller.
func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger: slogGorm.New(
			slogGorm.WithHandler(logger.Handler()),
			slogGorm.WithTraceAll(),
		),
		// duplicate users and duplicate joins are detected through the unique
		// indexes, so gorm has to translate the driver error
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.EventJoin{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %v", err)
	}

	return db, nil
}
