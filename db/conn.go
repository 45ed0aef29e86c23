// Package db contains things related to the Postgres connection
package db

import (
	"fmt"

	"github.com/roshanpatil2000/web-analytics-backend/config"
	"github.com/roshanpatil2000/web-analytics-backend/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the single shared database handle used for the whole
// process lifetime. The caller must treat an error as fatal, the
// server can't run without storage.
func New() (*gorm.DB, error) {
	dsn := viper.GetString("database.url")
	if dsn == "" {
		return nil, fmt.Errorf("no database URL configured")
	}

	// TranslateError turns driver specific unique violations into
	// gorm.ErrDuplicatedKey, which backstops the signup email race
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database, %w", err)
	}

	if config.AutoMigrate() {
		if err := db.AutoMigrate(model.User{}); err != nil {
			return nil, fmt.Errorf("failed to automigrate tables, %w", err)
		}
	}

	return db, nil
}
