// Package db opens the SQL database behind the store
package db

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"marketofmanycards/market-api/internal/model"
	"marketofmanycards/market-api/pkg/util"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the database described by the database.* config keys and
// migrates the schema.
func New() (*gorm.DB, error) {
	return Open(viper.GetString("database.driver"), viper.GetString("database.dsn"))
}

// Open connects using driver ("sqlite" or "postgres") and migrates the schema.
// An in-memory SQLite database is pinned to a single connection, otherwise
// every pooled connection would see its own empty database.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver {
	case "sqlite":
		memory := strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")

		// If running in a docker container don't allow the sqlite file to be created.
		// The host should instead mount it using volumes
		if !memory && util.IsRunningInDocker() {
			if _, err := os.Stat(dsn); errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to /app/%s", dsn)
			}
		}

		dialector = sqlite.Open(withForeignKeys(dsn))
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(zap.NewStdLog(zap.L()), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database, %w", driver, err)
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql handle, %w", err)
		}

		if strings.Contains(dsn, ":memory:") {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	err = db.AutoMigrate(model.User{}, model.Card{}, model.Sale{}, model.Auction{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}

// withForeignKeys turns on foreign key enforcement, which SQLite leaves off
// for every new connection unless the DSN asks for it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=1"
	}

	return dsn + "?_foreign_keys=1"
}
