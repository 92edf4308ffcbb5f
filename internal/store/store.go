// Package store persists users, cards and listings through gorm. Lookups that
// miss return apperr.ErrNotFound and unique index or foreign key violations
// return apperr.ErrConflict, any other failure is wrapped as is.
package store

import (
	"context"
	"errors"
	"fmt"

	"marketofmanycards/market-api/internal/apperr"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

var _ Repository = (*Store)(nil)

// New wraps an open connection. The connection must be opened with
// TranslateError enabled so duplicate keys surface as gorm.ErrDuplicatedKey.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func translate(err error, entity string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(entity + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Conflict(entity + " is still referenced")
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

// affected turns a write that matched no row into a not found error.
func affected(r *gorm.DB, entity string, id uint) error {
	if r.Error != nil {
		return translate(r.Error, entity, id)
	}

	if r.RowsAffected == 0 {
		return apperr.NotFound(entity, id)
	}

	return nil
}
