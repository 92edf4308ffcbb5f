package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketofmanycards/market-api/internal/apperr"
	"marketofmanycards/market-api/internal/model"
	"marketofmanycards/market-api/internal/store"
	"marketofmanycards/market-api/pkg/validators"

	"go.uber.org/zap"
)

// DeletePolicy decides what happens to a user's listings when the user is
// deleted.
type DeletePolicy string

const (
	// DeleteCascade removes the user's sales and auctions with the user.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteRestrict refuses to delete a user that still has listings.
	DeleteRestrict DeletePolicy = "restrict"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case DeleteCascade, DeleteRestrict:
		return p, nil
	}
	return "", fmt.Errorf("unknown user delete policy %q", s)
}

type UserService struct {
	repo     store.Repository
	onDelete DeletePolicy
	now      func() time.Time
}

func NewUserService(repo store.Repository, onDelete DeletePolicy) *UserService {
	if onDelete == "" {
		onDelete = DeleteCascade
	}

	return &UserService{
		repo:     repo,
		onDelete: onDelete,
		now:      time.Now,
	}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	u, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return u, nil
}

// Create registers a user. Shape and email format are checked before the
// uniqueness lookup so a malformed email never reaches the store.
func (s *UserService) Create(ctx context.Context, in *validators.UserInput) (*model.User, error) {
	if err := validators.UserValidator(in); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(in.Email)

	if err := CheckEmailUnique(ctx, s.repo, email, 0); err != nil {
		return nil, err
	}

	u := &model.User{
		FullName:  in.Name(),
		Email:     email,
		Contact:   strings.TrimSpace(in.Contact),
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, uniqueEmail(err)
	}

	zap.L().Debug("User created", zap.Uint("userID", u.ID))
	return u, nil
}

// Update replaces the name, email and contact of a user. All three are
// required, a partial body is rejected instead of wiping the missing fields.
func (s *UserService) Update(ctx context.Context, id uint, in *validators.UserInput) (*model.User, error) {
	if err := validators.UserValidator(in); err != nil {
		return nil, err
	}

	u, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	email := strings.TrimSpace(in.Email)

	if err := CheckEmailUnique(ctx, s.repo, email, id); err != nil {
		return nil, err
	}

	u.FullName = in.Name()
	u.Email = email
	u.Contact = strings.TrimSpace(in.Contact)

	if err := s.repo.UpdateUserProfile(ctx, u); err != nil {
		return nil, uniqueEmail(err)
	}

	return u, nil
}

// Delete removes a user and applies the configured policy to their listings
// inside one transaction.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		if _, err := tx.UserByID(ctx, id); err != nil {
			return err
		}

		n, err := tx.CountListingsBySeller(ctx, id)
		if err != nil {
			return err
		}

		if n > 0 {
			if s.onDelete == DeleteRestrict {
				return apperr.Conflict(fmt.Sprintf("user still has %d active listings, remove them first", n))
			}

			if err := tx.DeleteListingsBySeller(ctx, id); err != nil {
				return err
			}

			zap.L().Debug("Cascaded listings on user delete", zap.Uint("userID", id), zap.Int64("listings", n))
		}

		return tx.DeleteUser(ctx, id)
	})

	return apperr.Internal(err)
}
