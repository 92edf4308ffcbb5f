package store

import (
	"context"
	"errors"

	"marketofmanycards/market-api/internal/apperr"
	"marketofmanycards/market-api/internal/model"

	"gorm.io/gorm"
)

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}

	err := s.db.WithContext(ctx).
		Order("id").
		Find(&users).
		Error

	return users, translate(err, "user", nil)
}

func (s *Store) UserByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User

	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).
		Error
	if err != nil {
		return nil, translate(err, "user", id)
	}

	return &u, nil
}

// EmailTaken reports whether a user other than exceptID owns email. Pass 0 as
// exceptID when creating.
func (s *Store) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var n int64

	err := s.db.WithContext(ctx).
		Model(model.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&n).
		Error

	return n > 0, translate(err, "user", nil)
}

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	return translate(s.db.WithContext(ctx).Create(u).Error, "user", nil)
}

// UpdateUserProfile overwrites the name, email and contact columns.
func (s *Store) UpdateUserProfile(ctx context.Context, u *model.User) error {
	r := s.db.WithContext(ctx).
		Model(u).
		Select("full_name", "email", "contact").
		Updates(u)

	return affected(r, "user", u.ID)
}

// DeleteUser fails with a conflict while listings still reference the user.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	r := s.db.WithContext(ctx).Delete(&model.User{}, id)
	if errors.Is(r.Error, gorm.ErrForeignKeyViolated) {
		return apperr.Conflict("user still has listings, remove them first")
	}

	return affected(r, "user", id)
}

func (s *Store) CountListingsBySeller(ctx context.Context, sellerID uint) (int64, error) {
	var sales, auctions int64

	err := s.db.WithContext(ctx).
		Model(model.Sale{}).
		Where("seller_id = ?", sellerID).
		Count(&sales).
		Error
	if err != nil {
		return 0, translate(err, "sale", nil)
	}

	err = s.db.WithContext(ctx).
		Model(model.Auction{}).
		Where("seller_id = ?", sellerID).
		Count(&auctions).
		Error
	if err != nil {
		return 0, translate(err, "auction", nil)
	}

	return sales + auctions, nil
}

func (s *Store) DeleteListingsBySeller(ctx context.Context, sellerID uint) error {
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Delete(&model.Sale{}).
		Error
	if err != nil {
		return translate(err, "sale", nil)
	}

	err = s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Delete(&model.Auction{}).
		Error

	return translate(err, "auction", nil)
}
