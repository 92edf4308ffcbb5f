package store

import (
	"context"
	"errors"

	"marketofmanycards/market-api/internal/apperr"
	"marketofmanycards/market-api/internal/model"

	"gorm.io/gorm"
)

// translateRefs reports a listing write whose seller or card vanished after it
// was resolved as not found.
func translateRefs(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperr.NotFound("seller or card", nil)
	}
	return translate(err, entity, id)
}

func (s *Store) SaleByID(ctx context.Context, id uint) (*model.Sale, error) {
	var sale model.Sale

	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sale).
		Error
	if err != nil {
		return nil, translate(err, "sale", id)
	}

	return &sale, nil
}

// SalesBySeller returns the seller's sales in insertion order.
func (s *Store) SalesBySeller(ctx context.Context, sellerID uint) ([]model.Sale, error) {
	sales := []model.Sale{}

	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id").
		Find(&sales).
		Error

	return sales, translate(err, "sale", nil)
}

func (s *Store) CreateSale(ctx context.Context, sale *model.Sale) error {
	return translateRefs(s.db.WithContext(ctx).Create(sale).Error, "sale", nil)
}

func (s *Store) SaveSale(ctx context.Context, sale *model.Sale) error {
	return translateRefs(s.db.WithContext(ctx).Save(sale).Error, "sale", sale.ID)
}

func (s *Store) DeleteSale(ctx context.Context, id uint) error {
	return affected(s.db.WithContext(ctx).Delete(&model.Sale{}, id), "sale", id)
}

func (s *Store) AuctionByID(ctx context.Context, id uint) (*model.Auction, error) {
	var a model.Auction

	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).
		Error
	if err != nil {
		return nil, translate(err, "auction", id)
	}

	return &a, nil
}

func (s *Store) AuctionsBySeller(ctx context.Context, sellerID uint) ([]model.Auction, error) {
	auctions := []model.Auction{}

	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id").
		Find(&auctions).
		Error

	return auctions, translate(err, "auction", nil)
}

func (s *Store) CreateAuction(ctx context.Context, a *model.Auction) error {
	return translateRefs(s.db.WithContext(ctx).Create(a).Error, "auction", nil)
}

func (s *Store) SaveAuction(ctx context.Context, a *model.Auction) error {
	return translateRefs(s.db.WithContext(ctx).Save(a).Error, "auction", a.ID)
}

func (s *Store) DeleteAuction(ctx context.Context, id uint) error {
	return affected(s.db.WithContext(ctx).Delete(&model.Auction{}, id), "auction", id)
}
