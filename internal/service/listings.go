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

// ListingService creates and maintains sales and auctions. Every write runs in
// a transaction together with the seller and card lookups it depends on, so a
// listing is never stored against a user that failed to resolve.
type ListingService struct {
	repo     store.Repository
	notifier Notifier
	now      func() time.Time
}

// NewListingService builds the service. notifier may be nil.
func NewListingService(repo store.Repository, notifier Notifier) *ListingService {
	return &ListingService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *ListingService) CreateSale(ctx context.Context, sellerID uint, in *validators.SaleInput) (*model.Sale, error) {
	if err := validators.SaleValidator(in); err != nil {
		return nil, err
	}

	sale := &model.Sale{
		Price:       *in.Price,
		Description: strings.TrimSpace(in.Description),
		Quantity:    *in.Quantity,
		CreatedAt:   s.now(),
		Status:      model.SalePending,
		SellerID:    sellerID,
		CardID:      in.CardID,
	}

	var seller *model.User

	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		var err error

		seller, err = ResolveSeller(ctx, tx, sellerID)
		if err != nil {
			return err
		}

		if err := ResolveCard(ctx, tx, in.CardID); err != nil {
			return err
		}

		return tx.CreateSale(ctx, sale)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.notify(seller, "sale", sale.Description, sale.ID)
	return sale, nil
}

// SalesForUser returns every sale the user listed, oldest first.
func (s *ListingService) SalesForUser(ctx context.Context, userID uint) ([]model.Sale, error) {
	if _, err := ResolveSeller(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	sales, err := s.repo.SalesBySeller(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return sales, nil
}

func (s *ListingService) GetSale(ctx context.Context, id uint) (*model.Sale, error) {
	sale, err := s.repo.SaleByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return sale, nil
}

// UpdateSale replaces price, description, quantity and the card reference of a
// pending sale. The seller never changes.
func (s *ListingService) UpdateSale(ctx context.Context, id uint, in *validators.SaleInput) (*model.Sale, error) {
	if err := validators.SaleValidator(in); err != nil {
		return nil, err
	}

	var sale *model.Sale

	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		var err error

		sale, err = tx.SaleByID(ctx, id)
		if err != nil {
			return err
		}

		if sale.Status != model.SalePending {
			return apperr.Conflict(fmt.Sprintf("sale is %s and can no longer be edited", sale.Status))
		}

		if err := ResolveCard(ctx, tx, in.CardID); err != nil {
			return err
		}

		sale.Price = *in.Price
		sale.Description = strings.TrimSpace(in.Description)
		sale.Quantity = *in.Quantity
		sale.CardID = in.CardID

		return tx.SaveSale(ctx, sale)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return sale, nil
}

// SetSaleStatus moves a pending sale to completed or cancelled.
func (s *ListingService) SetSaleStatus(ctx context.Context, id uint, in *validators.StatusInput) (*model.Sale, error) {
	if err := validators.StatusValidator(in); err != nil {
		return nil, err
	}

	next := model.SaleStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if !next.Valid() {
		verr := &apperr.ValidationError{}
		verr.AddInvalid("status", "must be one of pending, completed, cancelled")
		return nil, verr
	}

	var sale *model.Sale

	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		var err error

		sale, err = tx.SaleByID(ctx, id)
		if err != nil {
			return err
		}

		if !sale.Status.CanBecome(next) {
			return apperr.Conflict(fmt.Sprintf("sale can't go from %s to %s", sale.Status, next))
		}

		sale.Status = next
		return tx.SaveSale(ctx, sale)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return sale, nil
}

func (s *ListingService) DeleteSale(ctx context.Context, id uint) error {
	return apperr.Internal(s.repo.DeleteSale(ctx, id))
}

func (s *ListingService) CreateAuction(ctx context.Context, sellerID uint, in *validators.AuctionInput) (*model.Auction, error) {
	if err := validators.AuctionValidator(in); err != nil {
		return nil, err
	}

	auction := &model.Auction{
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		StartingPrice: *in.StartingPrice,
		Duration:      *in.Duration,
		CreatedAt:     s.now(),
		Status:        model.AuctionOpen,
		SellerID:      sellerID,
		CardID:        in.CardID,
	}

	var seller *model.User

	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		var err error

		seller, err = ResolveSeller(ctx, tx, sellerID)
		if err != nil {
			return err
		}

		if err := ResolveCard(ctx, tx, in.CardID); err != nil {
			return err
		}

		return tx.CreateAuction(ctx, auction)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.notify(seller, "auction", auction.Title, auction.ID)
	return auction, nil
}

func (s *ListingService) AuctionsForUser(ctx context.Context, userID uint) ([]model.Auction, error) {
	if _, err := ResolveSeller(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	auctions, err := s.repo.AuctionsBySeller(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return auctions, nil
}

func (s *ListingService) GetAuction(ctx context.Context, id uint) (*model.Auction, error) {
	a, err := s.repo.AuctionByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return a, nil
}

// UpdateAuction replaces every editable field of an open auction.
func (s *ListingService) UpdateAuction(ctx context.Context, id uint, in *validators.AuctionInput) (*model.Auction, error) {
	if err := validators.AuctionValidator(in); err != nil {
		return nil, err
	}

	var a *model.Auction

	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		var err error

		a, err = tx.AuctionByID(ctx, id)
		if err != nil {
			return err
		}

		if a.Status != model.AuctionOpen {
			return apperr.Conflict(fmt.Sprintf("auction is %s and can no longer be edited", a.Status))
		}

		if err := ResolveCard(ctx, tx, in.CardID); err != nil {
			return err
		}

		a.Title = strings.TrimSpace(in.Title)
		a.Description = strings.TrimSpace(in.Description)
		a.StartingPrice = *in.StartingPrice
		a.Duration = *in.Duration
		a.CardID = in.CardID

		return tx.SaveAuction(ctx, a)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return a, nil
}

// SetAuctionStatus closes or cancels an open auction. Nothing closes auctions
// on their own, the seller does it.
func (s *ListingService) SetAuctionStatus(ctx context.Context, id uint, in *validators.StatusInput) (*model.Auction, error) {
	if err := validators.StatusValidator(in); err != nil {
		return nil, err
	}

	next := model.AuctionStatus(strings.ToLower(strings.TrimSpace(in.Status)))
	if !next.Valid() {
		verr := &apperr.ValidationError{}
		verr.AddInvalid("status", "must be one of open, closed, cancelled")
		return nil, verr
	}

	var a *model.Auction

	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		var err error

		a, err = tx.AuctionByID(ctx, id)
		if err != nil {
			return err
		}

		if !a.Status.CanBecome(next) {
			return apperr.Conflict(fmt.Sprintf("auction can't go from %s to %s", a.Status, next))
		}

		a.Status = next
		return tx.SaveAuction(ctx, a)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return a, nil
}

func (s *ListingService) DeleteAuction(ctx context.Context, id uint) error {
	return apperr.Internal(s.repo.DeleteAuction(ctx, id))
}

// notify tells the seller about a new listing. Failures are logged, the
// listing is already stored by then.
func (s *ListingService) notify(seller *model.User, kind, title string, id uint) {
	if s.notifier == nil || seller == nil {
		return
	}

	if err := s.notifier.ListingCreated(seller, kind, title, id); err != nil {
		zap.L().Error("Failed to send listing notification",
			zap.Uint("userID", seller.ID),
			zap.String("kind", kind),
			zap.Uint("listingID", id),
			zap.Error(err))
	}
}
