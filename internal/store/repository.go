package store

import (
	"context"

	"marketofmanycards/market-api/internal/model"
)

// Repository is what the services need from persistence. *Store implements it
// for both the root connection and transactions.
type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error
	Ping(ctx context.Context) error

	ListUsers(ctx context.Context) ([]model.User, error)
	UserByID(ctx context.Context, id uint) (*model.User, error)
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	CreateUser(ctx context.Context, u *model.User) error
	UpdateUserProfile(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id uint) error

	CountListingsBySeller(ctx context.Context, sellerID uint) (int64, error)
	DeleteListingsBySeller(ctx context.Context, sellerID uint) error

	ListCards(ctx context.Context, offset, limit int) ([]model.Card, error)
	CardByID(ctx context.Context, id uint) (*model.Card, error)
	CreateCard(ctx context.Context, c *model.Card) error
	SaveCard(ctx context.Context, c *model.Card) error
	DeleteCard(ctx context.Context, id uint) error
	ClearCardReferences(ctx context.Context, cardID uint) error

	SaleByID(ctx context.Context, id uint) (*model.Sale, error)
	SalesBySeller(ctx context.Context, sellerID uint) ([]model.Sale, error)
	CreateSale(ctx context.Context, s *model.Sale) error
	SaveSale(ctx context.Context, s *model.Sale) error
	DeleteSale(ctx context.Context, id uint) error

	AuctionByID(ctx context.Context, id uint) (*model.Auction, error)
	AuctionsBySeller(ctx context.Context, sellerID uint) ([]model.Auction, error)
	CreateAuction(ctx context.Context, a *model.Auction) error
	SaveAuction(ctx context.Context, a *model.Auction) error
	DeleteAuction(ctx context.Context, id uint) error
}
