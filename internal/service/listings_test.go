package service

import (
	"context"
	"errors"
	"testing"

	"marketofmanycards/market-api/internal/apperr"
	"marketofmanycards/market-api/internal/model"
	"marketofmanycards/market-api/internal/store"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingFixture struct {
	repo     *store.Store
	listings *ListingService
	notifier *fakeNotifier
	seller   *model.User
}

func newListingFixture(t *testing.T) *listingFixture {
	t.Helper()

	repo := newTestRepo(t)
	n := &fakeNotifier{}

	seller, err := NewUserService(repo, DeleteCascade).Create(context.Background(), santiago())
	require.NoError(t, err)

	return &listingFixture{
		repo:     repo,
		listings: NewListingService(repo, n),
		notifier: n,
		seller:   seller,
	}
}

func saleInput() *validators.SaleInput {
	return &validators.SaleInput{Price: ptr(10.0), Description: "card", Quantity: ptr(1)}
}

func auctionInput() *validators.AuctionInput {
	return &validators.AuctionInput{Title: "Black Lotus", Description: "mint", StartingPrice: ptr(100.0), Duration: ptr(24)}
}

func TestCreateSale_Defaults(t *testing.T) {
	f := newListingFixture(t)

	sale, err := f.listings.CreateSale(context.Background(), f.seller.ID, saleInput())
	require.NoError(t, err)

	assert.NotZero(t, sale.ID)
	assert.Equal(t, model.SalePending, sale.Status)
	assert.Equal(t, f.seller.ID, sale.SellerID)
	assert.False(t, sale.CreatedAt.IsZero())
	assert.Nil(t, sale.CardID)

	assert.Equal(t, []sentNotification{{email: "s@x.com", kind: "sale", title: "card", id: sale.ID}}, f.notifier.Sent())
}

func TestCreateSale_UnknownSeller(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	_, err := f.listings.CreateSale(ctx, f.seller.ID+1, saleInput())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	n, err := f.repo.CountListingsBySeller(ctx, f.seller.ID+1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, f.notifier.Sent())
}

func TestCreateSale_NonPositive(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	in := saleInput()
	in.Price = ptr(0.0)
	_, err := f.listings.CreateSale(ctx, f.seller.ID, in)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	in = saleInput()
	in.Quantity = ptr(-1)
	_, err = f.listings.CreateSale(ctx, f.seller.ID, in)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	sales, err := f.listings.SalesForUser(ctx, f.seller.ID)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCreateSale_ValidationBeforeSellerLookup(t *testing.T) {
	f := newListingFixture(t)

	_, err := f.listings.CreateSale(context.Background(), 999, &validators.SaleInput{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSalesForUser_RoundTrip(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	sale, err := f.listings.CreateSale(ctx, f.seller.ID, saleInput())
	require.NoError(t, err)

	sales, err := f.listings.SalesForUser(ctx, f.seller.ID)
	require.NoError(t, err)

	count := 0
	for _, s := range sales {
		if s.ID == sale.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)

	_, err = f.listings.SalesForUser(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateSale_CardReference(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	card := &model.Card{Name: "Shock"}
	require.NoError(t, f.repo.CreateCard(ctx, card))

	in := saleInput()
	in.CardID = &card.ID
	sale, err := f.listings.CreateSale(ctx, f.seller.ID, in)
	require.NoError(t, err)
	require.NotNil(t, sale.CardID)
	assert.Equal(t, card.ID, *sale.CardID)

	in.CardID = ptr(card.ID + 100)
	_, err = f.listings.CreateSale(ctx, f.seller.ID, in)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateSale_OnlyWhilePending(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	sale, err := f.listings.CreateSale(ctx, f.seller.ID, saleInput())
	require.NoError(t, err)

	updated, err := f.listings.UpdateSale(ctx, sale.ID, &validators.SaleInput{Price: ptr(12.5), Description: "foil", Quantity: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "foil", updated.Description)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, f.seller.ID, updated.SellerID)

	_, err = f.listings.UpdateSale(ctx, sale.ID, &validators.SaleInput{Price: ptr(12.5)})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.listings.SetSaleStatus(ctx, sale.ID, &validators.StatusInput{Status: "completed"})
	require.NoError(t, err)

	_, err = f.listings.UpdateSale(ctx, sale.ID, saleInput())
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.listings.UpdateSale(ctx, 999, saleInput())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSetSaleStatus(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	sale, err := f.listings.CreateSale(ctx, f.seller.ID, saleInput())
	require.NoError(t, err)

	_, err = f.listings.SetSaleStatus(ctx, sale.ID, &validators.StatusInput{Status: "sold"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.listings.SetSaleStatus(ctx, sale.ID, &validators.StatusInput{Status: "pending"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	got, err := f.listings.SetSaleStatus(ctx, sale.ID, &validators.StatusInput{Status: "Cancelled"})
	require.NoError(t, err)
	assert.Equal(t, model.SaleCancelled, got.Status)

	_, err = f.listings.SetSaleStatus(ctx, sale.ID, &validators.StatusInput{Status: "completed"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	stored, err := f.listings.GetSale(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SaleCancelled, stored.Status)
}

func TestDeleteSale(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	sale, err := f.listings.CreateSale(ctx, f.seller.ID, saleInput())
	require.NoError(t, err)

	require.NoError(t, f.listings.DeleteSale(ctx, sale.ID))
	assert.ErrorIs(t, f.listings.DeleteSale(ctx, sale.ID), apperr.ErrNotFound)
}

func TestAuctionLifecycle(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	a, err := f.listings.CreateAuction(ctx, f.seller.ID, auctionInput())
	require.NoError(t, err)
	assert.Equal(t, model.AuctionOpen, a.Status)
	assert.Equal(t, 24, a.Duration)

	auctions, err := f.listings.AuctionsForUser(ctx, f.seller.ID)
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	assert.Equal(t, a.ID, auctions[0].ID)

	in := auctionInput()
	in.Title = "Mox Pearl"
	updated, err := f.listings.UpdateAuction(ctx, a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Mox Pearl", updated.Title)

	closed, err := f.listings.SetAuctionStatus(ctx, a.ID, &validators.StatusInput{Status: "closed"})
	require.NoError(t, err)
	assert.Equal(t, model.AuctionClosed, closed.Status)

	_, err = f.listings.UpdateAuction(ctx, a.ID, auctionInput())
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.listings.SetAuctionStatus(ctx, a.ID, &validators.StatusInput{Status: "cancelled"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	require.NoError(t, f.listings.DeleteAuction(ctx, a.ID))

	_, err = f.listings.GetAuction(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateAuction_Failures(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()

	_, err := f.listings.CreateAuction(ctx, f.seller.ID, &validators.AuctionInput{Title: "x"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.listings.CreateAuction(ctx, 999, auctionInput())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.listings.AuctionsForUser(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestNotifierFailureKeepsListing(t *testing.T) {
	f := newListingFixture(t)
	ctx := context.Background()
	f.notifier.err = errors.New("smtp down")

	a, err := f.listings.CreateAuction(ctx, f.seller.ID, auctionInput())
	require.NoError(t, err)

	_, err = f.listings.GetAuction(ctx, a.ID)
	assert.NoError(t, err)
	assert.Len(t, f.notifier.Sent(), 1)
}
