package store

import (
	"context"
	"errors"
	"testing"

	"marketofmanycards/market-api/db"
	"marketofmanycards/market-api/internal/apperr"
	"marketofmanycards/market-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return New(gdb)
}

func seedUser(t *testing.T, s *Store, email string) *model.User {
	t.Helper()

	u := &model.User{FullName: "Santiago", Email: email, Contact: "123"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	require.NotZero(t, u.ID)

	return u
}

func TestUsers_CreateAndFetch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "s@x.com")

	got, err := s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "s@x.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero())

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = s.UserByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUsers_DuplicateEmailIsConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "dup@x.com")

	err := s.CreateUser(ctx, &model.User{FullName: "Other", Email: "dup@x.com", Contact: "1"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUsers_EmailTaken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "s@x.com")

	taken, err := s.EmailTaken(ctx, "s@x.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = s.EmailTaken(ctx, "s@x.com", u.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = s.EmailTaken(ctx, "free@x.com", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUsers_UpdateProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "s@x.com")
	u.FullName = "Santi"
	u.Email = "santi@x.com"
	u.Contact = "456"
	require.NoError(t, s.UpdateUserProfile(ctx, u))

	got, err := s.UserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Santi", got.FullName)
	assert.Equal(t, "santi@x.com", got.Email)
	assert.Equal(t, "456", got.Contact)

	err = s.UpdateUserProfile(ctx, &model.User{ID: 999, FullName: "x", Email: "x@x.com", Contact: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUsers_DeleteMissing(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.DeleteUser(context.Background(), 42), apperr.ErrNotFound)
}

func TestListings_BySellerAndCascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seller := seedUser(t, s, "seller@x.com")
	other := seedUser(t, s, "other@x.com")

	for range 2 {
		require.NoError(t, s.CreateSale(ctx, &model.Sale{Price: 1, Description: "d", Quantity: 1, Status: model.SalePending, SellerID: seller.ID}))
	}
	require.NoError(t, s.CreateAuction(ctx, &model.Auction{Title: "t", Description: "d", StartingPrice: 1, Duration: 1, Status: model.AuctionOpen, SellerID: seller.ID}))
	require.NoError(t, s.CreateSale(ctx, &model.Sale{Price: 1, Description: "d", Quantity: 1, Status: model.SalePending, SellerID: other.ID}))

	sales, err := s.SalesBySeller(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Less(t, sales[0].ID, sales[1].ID)

	n, err := s.CountListingsBySeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	require.NoError(t, s.DeleteListingsBySeller(ctx, seller.ID))

	n, err = s.CountListingsBySeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.CountListingsBySeller(ctx, other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestListings_SellerMustExist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.CreateSale(ctx, &model.Sale{Price: 1, Description: "d", Quantity: 1, Status: model.SalePending, SellerID: 424242})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = s.CreateAuction(ctx, &model.Auction{Title: "t", Description: "d", StartingPrice: 1, Duration: 1, Status: model.AuctionOpen, SellerID: 424242})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	missing := uint(77)
	seller := seedUser(t, s, "s@x.com")
	sale := &model.Sale{Price: 1, Description: "d", Quantity: 1, Status: model.SalePending, SellerID: seller.ID}
	require.NoError(t, s.CreateSale(ctx, sale))

	sale.CardID = &missing
	assert.ErrorIs(t, s.SaveSale(ctx, sale), apperr.ErrNotFound)

	sales, err := s.SalesBySeller(ctx, seller.ID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Nil(t, sales[0].CardID)
}

func TestUsers_DeleteWithListingsIsConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seller := seedUser(t, s, "s@x.com")
	require.NoError(t, s.CreateSale(ctx, &model.Sale{Price: 1, Description: "d", Quantity: 1, Status: model.SalePending, SellerID: seller.ID}))

	assert.ErrorIs(t, s.DeleteUser(ctx, seller.ID), apperr.ErrConflict)

	_, err := s.UserByID(ctx, seller.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteListingsBySeller(ctx, seller.ID))
	assert.NoError(t, s.DeleteUser(ctx, seller.ID))
}

func TestCards_DeleteDetachesListings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seller := seedUser(t, s, "s@x.com")
	card := &model.Card{Name: "Shock"}
	require.NoError(t, s.CreateCard(ctx, card))

	sale := &model.Sale{Price: 1, Description: "d", Quantity: 1, Status: model.SalePending, SellerID: seller.ID, CardID: &card.ID}
	require.NoError(t, s.CreateSale(ctx, sale))

	require.NoError(t, s.DeleteCard(ctx, card.ID))

	got, err := s.SaleByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CardID)
}

func TestListings_MissingAreNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaleByID(ctx, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.AuctionByID(ctx, 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, s.DeleteSale(ctx, 1), apperr.ErrNotFound)
	assert.ErrorIs(t, s.DeleteAuction(ctx, 1), apperr.ErrNotFound)
}

func TestCards_PaginationAndExplicitID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Shock", "Opt", "Duress"} {
		require.NoError(t, s.CreateCard(ctx, &model.Card{Name: name}))
	}

	all, err := s.ListCards(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := s.ListCards(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Duress", page[0].Name)

	err = s.CreateCard(ctx, &model.Card{ID: all[0].ID, Name: "Copy"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	assert.ErrorIs(t, s.DeleteCard(ctx, 999), apperr.ErrNotFound)
}

func TestCards_GeneratedIDFollowsExplicit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateCard(ctx, &model.Card{ID: 10, Name: "Seeded"}))

	c := &model.Card{Name: "Fresh"}
	require.NoError(t, s.CreateCard(ctx, c))
	assert.Greater(t, c.ID, uint(10))
}

func TestCards_ClearReferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seller := seedUser(t, s, "s@x.com")
	card := &model.Card{Name: "Shock"}
	require.NoError(t, s.CreateCard(ctx, card))

	sale := &model.Sale{Price: 1, Description: "d", Quantity: 1, Status: model.SalePending, SellerID: seller.ID, CardID: &card.ID}
	require.NoError(t, s.CreateSale(ctx, sale))
	auction := &model.Auction{Title: "t", Description: "d", StartingPrice: 1, Duration: 1, Status: model.AuctionOpen, SellerID: seller.ID, CardID: &card.ID}
	require.NoError(t, s.CreateAuction(ctx, auction))

	require.NoError(t, s.ClearCardReferences(ctx, card.ID))

	gotSale, err := s.SaleByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, gotSale.CardID)

	gotAuction, err := s.AuctionByID(ctx, auction.ID)
	require.NoError(t, err)
	assert.Nil(t, gotAuction.CardID)
}

func TestTransaction_RollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateUser(ctx, &model.User{FullName: "a", Email: "a@x.com", Contact: "1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestPing(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.Ping(context.Background()))
}
