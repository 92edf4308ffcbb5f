// Package service holds the business rules of the marketplace: who may list
// what, and which references must exist before anything is written.
package service

import (
	"context"
	"errors"

	"marketofmanycards/market-api/internal/apperr"
	"marketofmanycards/market-api/internal/model"
	"marketofmanycards/market-api/internal/store"
)

var errEmailInUse = apperr.Conflict("this email is already registered, please use a different email")

// ResolveSeller loads the user that owns (or is about to own) a listing.
func ResolveSeller(ctx context.Context, repo store.Repository, sellerID uint) (*model.User, error) {
	u, err := repo.UserByID(ctx, sellerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return u, nil
}

// ResolveCard checks that an optional card reference points at a catalog
// entry. A nil id is always fine.
func ResolveCard(ctx context.Context, repo store.Repository, cardID *uint) error {
	if cardID == nil {
		return nil
	}

	if _, err := repo.CardByID(ctx, *cardID); err != nil {
		return apperr.Internal(err)
	}

	return nil
}

// CheckEmailUnique rejects an email that belongs to a user other than
// exceptID. This is only an early exit, the unique index on users.email is
// what actually guarantees uniqueness, see uniqueEmail.
func CheckEmailUnique(ctx context.Context, repo store.Repository, email string, exceptID uint) error {
	taken, err := repo.EmailTaken(ctx, email, exceptID)
	if err != nil {
		return apperr.Internal(err)
	}

	if taken {
		return errEmailInUse
	}

	return nil
}

// uniqueEmail maps a unique index violation raised while writing a user to the
// same conflict CheckEmailUnique returns, so a lost race looks identical to an
// early rejection.
func uniqueEmail(err error) error {
	if errors.Is(err, apperr.ErrConflict) {
		return errEmailInUse
	}
	return apperr.Internal(err)
}
