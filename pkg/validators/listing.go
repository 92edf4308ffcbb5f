package validators

import (
	"strings"

	"marketofmanycards/market-api/internal/apperr"
)

// SaleInput is the body of POST /users/:id/sales and PUT /sales/:id. The seller
// is taken from the path and can't be changed afterwards.
type SaleInput struct {
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	CardID      *uint    `json:"card_id"`
}

// AuctionInput is the body of POST /users/:id/auctions and PUT /auctions/:id.
type AuctionInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartingPrice *float64 `json:"startingPrice"`
	Duration      *int     `json:"duration"`
	CardID        *uint    `json:"card_id"`
}

// StatusInput is the body of the PATCH .../status endpoints.
type StatusInput struct {
	Status string `json:"status"`
}

func SaleValidator(s *SaleInput) error {
	verr := &apperr.ValidationError{}

	if s.Price == nil {
		verr.AddMissing("price")
	} else if *s.Price <= 0 {
		verr.AddInvalid("price", "must be greater than 0")
	}

	if strings.TrimSpace(s.Description) == "" {
		verr.AddMissing("description")
	}

	if s.Quantity == nil {
		verr.AddMissing("quantity")
	} else if *s.Quantity <= 0 {
		verr.AddInvalid("quantity", "must be greater than 0")
	}

	return verr.OrNil()
}

func AuctionValidator(a *AuctionInput) error {
	verr := &apperr.ValidationError{}

	if strings.TrimSpace(a.Title) == "" {
		verr.AddMissing("title")
	}

	if strings.TrimSpace(a.Description) == "" {
		verr.AddMissing("description")
	}

	if a.StartingPrice == nil {
		verr.AddMissing("startingPrice")
	} else if *a.StartingPrice <= 0 {
		verr.AddInvalid("startingPrice", "must be greater than 0")
	}

	if a.Duration == nil {
		verr.AddMissing("duration")
	} else if *a.Duration <= 0 {
		verr.AddInvalid("duration", "must be greater than 0")
	}

	return verr.OrNil()
}

// StatusValidator only checks presence, whether the value is a known status
// for the listing kind is decided by the service.
func StatusValidator(s *StatusInput) error {
	if strings.TrimSpace(s.Status) == "" {
		return &apperr.ValidationError{Missing: []string{"status"}}
	}
	return nil
}
