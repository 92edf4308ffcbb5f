package validators

import (
	"strings"

	"marketofmanycards/market-api/internal/apperr"
)

// CardInput is a full card payload, used by POST /cards, POST /cards/bulk and
// the catalog seed file. ID is optional, the store assigns one when omitted.
type CardInput struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	SetID        string  `json:"set_id"`
	ManaCost     string  `json:"mana_cost"`
	CMC          float64 `json:"cmc"`
	Type         string  `json:"type"`
	Text         string  `json:"text"`
	FlavorText   string  `json:"flavor_text"`
	Number       string  `json:"number"`
	Power        *string `json:"power"`
	Toughness    *string `json:"toughness"`
	Loyalty      *string `json:"loyalty"`
	MultiverseID *int64  `json:"multiverse_ID"`
}

// CardPatch is the body of PUT /cards/:id. Only the fields that are present
// are replaced, everything else keeps its stored value.
type CardPatch struct {
	Name         *string  `json:"name"`
	SetID        *string  `json:"set_id"`
	ManaCost     *string  `json:"mana_cost"`
	CMC          *float64 `json:"cmc"`
	Type         *string  `json:"type"`
	Text         *string  `json:"text"`
	FlavorText   *string  `json:"flavor_text"`
	Number       *string  `json:"number"`
	Power        *string  `json:"power"`
	Toughness    *string  `json:"toughness"`
	Loyalty      *string  `json:"loyalty"`
	MultiverseID *int64   `json:"multiverse_ID"`
}

func CardValidator(c *CardInput) error {
	verr := &apperr.ValidationError{}

	if strings.TrimSpace(c.Name) == "" {
		verr.AddMissing("name")
	}

	if c.CMC < 0 {
		verr.AddInvalid("cmc", "can't be negative")
	}

	return verr.OrNil()
}

func CardPatchValidator(p *CardPatch) error {
	verr := &apperr.ValidationError{}

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		verr.AddInvalid("name", "can't be empty")
	}

	if p.CMC != nil && *p.CMC < 0 {
		verr.AddInvalid("cmc", "can't be negative")
	}

	return verr.OrNil()
}
