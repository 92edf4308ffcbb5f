package service

import (
	"context"
	"strings"

	"marketofmanycards/market-api/internal/apperr"
	"marketofmanycards/market-api/internal/model"
	"marketofmanycards/market-api/internal/store"
	"marketofmanycards/market-api/pkg/validators"

	"go.uber.org/zap"
)

const MaxPageSize = 250

// CatalogService is plain CRUD over cards. Cards don't depend on anything, but
// listings may point at them.
type CatalogService struct {
	repo store.Repository
}

func NewCatalogService(repo store.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

// BulkFailure reports why the card at Index of a bulk payload wasn't created.
type BulkFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BulkResult struct {
	Created []model.Card  `json:"created"`
	Failed  []BulkFailure `json:"failed"`
}

// List returns a page of the catalog. Pages start at 1. A limit of 0 returns
// the whole catalog and page is ignored.
func (s *CatalogService) List(ctx context.Context, page, limit int) ([]model.Card, error) {
	verr := &apperr.ValidationError{}

	if limit > 0 && page < 1 {
		verr.AddInvalid("page", "must be 1 or greater")
	}

	if limit < 0 || limit > MaxPageSize {
		verr.AddInvalid("limit", "must be between 1 and 250")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	offset := 0
	if limit > 0 {
		offset = (page - 1) * limit
	}

	cards, err := s.repo.ListCards(ctx, offset, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return cards, nil
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*model.Card, error) {
	c, err := s.repo.CardByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return c, nil
}

func (s *CatalogService) Create(ctx context.Context, in *validators.CardInput) (*model.Card, error) {
	if err := validators.CardValidator(in); err != nil {
		return nil, err
	}

	c := cardFromInput(in)

	if err := s.repo.CreateCard(ctx, c); err != nil {
		return nil, apperr.Internal(err)
	}

	return c, nil
}

// BulkCreate stores each card on its own. A failing item doesn't undo the ones
// before it, the result lists what was created and what failed.
func (s *CatalogService) BulkCreate(ctx context.Context, in []validators.CardInput) *BulkResult {
	res := &BulkResult{
		Created: []model.Card{},
		Failed:  []BulkFailure{},
	}

	for i := range in {
		c, err := s.Create(ctx, &in[i])
		if err != nil {
			if apperr.Status(err) >= 500 {
				zap.L().Error("Failed to create card in bulk", zap.Int("index", i), zap.Error(err))
			}

			res.Failed = append(res.Failed, BulkFailure{Index: i, Error: apperr.Message(err)})
			continue
		}

		res.Created = append(res.Created, *c)
	}

	return res
}

// Update replaces only the fields present in the patch.
func (s *CatalogService) Update(ctx context.Context, id uint, p *validators.CardPatch) (*model.Card, error) {
	if err := validators.CardPatchValidator(p); err != nil {
		return nil, err
	}

	var c *model.Card

	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		var err error

		c, err = tx.CardByID(ctx, id)
		if err != nil {
			return err
		}

		applyCardPatch(c, p)
		return tx.SaveCard(ctx, c)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return c, nil
}

// Delete removes a card and detaches the listings that referenced it.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Transaction(ctx, func(tx store.Repository) error {
		if err := tx.ClearCardReferences(ctx, id); err != nil {
			return err
		}

		return tx.DeleteCard(ctx, id)
	})

	return apperr.Internal(err)
}

func cardFromInput(in *validators.CardInput) *model.Card {
	return &model.Card{
		ID:           in.ID,
		Name:         strings.TrimSpace(in.Name),
		SetID:        in.SetID,
		ManaCost:     in.ManaCost,
		CMC:          in.CMC,
		Type:         in.Type,
		Text:         in.Text,
		FlavorText:   in.FlavorText,
		Number:       in.Number,
		Power:        in.Power,
		Toughness:    in.Toughness,
		Loyalty:      in.Loyalty,
		MultiverseID: in.MultiverseID,
	}
}

func applyCardPatch(c *model.Card, p *validators.CardPatch) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.SetID != nil {
		c.SetID = *p.SetID
	}
	if p.ManaCost != nil {
		c.ManaCost = *p.ManaCost
	}
	if p.CMC != nil {
		c.CMC = *p.CMC
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.FlavorText != nil {
		c.FlavorText = *p.FlavorText
	}
	if p.Number != nil {
		c.Number = *p.Number
	}
	if p.Power != nil {
		c.Power = p.Power
	}
	if p.Toughness != nil {
		c.Toughness = p.Toughness
	}
	if p.Loyalty != nil {
		c.Loyalty = p.Loyalty
	}
	if p.MultiverseID != nil {
		c.MultiverseID = p.MultiverseID
	}
}
