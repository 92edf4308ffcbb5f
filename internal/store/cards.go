package store

import (
	"context"

	"marketofmanycards/market-api/internal/model"
)

// ListCards returns cards ordered by id. A limit of 0 or less returns
// everything from offset on.
func (s *Store) ListCards(ctx context.Context, offset, limit int) ([]model.Card, error) {
	cards := []model.Card{}

	q := s.db.WithContext(ctx).Order("id")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}

	err := q.Find(&cards).Error

	return cards, translate(err, "card", nil)
}

func (s *Store) CardByID(ctx context.Context, id uint) (*model.Card, error) {
	var c model.Card

	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).
		Error
	if err != nil {
		return nil, translate(err, "card", id)
	}

	return &c, nil
}

// CreateCard inserts c. Seeds keep their own ids, so after an insert with an
// explicit id on postgres the id sequence is moved past the highest id.
func (s *Store) CreateCard(ctx context.Context, c *model.Card) error {
	explicitID := c.ID != 0

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return translate(err, "card", nil)
	}

	if explicitID && s.db.Dialector.Name() == "postgres" {
		err := s.db.WithContext(ctx).
			Exec(`SELECT setval(pg_get_serial_sequence('cards', 'id'), (SELECT MAX(id) FROM cards))`).
			Error
		if err != nil {
			return translate(err, "card", c.ID)
		}
	}

	return nil
}

func (s *Store) SaveCard(ctx context.Context, c *model.Card) error {
	return translate(s.db.WithContext(ctx).Save(c).Error, "card", c.ID)
}

func (s *Store) DeleteCard(ctx context.Context, id uint) error {
	return affected(s.db.WithContext(ctx).Delete(&model.Card{}, id), "card", id)
}

// ClearCardReferences detaches every listing that points at cardID.
func (s *Store) ClearCardReferences(ctx context.Context, cardID uint) error {
	err := s.db.WithContext(ctx).
		Model(model.Sale{}).
		Where("card_id = ?", cardID).
		Update("card_id", nil).
		Error
	if err != nil {
		return translate(err, "sale", nil)
	}

	err = s.db.WithContext(ctx).
		Model(model.Auction{}).
		Where("card_id = ?", cardID).
		Update("card_id", nil).
		Error

	return translate(err, "auction", nil)
}
