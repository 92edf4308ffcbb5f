package model

// Card is a catalog entry. Power, toughness and loyalty are nil for cards
// that don't have them.
type Card struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null;index" json:"name"`
	SetID        string  `json:"set_id"`
	ManaCost     string  `json:"mana_cost"`
	CMC          float64 `gorm:"column:cmc" json:"cmc"`
	Type         string  `json:"type"`
	Text         string  `json:"text"`
	FlavorText   string  `json:"flavor_text"`
	Number       string  `json:"number"`
	Power        *string `json:"power"`
	Toughness    *string `json:"toughness"`
	Loyalty      *string `json:"loyalty"`
	MultiverseID *int64  `gorm:"column:multiverse_id" json:"multiverse_ID"`
}
