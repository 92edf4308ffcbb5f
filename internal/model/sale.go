package model

import "time"

type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleCompleted SaleStatus = "completed"
	SaleCancelled SaleStatus = "cancelled"
)

// CanBecome reports whether a sale in status s may move to next. Only pending
// sales change status; completed and cancelled are terminal.
func (s SaleStatus) CanBecome(next SaleStatus) bool {
	return s == SalePending && (next == SaleCompleted || next == SaleCancelled)
}

func (s SaleStatus) Valid() bool {
	switch s {
	case SalePending, SaleCompleted, SaleCancelled:
		return true
	}
	return false
}

type Sale struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Price       float64    `gorm:"not null" json:"price"`
	Description string     `gorm:"not null" json:"description"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	Status      SaleStatus `gorm:"size:16;not null;default:pending" json:"status"`
	SellerID    uint       `gorm:"not null;index" json:"seller_id"`
	CardID      *uint      `gorm:"index" json:"card_id"`

	// Seller and Card are never preloaded, they declare the foreign keys. A
	// user with listings can't be deleted and deleting a card detaches it.
	Seller *User `gorm:"foreignKey:SellerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Card   *Card `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
