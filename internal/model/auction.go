package model

import "time"

type AuctionStatus string

const (
	AuctionOpen      AuctionStatus = "open"
	AuctionClosed    AuctionStatus = "closed"
	AuctionCancelled AuctionStatus = "cancelled"
)

func (s AuctionStatus) CanBecome(next AuctionStatus) bool {
	return s == AuctionOpen && (next == AuctionClosed || next == AuctionCancelled)
}

func (s AuctionStatus) Valid() bool {
	switch s {
	case AuctionOpen, AuctionClosed, AuctionCancelled:
		return true
	}
	return false
}

type Auction struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string        `gorm:"not null" json:"title"`
	Description   string        `gorm:"not null" json:"description"`
	StartingPrice float64       `gorm:"not null" json:"startingPrice"`
	Duration      int           `gorm:"not null" json:"duration"` // Hours the auction stays open
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	Status        AuctionStatus `gorm:"size:16;not null;default:open" json:"status"`
	SellerID      uint          `gorm:"not null;index" json:"seller_id"`
	CardID        *uint         `gorm:"index" json:"card_id"`

	Seller *User `gorm:"foreignKey:SellerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Card   *Card `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
