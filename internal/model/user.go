// Package model defines database models
package model

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Contact      string    `json:"contact"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	PasswordHash *string   `json:"-"` // Set by the auth service, never by this API
	LockedOut    bool      `gorm:"default:false" json:"locked_out"`
}
