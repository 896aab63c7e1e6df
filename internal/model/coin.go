package model

import "time"

// CoinBalance holds rewards earned under an email address that has no
// registered account yet. At signup the balance is folded into the User
// row and this record is removed.
type CoinBalance struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Coins     int64     `gorm:"not null;default:0" json:"coins"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
