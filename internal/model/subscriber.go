package model

import "time"

type Subscriber struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	CreatedAt time.Time `json:"-"`
}
