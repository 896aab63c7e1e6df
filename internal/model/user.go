package model

import "time"

const (
	RoleVictim    = "victim"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Location  string    `gorm:"size:128" json:"location,omitempty"`
	Role      string    `gorm:"size:16;not null;default:victim" json:"role"`
	Coins     int64     `gorm:"not null;default:0" json:"coins"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
