package model

import "time"

type Alert struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"size:32;not null" json:"type"`
	Location    string    `gorm:"size:128;not null" json:"location"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Severity    string    `gorm:"size:8;not null" json:"severity"`
	CreatedAt   time.Time `gorm:"index:idx_alert_created,sort:desc" json:"createdAt"`
}
