package model

import "time"

// ResourceRequest is a victim's submitted need for aid.
type ResourceRequest struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Phone        string    `gorm:"size:10;not null" json:"phone"`
	Location     string    `gorm:"size:128;not null" json:"location"`
	ResourceType string    `gorm:"size:16;not null" json:"resourceType"`
	NPeople      string    `gorm:"size:8;not null" json:"n_people"`
	Urgency      string    `gorm:"size:8;not null" json:"urgency"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	VolunteerID  *uint64   `gorm:"index" json:"volunteerId,omitempty"` // informational reference, not enforced
	CreatedAt    time.Time `gorm:"index:idx_request_created,sort:desc" json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

// ResourceOffer is a volunteer's submitted availability to provide aid.
type ResourceOffer struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Phone        string    `gorm:"size:16;not null" json:"phone"`
	Email        string    `gorm:"size:128;not null" json:"email"`
	Location     string    `gorm:"size:128;not null" json:"location"`
	ResourceType string    `gorm:"size:16;not null" json:"resourceType"`
	Quantity     string    `gorm:"size:8;not null" json:"quantity"`
	Availability string    `gorm:"size:16;not null" json:"availability"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `gorm:"index:idx_offer_created,sort:desc" json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}
