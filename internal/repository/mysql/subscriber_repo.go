package mysql

import (
	"Relief_Link/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriberRepository struct {
	DB *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

// Add inserts the email if it is not already subscribed. Idempotent:
// returns whether a new row was created.
func (r *SubscriberRepository) Add(email string) (bool, error) {
	sub := &model.Subscriber{Email: email}
	tx := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(sub)
	return tx.RowsAffected > 0, tx.Error
}

func (r *SubscriberRepository) ListEmails() ([]string, error) {
	var emails []string
	err := r.DB.Model(&model.Subscriber{}).Pluck("email", &emails).Error
	return emails, err
}
