package mysql

import (
	"Relief_Link/internal/model"

	"gorm.io/gorm"
)

type AlertRepository struct {
	DB *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{DB: db}
}

func (r *AlertRepository) Create(alert *model.Alert) error {
	return r.DB.Create(alert).Error
}

func (r *AlertRepository) ListNewestFirst() ([]model.Alert, error) {
	var list []model.Alert
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}
