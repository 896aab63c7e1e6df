package mysql

import (
	"Relief_Link/internal/model"

	"gorm.io/gorm"
)

type RequestRepository struct {
	DB *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{DB: db}
}

func (r *RequestRepository) Create(req *model.ResourceRequest) error {
	return r.DB.Create(req).Error
}

// ListNewestFirst returns every request, most recent submission first.
// id breaks ties within the same timestamp.
func (r *RequestRepository) ListNewestFirst() ([]model.ResourceRequest, error) {
	var list []model.ResourceRequest
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// DeleteByID reports how many rows matched; 0 means the id was unknown
// (or already deleted).
func (r *RequestRepository) DeleteByID(id uint64) (int64, error) {
	tx := r.DB.Delete(&model.ResourceRequest{}, id)
	return tx.RowsAffected, tx.Error
}
