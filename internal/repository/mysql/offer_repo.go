package mysql

import (
	"Relief_Link/internal/model"

	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) Create(offer *model.ResourceOffer) error {
	return r.DB.Create(offer).Error
}

func (r *OfferRepository) ListNewestFirst() ([]model.ResourceOffer, error) {
	var list []model.ResourceOffer
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *OfferRepository) DeleteByID(id uint64) (int64, error) {
	tx := r.DB.Delete(&model.ResourceOffer{}, id)
	return tx.RowsAffected, tx.Error
}
