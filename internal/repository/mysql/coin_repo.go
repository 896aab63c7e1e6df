package mysql

import (
	"Relief_Link/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CoinRepository struct {
	DB *gorm.DB
}

func NewCoinRepository(db *gorm.DB) *CoinRepository {
	return &CoinRepository{DB: db}
}

func (r *CoinRepository) FindByEmail(email string) (*model.CoinBalance, error) {
	var bal model.CoinBalance
	if err := r.DB.Where("email = ?", email).First(&bal).Error; err != nil {
		return nil, err
	}
	return &bal, nil
}

// Add upserts the standalone balance for an unregistered email: the first
// earning creates the row, later earnings increment it.
func (r *CoinRepository) Add(email string, amount int64) error {
	bal := &model.CoinBalance{Email: email, Coins: amount}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"coins": gorm.Expr("coins + ?", amount)}),
	}).Create(bal).Error
}
