package mysql

import (
	"errors"

	"Relief_Link/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateWithCoinTransfer creates the user and folds any standalone
// CoinBalance earned under the same email into user.Coins, removing the
// standalone row. Runs in one transaction so a crash cannot lose or
// duplicate the transferred balance.
func (r *UserRepository) CreateWithCoinTransfer(user *model.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var bal model.CoinBalance
		err := tx.Where("email = ?", user.Email).First(&bal).Error
		switch {
		case err == nil:
			user.Coins += bal.Coins
			if err := tx.Delete(&bal).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(user).Error
	})
}

func (r *UserRepository) AddCoins(id uint64, amount int64) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("coins", gorm.Expr("coins + ?", amount)).Error
}
