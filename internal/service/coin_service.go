package service

import (
	"errors"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"

	"gorm.io/gorm"
)

type CoinStore interface {
	FindByEmail(email string) (*model.CoinBalance, error)
	Add(email string, amount int64) error
}

// CoinUserStore is the slice of the user store the coin flow needs.
type CoinUserStore interface {
	FindByEmail(email string) (*model.User, error)
	AddCoins(id uint64, amount int64) error
}

type CoinService struct {
	coins CoinStore
	users CoinUserStore
}

func NewCoinService(coins CoinStore, users CoinUserStore) *CoinService {
	return &CoinService{coins: coins, users: users}
}

// GetCoins reads the balance for an email: a registered user's coins win,
// then any standalone pre-signup balance, otherwise zero. Only a missing
// record falls through; store failures propagate.
func (s *CoinService) GetCoins(email string) (int64, error) {
	if !emailRe.MatchString(email) {
		return 0, apperror.Validation("a valid email is required")
	}

	user, err := s.users.FindByEmail(email)
	switch {
	case err == nil:
		return user.Coins, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	bal, err := s.coins.FindByEmail(email)
	switch {
	case err == nil:
		return bal.Coins, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	return 0, nil
}

// AddCoins credits a reward. Registered users are credited directly;
// unregistered emails get a standalone balance that signup later merges.
func (s *CoinService) AddCoins(email string, amount int64) (int64, error) {
	if !emailRe.MatchString(email) {
		return 0, apperror.Validation("a valid email is required")
	}
	if amount <= 0 {
		return 0, apperror.Validation("amount must be a positive integer")
	}

	user, err := s.users.FindByEmail(email)
	switch {
	case err == nil:
		if err := s.users.AddCoins(user.ID, amount); err != nil {
			return 0, err
		}
		// Re-read so the reported total reflects credits that landed
		// concurrently, not the pre-increment snapshot.
		updated, err := s.users.FindByEmail(email)
		if err != nil {
			return 0, err
		}
		return updated.Coins, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	if err := s.coins.Add(email, amount); err != nil {
		return 0, err
	}
	bal, err := s.coins.FindByEmail(email)
	if err != nil {
		return 0, err
	}
	return bal.Coins, nil
}
