package service

import (
	"errors"
	"regexp"
	"strings"

	"Relief_Link/internal/apperror"
	"Relief_Link/internal/model"
	"Relief_Link/internal/pkg"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the persistence surface the auth flow needs. Satisfied by
// mysql.UserRepository; tests swap in a fake.
type UserStore interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint64) (*model.User, error)
	CreateWithCoinTransfer(user *model.User) error
}

type UserService struct {
	repo   UserStore
	tokens *pkg.TokenMaker
}

func NewUserService(repo UserStore, tokens *pkg.TokenMaker) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// PublicProfile is what login returns to the browser. The password hash
// never leaves the service layer.
type PublicProfile struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Signup registers a new account and returns a signed token. Any coin
// balance earned under the email before registration is carried onto the
// new user.
func (s *UserService) Signup(name, email, password, phone, location string) (string, error) {
	var problems []string
	if strings.TrimSpace(name) == "" {
		problems = append(problems, "name is required")
	}
	if !emailRe.MatchString(email) {
		problems = append(problems, "a valid email is required")
	}
	if len(password) < 6 {
		problems = append(problems, "password must be at least 6 characters")
	}
	if len(problems) > 0 {
		return "", apperror.Validation(strings.Join(problems, ", "))
	}

	existing, err := s.repo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if existing != nil {
		return "", apperror.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Phone:    phone,
		Location: location,
		Role:     model.RoleVictim,
	}
	if err := s.repo.CreateWithCoinTransfer(user); err != nil {
		return "", err
	}

	return s.tokens.Generate(user.ID, user.Email)
}

func (s *UserService) Login(email, password string) (string, *PublicProfile, error) {
	user, err := s.repo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperror.NotFound("no account with this email")
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, apperror.Unauthenticated("incorrect password")
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &PublicProfile{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Verify decodes a cookie-carried token into the identity it was issued for.
func (s *UserService) Verify(tokenStr string) (*pkg.Claims, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, apperror.Unauthenticated("Invalid token")
	}
	return claims, nil
}
