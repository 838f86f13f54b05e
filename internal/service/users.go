package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/enerlytics/enerlytics/internal/domain"
)

// ErrEmailTaken is returned on signup when the email is already in use.
var ErrEmailTaken = errors.New("user with same email already exists")

// ErrInvalidCredentials covers both unknown email and bad password so the
// two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserStore interface {
	GetUserByEmail(email string) (*domain.User, error)
	CreateUser(u *domain.User) error
}

type UserService struct {
	store UserStore
}

func NewUsers(store UserStore) *UserService { return &UserService{store: store} }

type SignupInput struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Address        string  `json:"address"`
	NoOfAppliances int     `json:"no_of_appliances"`
	LastMonthBill  float64 `json:"last_month_bill"`
}

func (s *UserService) Register(in SignupInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalid)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalid)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.store.GetUserByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		PasswordHash:   string(hash),
		Address:        in.Address,
		NoOfAppliances: in.NoOfAppliances,
		LastMonthBill:  in.LastMonthBill,
	}
	if err := s.store.CreateUser(u); err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *UserService) Login(email, password string) (*domain.User, error) {
	u, err := s.store.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	u.PasswordHash = ""
	return u, nil
}
