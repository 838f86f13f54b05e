package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/enerlytics/enerlytics/internal/domain"
)

func (r *Repos) GetUser(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT id, name, email, password_hash, address, no_of_appliances, last_month_bill, role FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repos) GetUserByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT id, name, email, password_hash, address, no_of_appliances, last_month_bill, role FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repos) CreateUser(u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	_, err := r.db.Exec(
		`INSERT INTO users(id, name, email, password_hash, address, no_of_appliances, last_month_bill, role) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Address, u.NoOfAppliances, u.LastMonthBill, u.Role)
	return err
}
