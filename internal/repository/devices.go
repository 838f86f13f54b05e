package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/enerlytics/enerlytics/internal/domain"
)

func (r *Repos) ListDevices(userID string) ([]domain.Device, error) {
	var out []domain.Device
	err := r.db.Select(&out, `SELECT id, user_id, name, power_rating, usage_hours, status, last_updated FROM devices WHERE user_id = $1 ORDER BY last_updated, id`, userID)
	return out, err
}

func (r *Repos) GetDevice(id string) (*domain.Device, error) {
	var d domain.Device
	err := r.db.Get(&d, `SELECT id, user_id, name, power_rating, usage_hours, status, last_updated FROM devices WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repos) CreateDevice(d *domain.Device) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Status == "" {
		d.Status = domain.StatusOff
	}
	if d.LastUpdated.IsZero() {
		d.LastUpdated = time.Now()
	}
	_, err := r.db.Exec(
		`INSERT INTO devices(id, user_id, name, power_rating, usage_hours, status, last_updated) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.UserID, d.Name, d.PowerRating, d.UsageHours, d.Status, d.LastUpdated)
	return err
}

func (r *Repos) UpdateDevice(d *domain.Device) error {
	_, err := r.db.Exec(
		`UPDATE devices SET name = $2, power_rating = $3, usage_hours = $4, status = $5, last_updated = $6 WHERE id = $1`,
		d.ID, d.Name, d.PowerRating, d.UsageHours, d.Status, d.LastUpdated)
	return err
}

func (r *Repos) DeleteDevice(id string) error {
	_, err := r.db.Exec(`DELETE FROM devices WHERE id = $1`, id)
	return err
}
