package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/enerlytics/enerlytics/internal/domain"
)

// ListLogs returns every daily log for the user, newest first.
func (r *Repos) ListLogs(userID string) ([]domain.DailyLog, error) {
	var out []domain.DailyLog
	err := r.db.Select(&out, `SELECT id, user_id, date, total_energy_used, cost FROM energy_logs WHERE user_id = $1 ORDER BY date DESC`, userID)
	return out, err
}

// UpsertDailyLog keeps at most one log per (user, calendar day). The day's
// record is looked up by inclusive day bounds and overwritten in place when
// present, otherwise a new record is stored at local midnight.
func (r *Repos) UpsertDailyLog(userID string, day time.Time, energyKWh, cost float64) (*domain.DailyLog, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Millisecond)

	var existing domain.DailyLog
	err := r.db.Get(&existing,
		`SELECT id, user_id, date, total_energy_used, cost FROM energy_logs WHERE user_id = $1 AND date >= $2 AND date <= $3 LIMIT 1`,
		userID, start, end)
	switch {
	case err == nil:
		existing.TotalEnergyUsed = energyKWh
		existing.Cost = cost
		_, err = r.db.Exec(`UPDATE energy_logs SET total_energy_used = $2, cost = $3 WHERE id = $1`,
			existing.ID, existing.TotalEnergyUsed, existing.Cost)
		if err != nil {
			return nil, err
		}
		return &existing, nil
	case errors.Is(err, sql.ErrNoRows):
		created := domain.DailyLog{
			ID:              uuid.NewString(),
			UserID:          userID,
			Date:            start,
			TotalEnergyUsed: energyKWh,
			Cost:            cost,
		}
		_, err = r.db.Exec(`INSERT INTO energy_logs(id, user_id, date, total_energy_used, cost) VALUES ($1,$2,$3,$4,$5)`,
			created.ID, created.UserID, created.Date, created.TotalEnergyUsed, created.Cost)
		if err != nil {
			return nil, err
		}
		return &created, nil
	default:
		return nil, err
	}
}
