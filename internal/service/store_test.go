package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/enerlytics/enerlytics/internal/domain"
)

// memStore is an in-memory implementation of the repository surface,
// mirroring the find-by-day-bounds upsert semantics of the SQL store.
type memStore struct {
	users       map[string]*domain.User
	devices     map[string]*domain.Device
	logs        []*domain.DailyLog
	failUpserts bool
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]*domain.User{},
		devices: map[string]*domain.Device{},
	}
}

func (m *memStore) GetUser(id string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByEmail(email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) CreateUser(u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) ListDevices(userID string) ([]domain.Device, error) {
	var out []domain.Device
	for _, d := range m.devices {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *memStore) GetDevice(id string) (*domain.Device, error) {
	d, ok := m.devices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) CreateDevice(d *domain.Device) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	cp := *d
	m.devices[d.ID] = &cp
	return nil
}

func (m *memStore) UpdateDevice(d *domain.Device) error {
	if _, ok := m.devices[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	m.devices[d.ID] = &cp
	return nil
}

func (m *memStore) DeleteDevice(id string) error {
	delete(m.devices, id)
	return nil
}

func (m *memStore) ListLogs(userID string) ([]domain.DailyLog, error) {
	var out []domain.DailyLog
	for _, l := range m.logs {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (m *memStore) UpsertDailyLog(userID string, day time.Time, energyKWh, cost float64) (*domain.DailyLog, error) {
	if m.failUpserts {
		return nil, errors.New("storage down")
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	for _, l := range m.logs {
		if l.UserID == userID && !l.Date.Before(start) && !l.Date.After(end) {
			l.TotalEnergyUsed = energyKWh
			l.Cost = cost
			cp := *l
			return &cp, nil
		}
	}
	created := &domain.DailyLog{
		ID:              uuid.NewString(),
		UserID:          userID,
		Date:            start,
		TotalEnergyUsed: energyKWh,
		Cost:            cost,
	}
	m.logs = append(m.logs, created)
	cp := *created
	return &cp, nil
}

func (m *memStore) logsFor(userID string, day time.Time) []*domain.DailyLog {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var out []*domain.DailyLog
	for _, l := range m.logs {
		if l.UserID == userID && l.Date.Equal(start) {
			out = append(out, l)
		}
	}
	return out
}
