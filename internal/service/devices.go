package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/enerlytics/enerlytics/internal/analytics"
	"github.com/enerlytics/enerlytics/internal/domain"
)

const (
	maxPowerRating = 50000
	maxUsageHours  = 24
)

type DeviceStore interface {
	GetDevice(id string) (*domain.Device, error)
	ListDevices(userID string) ([]domain.Device, error)
	CreateDevice(d *domain.Device) error
	UpdateDevice(d *domain.Device) error
	DeleteDevice(id string) error
	UpsertDailyLog(userID string, day time.Time, energyKWh, cost float64) (*domain.DailyLog, error)
}

type DeviceService struct {
	store DeviceStore
}

func NewDevices(store DeviceStore) *DeviceService { return &DeviceService{store: store} }

type DeviceInput struct {
	Name        string  `json:"name"`
	PowerRating float64 `json:"power_rating"`
	UsageHours  float64 `json:"usage_hours"`
}

func (s *DeviceService) Add(userID string, in DeviceInput) (*domain.Device, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: device name is required", ErrInvalid)
	}
	if in.PowerRating < 0 || in.PowerRating > maxPowerRating {
		return nil, fmt.Errorf("%w: power rating must be between 0 and %d watts", ErrInvalid, maxPowerRating)
	}
	if in.UsageHours < 0 || in.UsageHours > maxUsageHours {
		return nil, fmt.Errorf("%w: usage hours must be between 0 and %d", ErrInvalid, maxUsageHours)
	}

	d := &domain.Device{
		UserID:      userID,
		Name:        name,
		PowerRating: in.PowerRating,
		UsageHours:  in.UsageHours,
		Status:      domain.StatusOff,
		LastUpdated: time.Now(),
	}
	if err := s.store.CreateDevice(d); err != nil {
		return nil, err
	}
	s.refreshTodayLog(userID)
	return d, nil
}

// Update applies only the fields that pass validation; out-of-range
// values are ignored rather than rejected.
func (s *DeviceService) Update(userID, deviceID string, in DeviceInput) (*domain.Device, error) {
	d, err := s.owned(userID, deviceID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		d.Name = name
	}
	if in.PowerRating >= 0 && in.PowerRating <= maxPowerRating {
		d.PowerRating = in.PowerRating
	}
	if in.UsageHours >= 0 && in.UsageHours <= maxUsageHours {
		d.UsageHours = in.UsageHours
	}
	d.LastUpdated = time.Now()

	if err := s.store.UpdateDevice(d); err != nil {
		return nil, err
	}
	s.refreshTodayLog(userID)
	return d, nil
}

func (s *DeviceService) Delete(userID, deviceID string) error {
	if _, err := s.owned(userID, deviceID); err != nil {
		return err
	}
	if err := s.store.DeleteDevice(deviceID); err != nil {
		return err
	}
	s.refreshTodayLog(userID)
	return nil
}

func (s *DeviceService) Toggle(userID, deviceID string) (*domain.Device, error) {
	d, err := s.owned(userID, deviceID)
	if err != nil {
		return nil, err
	}

	if d.Status == domain.StatusOn {
		d.Status = domain.StatusOff
	} else {
		d.Status = domain.StatusOn
	}
	d.LastUpdated = time.Now()

	if err := s.store.UpdateDevice(d); err != nil {
		return nil, err
	}
	s.refreshTodayLog(userID)
	return d, nil
}

func (s *DeviceService) owned(userID, deviceID string) (*domain.Device, error) {
	d, err := s.store.GetDevice(deviceID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, ErrForbidden
	}
	return d, nil
}

// refreshTodayLog rewrites today's log from the post-mutation device
// list. A storage failure here degrades silently; the next dashboard
// view recomputes the same value.
func (s *DeviceService) refreshTodayLog(userID string) {
	devices, err := s.store.ListDevices(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("device list reload failed")
		return
	}
	usage := analytics.Aggregate(devices)
	if _, err := s.store.UpsertDailyLog(userID, time.Now(), usage.TodayEnergyKWh, usage.TodayCost); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("today log refresh failed")
	}
}
