package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/enerlytics/enerlytics/internal/analytics"
	"github.com/enerlytics/enerlytics/internal/domain"
	"github.com/enerlytics/enerlytics/internal/lock"
)

// DashboardStore is the persistence slice the dashboard pass reads and
// refreshes. *repository.Repos satisfies it.
type DashboardStore interface {
	GetUser(id string) (*domain.User, error)
	ListDevices(userID string) ([]domain.Device, error)
	ListLogs(userID string) ([]domain.DailyLog, error)
	UpsertDailyLog(userID string, day time.Time, energyKWh, cost float64) (*domain.DailyLog, error)
}

type DashboardService struct {
	store DashboardStore
	locks lock.Locker
	trend *analytics.TrendGenerator
}

func NewDashboard(store DashboardStore, locker lock.Locker) *DashboardService {
	return &DashboardService{
		store: store,
		locks: locker,
		trend: analytics.NewTrendGenerator(store),
	}
}

// Trend exposes the generator so callers can swap the variation function.
func (s *DashboardService) Trend() *analytics.TrendGenerator { return s.trend }

// Render runs one full dashboard pass: aggregate the live device list,
// refresh the 7-day window under the per-owner lock, then summarize
// months and derive insights from the re-read logs.
func (s *DashboardService) Render(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error) {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	devices, err := s.store.ListDevices(userID)
	if err != nil {
		return nil, err
	}
	usage := analytics.Aggregate(devices)

	// Store today's raw reading first. The refresh below replaces it with
	// the varied synthetic value, so the persisted "today" intentionally
	// drifts from the live total shown on the dashboard.
	if _, err := s.store.UpsertDailyLog(userID, now, usage.TodayEnergyKWh, usage.TodayCost); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("today log upsert failed")
	}

	release, err := s.locks.Acquire(ctx, "refresh:"+userID)
	if err != nil {
		return nil, err
	}
	daily := s.trend.Refresh(userID, usage.TodayEnergyKWh, now)
	release()

	logs, err := s.store.ListLogs(userID)
	if err != nil {
		return nil, err
	}

	months := analytics.SummarizeMonths(logs, now, user.LastMonthBill, usage.TodayEnergyKWh)
	insights := analytics.BuildInsights(analytics.InsightInput{
		CurrentMonthEnergy: months.CurrentMonthEnergy,
		LastMonthEnergy:    months.LastMonthEnergy,
		Devices:            devices,
		TotalEnergyKWh:     usage.TodayEnergyKWh,
		TotalCost:          usage.TodayCost,
		OnPowerWatts:       usage.CurrentPowerWatts,
	})

	deviceViews := make([]domain.DeviceView, 0, len(devices))
	for _, d := range devices {
		deviceViews = append(deviceViews, domain.DeviceView{
			ID:          d.ID,
			Name:        d.Name,
			PowerRating: d.PowerRating,
			UsageHours:  d.UsageHours,
			Status:      d.Status,
			Energy:      d.EnergyKWh(),
		})
	}
	logViews := make([]domain.LogView, 0, len(logs))
	for _, l := range logs {
		logViews = append(logViews, domain.LogView{
			ID:              l.ID,
			Date:            l.Date.Format(time.RFC3339),
			TotalEnergyUsed: l.TotalEnergyUsed,
			Cost:            l.Cost,
		})
	}

	return &domain.Dashboard{
		TotalPower:         usage.CurrentPowerWatts,
		TotalEnergy:        analytics.Format2(usage.TodayEnergyKWh),
		TotalCost:          analytics.Format2(usage.TodayCost),
		CurrentMonthEnergy: analytics.Format2(months.CurrentMonthEnergy),
		LastMonthEnergy:    analytics.Format2(months.LastMonthEnergy),
		CurrentMonthCost:   analytics.Format2(months.CurrentMonthCost),
		LastMonthCost:      analytics.Format2(months.LastMonthCost),
		AvgDailyEnergy:     analytics.Format2(months.AvgDailyEnergy),
		DailyData:          daily,
		Insights:           insights,
		Devices:            deviceViews,
		Logs:               logViews,
	}, nil
}
