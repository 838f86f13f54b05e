package analytics

import (
	"time"

	"github.com/enerlytics/enerlytics/internal/domain"
)

// MonthlySummary compares the current billing month against the previous
// one, both derived from persisted daily logs.
type MonthlySummary struct {
	CurrentMonthEnergy float64
	LastMonthEnergy    float64
	CurrentMonthCost   float64
	LastMonthCost      float64
	AvgDailyEnergy     float64
}

// SummarizeMonths buckets logs by first-of-month boundaries. When no
// previous-month logs exist the user's last bill stands in for the energy
// total (bill / UnitRate). AvgDailyEnergy falls back to today's live
// energy when the current month has no logs yet.
func SummarizeMonths(logs []domain.DailyLog, now time.Time, lastMonthBill, todayEnergyKWh float64) MonthlySummary {
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastStart := currentStart.AddDate(0, -1, 0)

	var current, last float64
	var currentCount int
	for _, l := range logs {
		switch {
		case !l.Date.Before(currentStart):
			current += l.TotalEnergyUsed
			currentCount++
		case !l.Date.Before(lastStart):
			last += l.TotalEnergyUsed
		}
	}

	if last == 0 && lastMonthBill > 0 {
		last = lastMonthBill / UnitRate
	}

	avg := todayEnergyKWh
	if currentCount > 0 {
		avg = current / float64(currentCount)
	}

	return MonthlySummary{
		CurrentMonthEnergy: current,
		LastMonthEnergy:    last,
		CurrentMonthCost:   current * UnitRate,
		LastMonthCost:      last * UnitRate,
		AvgDailyEnergy:     avg,
	}
}
