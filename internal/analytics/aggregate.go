package analytics

import (
	"github.com/enerlytics/enerlytics/internal/domain"
)

// UnitRate converts kWh to currency units (₹ per kWh).
const UnitRate = 6.0

// Usage holds the instantaneous metrics derived from a device list.
type Usage struct {
	TodayEnergyKWh    float64
	CurrentPowerWatts float64
	TodayCost         float64
}

// Aggregate sums a user's device list into today's energy, its cost, and
// the live power draw. Energy counts every device regardless of status
// (usage hours already reflect runtime); power counts ON devices only.
func Aggregate(devices []domain.Device) Usage {
	var u Usage
	for _, d := range devices {
		u.TodayEnergyKWh += d.EnergyKWh()
		if d.Status == domain.StatusOn {
			u.CurrentPowerWatts += d.PowerRating
		}
	}
	u.TodayCost = u.TodayEnergyKWh * UnitRate
	return u
}
