package analytics

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/enerlytics/enerlytics/internal/domain"
)

// VariationFunc maps a calendar date to a usage multiplier. The default is
// VariationFactor; tests inject fixed functions to pin expected values.
type VariationFunc func(date time.Time) float64

// Indexed by time.Weekday (Sunday = 0). Weekends and Fridays run hotter,
// Sundays and Mondays cooler.
var dayOfWeekFactor = [7]float64{0.85, 0.95, 1.00, 1.00, 1.05, 1.10, 1.15}

// VariationFactor derives a deterministic multiplier in [0.70, 1.30] from a
// calendar date. There is no stored telemetry to replay, so the 7-day chart
// fabricates plausible variation that is stable for a given date but shifts
// the whole series whenever the device baseline changes.
func VariationFactor(date time.Time) float64 {
	hash := hashDate(date.Format("2006-01-02"))
	day := date.Day()
	month := int(date.Month()) - 1

	dayMonthHash := (day*31 + month*7) % 100
	combined := (int(hash) + dayMonthHash) % 1000
	if combined < 0 {
		combined = -combined
	}
	v := 0.75 + float64(combined)/1000*0.5

	v *= dayOfWeekFactor[date.Weekday()]

	// day%3 wins when both divide; the checks are deliberately exclusive.
	if day%3 == 0 {
		v *= 1.03
	} else if day%5 == 0 {
		v *= 0.97
	}

	return math.Max(0.70, math.Min(1.30, v))
}

// hashDate is the classic 31-polynomial string hash wrapped to signed
// 32 bits (h = h*31 + c, i.e. (h<<5) - h + c).
func hashDate(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	return h
}

// LogStore is the slice of persistence the trend generator needs.
type LogStore interface {
	UpsertDailyLog(userID string, day time.Time, energyKWh, cost float64) (*domain.DailyLog, error)
}

// TrendGenerator refreshes the rolling 7-day window from the current
// device baseline and emits the chart series.
type TrendGenerator struct {
	Store     LogStore
	Variation VariationFunc
}

func NewTrendGenerator(store LogStore) *TrendGenerator {
	return &TrendGenerator{Store: store, Variation: VariationFactor}
}

// Refresh walks the last 7 calendar days (today included, oldest first),
// overwrites each day's stored log with baseline*variation, and returns
// the series in chronological order. A failed upsert is logged and the
// loop moves on; the stale day self-heals on the next refresh.
func (g *TrendGenerator) Refresh(userID string, baselineKWh float64, now time.Time) []domain.DailyPoint {
	variation := g.Variation
	if variation == nil {
		variation = VariationFactor
	}

	points := make([]domain.DailyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		t := now.AddDate(0, 0, -i)
		target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

		v := variation(target)
		energy := math.Max(0.1, baselineKWh*v)
		cost := energy * UnitRate

		if _, err := g.Store.UpsertDailyLog(userID, target, energy, cost); err != nil {
			log.Error().Err(err).Str("user_id", userID).Time("day", target).Msg("daily log upsert failed")
		}

		points = append(points, domain.DailyPoint{
			Date:   target.Format(time.RFC3339),
			Energy: Round2(energy),
			Cost:   Round2(cost),
		})
	}
	return points
}
