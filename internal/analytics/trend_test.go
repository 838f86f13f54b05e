package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enerlytics/enerlytics/internal/domain"
)

type upsertCall struct {
	day    time.Time
	energy float64
	cost   float64
}

// fakeLogStore records upserts and keeps the last value per day, so
// overwrite semantics are observable.
type fakeLogStore struct {
	calls  []upsertCall
	byDay  map[string]upsertCall
	failOn string // YYYY-MM-DD that returns an error
}

func newFakeLogStore() *fakeLogStore {
	return &fakeLogStore{byDay: map[string]upsertCall{}}
}

func (s *fakeLogStore) UpsertDailyLog(userID string, day time.Time, energyKWh, cost float64) (*domain.DailyLog, error) {
	key := day.Format("2006-01-02")
	if key == s.failOn {
		return nil, errors.New("storage down")
	}
	call := upsertCall{day: day, energy: energyKWh, cost: cost}
	s.calls = append(s.calls, call)
	s.byDay[key] = call
	return &domain.DailyLog{UserID: userID, Date: day, TotalEnergyUsed: energyKWh, Cost: cost}, nil
}

func TestVariationFactorDeterministic(t *testing.T) {
	date := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	first := VariationFactor(date)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, VariationFactor(date))
	}
}

func TestVariationFactorKnownDates(t *testing.T) {
	cases := []struct {
		date string
		want float64
	}{
		{"2025-03-15", 1.3},       // Saturday, day%3==0, clamped at the top
		{"2025-03-16", 0.925225},  // Sunday
		{"2025-01-01", 0.79},      // Wednesday
		{"2024-12-25", 0.82547},   // Wednesday, day%5==0
		{"2025-06-09", 0.7465955}, // Monday, day%3==0
	}
	for _, tc := range cases {
		d, err := time.ParseInLocation("2006-01-02", tc.date, time.UTC)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, VariationFactor(d), 1e-9, "date %s", tc.date)
	}
}

func TestVariationFactorStaysClamped(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 731; i++ {
		d := start.AddDate(0, 0, i)
		v := VariationFactor(d)
		assert.GreaterOrEqual(t, v, 0.70, "date %s", d.Format("2006-01-02"))
		assert.LessOrEqual(t, v, 1.30, "date %s", d.Format("2006-01-02"))
	}
}

func TestRefreshSeriesShape(t *testing.T) {
	store := newFakeLogStore()
	g := NewTrendGenerator(store)
	now := time.Date(2025, 3, 16, 14, 30, 0, 0, time.UTC)

	points := g.Refresh("user-1", 10, now)

	require.Len(t, points, 7)
	require.Len(t, store.calls, 7)

	prev := time.Time{}
	for _, p := range points {
		d, err := time.Parse(time.RFC3339, p.Date)
		require.NoError(t, err)
		assert.True(t, d.After(prev), "series must ascend chronologically")
		prev = d

		assert.GreaterOrEqual(t, p.Energy, 0.1)
		// Energy and cost are rounded independently, so compare with
		// tolerance rather than exact equality.
		assert.InDelta(t, p.Energy*UnitRate, p.Cost, 0.011)
	}

	// Oldest day is 6 days back at midnight, newest is today.
	first, _ := time.Parse(time.RFC3339, points[0].Date)
	last, _ := time.Parse(time.RFC3339, points[6].Date)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), last)
}

func TestRefreshDeterministicForFixedInputs(t *testing.T) {
	now := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)
	a := NewTrendGenerator(newFakeLogStore()).Refresh("user-1", 12.5, now)
	b := NewTrendGenerator(newFakeLogStore()).Refresh("user-1", 12.5, now)
	assert.Equal(t, a, b)
}

func TestRefreshEnergyFloorWithZeroBaseline(t *testing.T) {
	store := newFakeLogStore()
	g := NewTrendGenerator(store)

	points := g.Refresh("user-1", 0, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))
	for _, p := range points {
		assert.Equal(t, 0.1, p.Energy)
		assert.Equal(t, Round2(0.1*UnitRate), p.Cost)
	}
}

func TestRefreshInjectedVariation(t *testing.T) {
	store := newFakeLogStore()
	g := &TrendGenerator{Store: store, Variation: func(time.Time) float64 { return 1.0 }}

	points := g.Refresh("user-1", 8, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))
	for _, p := range points {
		assert.Equal(t, 8.0, p.Energy)
		assert.Equal(t, 48.0, p.Cost)
	}
}

func TestRefreshOverwritesStoredDays(t *testing.T) {
	store := newFakeLogStore()
	g := NewTrendGenerator(store)
	now := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	g.Refresh("user-1", 10, now)
	g.Refresh("user-1", 20, now)

	require.Len(t, store.byDay, 7, "second refresh must overwrite, not duplicate")
	for key, call := range store.byDay {
		d, _ := time.Parse("2006-01-02", key)
		assert.InDelta(t, 20*VariationFactor(d), call.energy, 1e-9)
	}
}

func TestRefreshContinuesPastStorageFailure(t *testing.T) {
	store := newFakeLogStore()
	store.failOn = "2025-03-13"
	g := NewTrendGenerator(store)

	points := g.Refresh("user-1", 10, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC))

	assert.Len(t, points, 7, "series is emitted even when one day fails to persist")
	assert.Len(t, store.calls, 6)
}
