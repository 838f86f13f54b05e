package domain

// DailyPoint is one entry of the rolling 7-day chart series. Energy and
// Cost stay numeric (rounded to 2 decimals) so chart consumers can plot
// them directly.
type DailyPoint struct {
	Date   string  `json:"date"`
	Energy float64 `json:"energy"`
	Cost   float64 `json:"cost"`
}

// DeviceView is the per-device slice of the dashboard, with the computed
// daily energy attached.
type DeviceView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	PowerRating float64      `json:"power_rating"`
	UsageHours  float64      `json:"usage_hours"`
	Status      DeviceStatus `json:"status"`
	Energy      float64      `json:"energy"`
}

type LogView struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	TotalEnergyUsed float64 `json:"total_energy_used"`
	Cost            float64 `json:"cost"`
}

// Dashboard is the view-model bag handed to the presentation layer.
// Monetary and energy totals are pre-formatted 2-decimal strings; only
// TotalPower and the chart series stay numeric.
type Dashboard struct {
	TotalPower         float64      `json:"total_power"`
	TotalEnergy        string       `json:"total_energy"`
	TotalCost          string       `json:"total_cost"`
	CurrentMonthEnergy string       `json:"current_month_energy"`
	LastMonthEnergy    string       `json:"last_month_energy"`
	CurrentMonthCost   string       `json:"current_month_cost"`
	LastMonthCost      string       `json:"last_month_cost"`
	AvgDailyEnergy     string       `json:"avg_daily_energy"`
	DailyData          []DailyPoint `json:"daily_data"`
	Insights           []string     `json:"insights"`
	Devices            []DeviceView `json:"devices"`
	Logs               []LogView    `json:"logs"`
}
