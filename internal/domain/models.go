package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user or device lookup comes back empty.
var ErrNotFound = errors.New("not found")

type DeviceStatus string

const (
	StatusOn  DeviceStatus = "ON"
	StatusOff DeviceStatus = "OFF"
)

type Device struct {
	ID          string       `db:"id" json:"id"`
	UserID      string       `db:"user_id" json:"user_id"`
	Name        string       `db:"name" json:"name"`
	PowerRating float64      `db:"power_rating" json:"power_rating"`
	UsageHours  float64      `db:"usage_hours" json:"usage_hours"`
	Status      DeviceStatus `db:"status" json:"status"`
	LastUpdated time.Time    `db:"last_updated" json:"last_updated"`
}

// EnergyKWh is the device's daily consumption in kWh. Status is ignored:
// usage hours already capture how long the device actually runs per day.
func (d Device) EnergyKWh() float64 {
	return d.PowerRating * d.UsageHours / 1000
}

type DailyLog struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	Date            time.Time `db:"date" json:"date"`
	TotalEnergyUsed float64   `db:"total_energy_used" json:"total_energy_used"`
	Cost            float64   `db:"cost" json:"cost"`
}

type User struct {
	ID             string  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Email          string  `db:"email" json:"email"`
	PasswordHash   string  `db:"password_hash" json:"-"`
	Address        string  `db:"address" json:"address"`
	NoOfAppliances int     `db:"no_of_appliances" json:"no_of_appliances"`
	LastMonthBill  float64 `db:"last_month_bill" json:"last_month_bill"`
	Role           string  `db:"role" json:"role"`
}
