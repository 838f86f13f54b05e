package analytics

import (
	"fmt"
	"math"
	"strings"

	"github.com/enerlytics/enerlytics/internal/domain"
)

// Category tags a device for insight selection. Classification happens
// once, here, so the advisory text below never inspects device names.
type Category int

const (
	CategoryOther Category = iota
	CategoryAC
	CategoryHeater
	CategoryFridge
)

// Classify maps a device name to its category. Checks run in priority
// order; the first matching group wins.
func Classify(name string) Category {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "air") || strings.Contains(n, "ac") || strings.Contains(n, "conditioner"):
		return CategoryAC
	case strings.Contains(n, "heater") || strings.Contains(n, "geyser"):
		return CategoryHeater
	case strings.Contains(n, "refrigerator") || strings.Contains(n, "fridge"):
		return CategoryFridge
	}
	return CategoryOther
}

// InsightInput carries everything the advisory rules look at.
type InsightInput struct {
	CurrentMonthEnergy float64
	LastMonthEnergy    float64
	Devices            []domain.Device
	TotalEnergyKWh     float64
	TotalCost          float64
	OnPowerWatts       float64
}

// BuildInsights evaluates the advisory rules in a fixed order and
// accumulates every tip whose gate holds. Only the dominant-device tip
// group and the usage tier pick a single branch; the rest stack.
func BuildInsights(in InsightInput) []string {
	var insights []string

	// Month-over-month trend. Equal months land in the decrease branch
	// and report 0.0%.
	if in.LastMonthEnergy > 0 {
		if in.CurrentMonthEnergy > in.LastMonthEnergy {
			increase := round1((in.CurrentMonthEnergy - in.LastMonthEnergy) / in.LastMonthEnergy * 100)
			insights = append(insights, fmt.Sprintf("⚠️ Energy usage increased by %.1f%% compared to last month", increase))
		} else {
			decrease := round1((in.LastMonthEnergy - in.CurrentMonthEnergy) / in.LastMonthEnergy * 100)
			insights = append(insights, fmt.Sprintf("✅ Great! Energy usage decreased by %.1f%% compared to last month", decrease))
		}
	}

	if dominant := dominantDevice(in.Devices); dominant != nil {
		deviceEnergy := dominant.EnergyKWh()
		var share float64
		if in.TotalEnergyKWh > 0 {
			share = round1(deviceEnergy / in.TotalEnergyKWh * 100)
		}
		insights = append(insights, fmt.Sprintf("💡 %s consumes %.1f%% of your total energy", dominant.Name, share))
		insights = append(insights, categoryTips(dominant, deviceEnergy)...)
	}

	// Absolute usage tier, high before moderate.
	if in.TotalEnergyKWh > 20 {
		saving := math.Round(in.TotalEnergyKWh * 0.2 * UnitRate)
		insights = append(insights, fmt.Sprintf("📊 Your daily usage is high - try to reduce by 20%% to save ₹%.0f/day", saving))
	} else if in.TotalEnergyKWh > 10 {
		insights = append(insights, "📊 Your usage is moderate - aim to reduce by 15% for better savings")
	}

	if len(in.Devices) > 5 {
		off := 0
		for _, d := range in.Devices {
			if d.Status == domain.StatusOff {
				off++
			}
		}
		if float64(off) < float64(len(in.Devices))/2 {
			insights = append(insights, fmt.Sprintf("🔌 You have %d devices - turn off unused ones to save energy", len(in.Devices)))
		}
	}

	if in.OnPowerWatts > 3000 {
		insights = append(insights, fmt.Sprintf("⚡ High power consumption detected (%.0fW) - stagger device usage", in.OnPowerWatts))
	}

	longRunning := 0
	for _, d := range in.Devices {
		if d.UsageHours > 12 {
			longRunning++
		}
	}
	if longRunning > 0 {
		insights = append(insights, fmt.Sprintf("⏰ %d device(s) run >12 hrs/day - optimize their schedules", longRunning))
	}

	if in.TotalCost > 100 {
		saving := math.Round(in.TotalCost * 0.1)
		insights = append(insights, fmt.Sprintf("💰 Daily cost is ₹%s - reduce by 10%% to save ₹%.0f/day", Format2(in.TotalCost), saving))
	}

	return insights
}

// dominantDevice returns the device with the highest power*hours product,
// first-encountered winning ties. Nil for an empty list.
func dominantDevice(devices []domain.Device) *domain.Device {
	if len(devices) == 0 {
		return nil
	}
	max := &devices[0]
	for i := 1; i < len(devices); i++ {
		if devices[i].PowerRating*devices[i].UsageHours > max.PowerRating*max.UsageHours {
			max = &devices[i]
		}
	}
	return max
}

func categoryTips(d *domain.Device, deviceEnergy float64) []string {
	switch Classify(d.Name) {
	case CategoryAC:
		return []string{
			"🌡️ Set AC temperature to 24-26°C to save 15-20% energy",
			fmt.Sprintf("⏰ Use AC timers - turning it off when not needed can save ₹%.0f/day", math.Round(deviceEnergy*0.2*UnitRate)),
		}
	case CategoryHeater:
		return []string{
			"🔥 Switch off water heater 1 hour before use - saves 10% energy",
			"💧 Lower heater temperature to 50-60°C to reduce consumption",
		}
	case CategoryFridge:
		return []string{
			"❄️ Keep fridge at optimal temperature (3-5°C) to reduce 5-10% energy",
			"🚪 Avoid frequent door openings - each opening increases energy by 5%",
		}
	default:
		return []string{
			fmt.Sprintf("⚡ Consider using %s during off-peak hours", d.Name),
			fmt.Sprintf("🔌 Unplug %s when not in use to save standby power", d.Name),
		}
	}
}
