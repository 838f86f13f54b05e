package analytics

import (
	"math"
	"strconv"
)

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(x float64) float64 { return math.Round(x*100) / 100 }

func round1(x float64) float64 { return math.Round(x*10) / 10 }

// Format2 renders a value as a fixed 2-decimal display string.
func Format2(x float64) string { return strconv.FormatFloat(Round2(x), 'f', 2, 64) }
