package utils

import (
	"math"
	"time"
)

// Days returns the day count fraction in days between two dates.
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// YearFraction converts a date span to years, counting actual days over
// a fixed 365-day year.
func YearFraction(start, end time.Time) float64 {
	return Days(start, end) / 365.0
}

// RoundTo rounds a float to the specified decimal places.
func RoundTo(val float64, decimals uint32) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
