// Package units converts raw vendor units (centimeters, milliseconds,
// cm/ms) into the display units stored in canonical activities. Every
// conversion propagates a missing or non-finite input to a nil output
// instead of erroring or producing zero.
package units

import (
	"math"
	"time"
)

// CentimetersToMeters converts a centimeter value to meters: round(v)/100.
func CentimetersToMeters(v *float64) *float64 {
	if !usable(v) {
		return nil
	}
	m := math.Round(*v) / 100
	return &m
}

// MillisecondsToSeconds converts a millisecond duration to whole seconds.
func MillisecondsToSeconds(v *float64) *int64 {
	if !usable(v) {
		return nil
	}
	s := int64(math.Round(*v / 1000))
	return &s
}

// SpeedCmPerMsToKmh converts centimeters-per-millisecond to km/h.
// 1 cm/ms is exactly 36 km/h. The result is rounded to a whole number,
// not to a decimal count; the stored precision is deliberate and must
// not be routed through RoundTo.
func SpeedCmPerMsToKmh(v *float64) *float64 {
	if !usable(v) {
		return nil
	}
	kmh := math.Round(*v * 36)
	return &kmh
}

// EpochMsToDate truncates an epoch-millisecond timestamp to a UTC calendar
// date in YYYY-MM-DD form. Returns "" when the timestamp is absent or not
// a finite number.
func EpochMsToDate(ms *float64) string {
	if !usable(ms) {
		return ""
	}
	return time.UnixMilli(int64(*ms)).UTC().Format("2006-01-02")
}

// RoundTo rounds to the given number of decimal places, propagating absence.
func RoundTo(v *float64, decimals int) *float64 {
	if !usable(v) {
		return nil
	}
	factor := math.Pow(10, float64(decimals))
	r := math.Round(*v*factor) / factor
	return &r
}

// ToInt rounds to the nearest integer, propagating absence.
func ToInt(v *float64) *int64 {
	if !usable(v) {
		return nil
	}
	i := int64(math.Round(*v))
	return &i
}

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
