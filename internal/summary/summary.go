// Package summary derives presentation-ready aggregates from cached record
// collections: goal progress, per-day totals, trailing week series and BMI
// classification.
package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"vitalog/internal/models"
	"vitalog/internal/validation"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Percentage returns value/goal as a percentage clamped to [0, 100]. A goal
// of zero or less reads as no goal, which is zero progress.
func Percentage(value, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return Clamp(value/goal*100, 0, 100)
}

// PercentLabel formats a progress percentage for display, rounded to the
// nearest whole percent.
func PercentLabel(value, goal float64) string {
	return fmt.Sprintf("%.0f%%", Percentage(value, goal))
}

// DailyTotal sums a numeric record value over all records that fall on the
// given calendar day. Records with unparseable timestamps are skipped.
func DailyTotal[T any](records []T, day time.Time, datetime func(T) string, value func(T) float64) float64 {
	var total float64
	y, m, d := day.Date()
	for _, rec := range records {
		ts, err := validation.ParseDatetime(datetime(rec))
		if err != nil {
			continue
		}
		ry, rm, rd := ts.Date()
		if ry == y && rm == m && rd == d {
			total += value(rec)
		}
	}
	return total
}

// DayTotal is one point of a daily series.
type DayTotal struct {
	Day   time.Time
	Total float64
}

// TrailingWeek produces per-day totals for the seven days ending on (and
// including) end, oldest first.
func TrailingWeek[T any](records []T, end time.Time, datetime func(T) string, value func(T) float64) []DayTotal {
	out := make([]DayTotal, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := end.AddDate(0, 0, -offset)
		out = append(out, DayTotal{
			Day:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
			Total: DailyTotal(records, day, datetime, value),
		})
	}
	return out
}

// WaterTotal sums water amounts for one day, in milliliters.
func WaterTotal(records []models.WaterRecord, day time.Time) float64 {
	return DailyTotal(records, day,
		func(r models.WaterRecord) string { return r.Datetime },
		func(r models.WaterRecord) float64 { return r.AmountMl })
}

// SleepTotal sums sleep hours for one day.
func SleepTotal(records []models.SleepRecord, day time.Time) float64 {
	return DailyTotal(records, day,
		func(r models.SleepRecord) string { return r.Datetime },
		func(r models.SleepRecord) float64 { return r.Hours })
}

// ActivityTotal sums activity minutes for one day.
func ActivityTotal(records []models.ActivityRecord, day time.Time) float64 {
	return DailyTotal(records, day,
		func(r models.ActivityRecord) string { return r.Datetime },
		func(r models.ActivityRecord) float64 { return r.Minutes })
}

// SortedByDatetime returns a copy of the records ordered oldest first.
// Records that fail to parse sort before everything else, keeping their
// relative order.
func SortedByDatetime[T any](records []T, datetime func(T) string) []T {
	out := append([]T(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, erri := validation.ParseDatetime(datetime(out[i]))
		tj, errj := validation.ParseDatetime(datetime(out[j]))
		if erri != nil || errj != nil {
			return erri != nil && errj == nil
		}
		return ti.Before(tj)
	})
	return out
}

// BMI classification bands per the WHO adult scale.
const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

// ClassifyBMI maps a BMI value to its band. Non-positive values are not a
// meaningful measurement and classify as empty.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi <= 0 || math.IsNaN(bmi):
		return ""
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
