package summary

import (
	"testing"
	"time"

	"vitalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		goal  float64
		want  float64
	}{
		{"half way", 1000, 2000, 50},
		{"exactly met", 2000, 2000, 100},
		{"overshoot clamps", 3000, 2000, 100},
		{"nothing logged", 0, 2000, 0},
		{"zero goal", 500, 0, 0},
		{"negative goal", 500, -1, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Percentage(tt.value, tt.goal))
		})
	}
}

func TestPercentLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "33%", PercentLabel(1, 3))
	assert.Equal(t, "100%", PercentLabel(5, 3))
	assert.Equal(t, "0%", PercentLabel(0, 3))
}

func TestWaterTotal(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	records := []models.WaterRecord{
		{ID: "w1", Datetime: "2026-08-28T08:00", AmountMl: 250},
		{ID: "w2", Datetime: "2026-08-28T12:30", AmountMl: 300},
		{ID: "w3", Datetime: "2026-08-27T22:00", AmountMl: 500},
		{ID: "w4", Datetime: "not-a-date", AmountMl: 999},
	}

	assert.Equal(t, 550.0, WaterTotal(records, day))
	assert.Equal(t, 500.0, WaterTotal(records, day.AddDate(0, 0, -1)))
	assert.Zero(t, WaterTotal(records, day.AddDate(0, 0, 1)))
}

func TestTrailingWeek(t *testing.T) {
	t.Parallel()

	end := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	records := []models.ActivityRecord{
		{ID: "a1", Datetime: "2026-08-28T07:00", Minutes: 30, Intensity: "medium"},
		{ID: "a2", Datetime: "2026-08-26T18:00", Minutes: 45, Intensity: "high"},
		{ID: "a3", Datetime: "2026-08-20T18:00", Minutes: 60, Intensity: "low"}, // outside window
	}

	week := TrailingWeek(records, end,
		func(r models.ActivityRecord) string { return r.Datetime },
		func(r models.ActivityRecord) float64 { return r.Minutes })

	assert.Len(t, week, 7)
	assert.Equal(t, end.AddDate(0, 0, -6), week[0].Day)
	assert.Equal(t, end, week[6].Day)
	assert.Equal(t, 30.0, week[6].Total)
	assert.Equal(t, 45.0, week[4].Total)
	assert.Zero(t, week[0].Total)
}

func TestSortedByDatetime(t *testing.T) {
	t.Parallel()

	records := []models.SleepRecord{
		{ID: "s2", Datetime: "2026-08-28T23:00", Hours: 8},
		{ID: "s1", Datetime: "2026-08-26T22:30", Hours: 6.5},
		{ID: "s3", Datetime: "2026-08-27T23:15", Hours: 7},
	}

	sorted := SortedByDatetime(records, func(r models.SleepRecord) string { return r.Datetime })

	assert.Equal(t, []string{"s1", "s3", "s2"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	// Input order untouched.
	assert.Equal(t, "s2", records[0].ID)
}

func TestClassifyBMI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bmi  float64
		want string
	}{
		{17.9, BMIUnderweight},
		{18.5, BMINormal},
		{22.0, BMINormal},
		{24.9, BMINormal},
		{25.0, BMIOverweight},
		{29.9, BMIOverweight},
		{30.0, BMIObese},
		{0, ""},
		{-3, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBMI(tt.bmi), "bmi %v", tt.bmi)
	}
}
