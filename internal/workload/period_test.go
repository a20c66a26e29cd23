package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekPeriod(t *testing.T) {
	tests := []struct {
		name         string
		date         string
		expectedFrom string
		expectedTo   string
	}{
		{name: "wednesday", date: "2025-01-15", expectedFrom: "2025-01-13", expectedTo: "2025-01-19"},
		{name: "monday", date: "2025-01-13", expectedFrom: "2025-01-13", expectedTo: "2025-01-19"},
		{name: "sunday belongs to previous monday", date: "2025-01-19", expectedFrom: "2025-01-13", expectedTo: "2025-01-19"},
		{name: "across year boundary", date: "2025-01-01", expectedFrom: "2024-12-30", expectedTo: "2025-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := WeekPeriod(day(tt.date))
			assert.Equal(t, day(tt.expectedFrom), p.From)
			assert.Equal(t, day(tt.expectedTo), p.To)
		})
	}
}

func TestMonthPeriod(t *testing.T) {
	p := MonthPeriod(day("2024-02-10"))
	assert.Equal(t, day("2024-02-01"), p.From)
	assert.Equal(t, day("2024-02-29"), p.To)
}

func TestMonthWeeks(t *testing.T) {
	weeks := MonthWeeks(day("2025-01-15"))
	require.Len(t, weeks, 5)

	assert.Equal(t, Period{From: day("2025-01-01"), To: day("2025-01-05")}, weeks[0])
	assert.Equal(t, Period{From: day("2025-01-06"), To: day("2025-01-12")}, weeks[1])
	assert.Equal(t, Period{From: day("2025-01-27"), To: day("2025-01-31")}, weeks[4])

	// March 2025 starts on a saturday and ends on a monday
	march := MonthWeeks(day("2025-03-10"))
	require.Len(t, march, 6)
	assert.Equal(t, Period{From: day("2025-03-01"), To: day("2025-03-02")}, march[0])
	assert.Equal(t, Period{From: day("2025-03-31"), To: day("2025-03-31")}, march[5])
}

func TestPeriod_Intersect(t *testing.T) {
	p := Period{From: day("2025-01-13"), To: day("2025-01-19")}

	got, ok := p.Intersect(Period{From: day("2025-01-16"), To: day("2025-01-22")})
	require.True(t, ok)
	assert.Equal(t, Period{From: day("2025-01-16"), To: day("2025-01-19")}, got)

	_, ok = p.Intersect(Period{From: day("2025-01-20"), To: day("2025-01-22")})
	assert.False(t, ok)
}
