package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/workload-planner/internal/model"
)

func TestAllocation_HoursIn(t *testing.T) {
	spread, ok := Spread(task("a", "2025-01-22", 10), day("2025-01-15"))
	require.True(t, ok)

	saturday, ok := Spread(task("b", "2025-01-10", 4), day("2025-01-17"))
	require.True(t, ok)

	tests := []struct {
		name       string
		allocation Allocation
		period     Period
		expected   float64
	}{
		{name: "day before start", allocation: spread, period: DayPeriod(day("2025-01-15")), expected: 0},
		{name: "first day", allocation: spread, period: DayPeriod(day("2025-01-16")), expected: 2},
		{name: "weekend inside span", allocation: spread, period: DayPeriod(day("2025-01-18")), expected: 0},
		{name: "first week", allocation: spread, period: WeekPeriod(day("2025-01-15")), expected: 4},
		{name: "second week", allocation: spread, period: WeekPeriod(day("2025-01-20")), expected: 6},
		{name: "whole month", allocation: spread, period: MonthPeriod(day("2025-01-15")), expected: 10},
		{name: "other month", allocation: spread, period: MonthPeriod(day("2025-02-15")), expected: 0},
		{name: "single day on saturday", allocation: saturday, period: WeekPeriod(day("2025-01-17")), expected: 4},
		{name: "single day outside period", allocation: saturday, period: WeekPeriod(day("2025-01-20")), expected: 0},
		{name: "single day on saturday itself", allocation: saturday, period: DayPeriod(day("2025-01-18")), expected: 4},
		{name: "single day on saturday in month", allocation: saturday, period: MonthPeriod(day("2025-01-17")), expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.allocation.HoursIn(tt.period), 1e-9)
		})
	}
}

func TestSumHours(t *testing.T) {
	allocs, _ := SpreadAll([]*model.Task{
		task("a", "2025-01-22", 10),
		task("b", "2025-01-14", 6),
	}, day("2025-01-15"))

	assert.InDelta(t, 8.0, SumHours(allocs, DayPeriod(day("2025-01-16"))), 1e-9)
	assert.InDelta(t, 10.0, SumHours(allocs, WeekPeriod(day("2025-01-15"))), 1e-9)
	assert.InDelta(t, 16.0, SumHours(allocs, MonthPeriod(day("2025-01-15"))), 1e-9)
	assert.Zero(t, SumHours(nil, MonthPeriod(day("2025-01-15"))))
}
