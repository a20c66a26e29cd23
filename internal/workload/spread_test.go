package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/workload-planner/internal/model"
)

func TestSpread(t *testing.T) {
	tests := []struct {
		name     string
		task     *model.Task
		today    string
		expected Allocation
	}{
		{
			name:  "success: spread over work days up to due date",
			task:  task("a", "2025-01-22", 10),
			today: "2025-01-15",
			expected: Allocation{
				TaskID: "a", Start: day("2025-01-16"), End: day("2025-01-22"),
				WorkDays: 5, HoursPerDay: 2, TotalHours: 10,
			},
		},
		{
			name:  "success: overdue task lands on next workday",
			task:  task("b", "2025-01-14", 6),
			today: "2025-01-15",
			expected: Allocation{
				TaskID: "b", Start: day("2025-01-16"), End: day("2025-01-16"),
				WorkDays: 1, HoursPerDay: 6, TotalHours: 6, Overdue: true,
			},
		},
		{
			name:  "success: due today is not overdue and collapses to next workday",
			task:  task("c", "2025-01-15", 8),
			today: "2025-01-15",
			expected: Allocation{
				TaskID: "c", Start: day("2025-01-16"), End: day("2025-01-16"),
				WorkDays: 1, HoursPerDay: 8, TotalHours: 8,
			},
		},
		{
			name:  "success: overdue on friday lands on saturday",
			task:  task("d", "2025-01-10", 4),
			today: "2025-01-17",
			expected: Allocation{
				TaskID: "d", Start: day("2025-01-18"), End: day("2025-01-18"),
				WorkDays: 1, HoursPerDay: 4, TotalHours: 4, Overdue: true,
			},
		},
		{
			name:  "success: span starting on saturday counts weekdays only",
			task:  task("e", "2025-01-21", 6),
			today: "2025-01-17",
			expected: Allocation{
				TaskID: "e", Start: day("2025-01-18"), End: day("2025-01-21"),
				WorkDays: 2, HoursPerDay: 3, TotalHours: 6,
			},
		},
		{
			name:  "success: weekend-only span collapses to its start",
			task:  task("f", "2025-01-19", 4),
			today: "2025-01-17",
			expected: Allocation{
				TaskID: "f", Start: day("2025-01-18"), End: day("2025-01-18"),
				WorkDays: 1, HoursPerDay: 4, TotalHours: 4,
			},
		},
		{
			name:  "success: due on weekend seen from saturday",
			task:  task("g", "2025-01-19", 5),
			today: "2025-01-18",
			expected: Allocation{
				TaskID: "g", Start: day("2025-01-20"), End: day("2025-01-20"),
				WorkDays: 1, HoursPerDay: 5, TotalHours: 5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Spread(tt.task, day(tt.today))
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSpread_ZeroContribution(t *testing.T) {
	completed := task("done", "2025-01-20", 4)
	completed.Completed = true

	noEstimate := task("no-estimate", "2025-01-20", 0)
	noEstimate.EstimatedHours = nil

	tests := []struct {
		name string
		task *model.Task
	}{
		{name: "failure: missing due date", task: task("no-due", "", 4)},
		{name: "failure: missing estimate", task: noEstimate},
		{name: "failure: zero estimate", task: task("zero", "2025-01-20", 0)},
		{name: "failure: negative estimate", task: task("negative", "2025-01-20", -3)},
		{name: "failure: completed task", task: completed},
		{name: "failure: nil task", task: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Spread(tt.task, day("2025-01-15"))
			assert.False(t, ok)
		})
	}
}

func TestSpreadAll(t *testing.T) {
	completed := task("done", "2025-01-20", 4)
	completed.Completed = true

	allocs, unplanned := SpreadAll([]*model.Task{
		task("a", "2025-01-22", 10),
		task("no-due", "", 4),
		completed,
		nil,
	}, day("2025-01-15"))

	require.Len(t, allocs, 1)
	assert.Equal(t, "a", allocs[0].TaskID)
	assert.Equal(t, 1, unplanned)
}
