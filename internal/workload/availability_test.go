package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yakoovad/workload-planner/internal/model"
)

func TestDeriveAvailability(t *testing.T) {
	tests := []struct {
		name            string
		person          *model.Person
		expectedWeekly  float64
		expectedPercent float64
	}{
		{
			name:            "no memberships uses base hours",
			person:          &model.Person{WeeklyHours: 40, WorkloadPercent: 80},
			expectedWeekly:  32,
			expectedPercent: 80,
		},
		{
			name: "memberships are summed and reported at full workload",
			person: &model.Person{
				WeeklyHours:     40,
				WorkloadPercent: 80,
				Memberships: []*model.TeamMembership{
					{TeamID: "t1", WeeklyHours: ptr(20.0), WorkloadPercent: ptr(100.0)},
					{TeamID: "t2", WeeklyHours: ptr(10.0), WorkloadPercent: ptr(50.0)},
				},
			},
			expectedWeekly:  25,
			expectedPercent: 100,
		},
		{
			name: "memberships without overrides are ignored",
			person: &model.Person{
				WeeklyHours:     30,
				WorkloadPercent: 100,
				Memberships: []*model.TeamMembership{
					{TeamID: "t1"},
				},
			},
			expectedWeekly:  30,
			expectedPercent: 100,
		},
		{
			name: "partial override falls back to base values",
			person: &model.Person{
				WeeklyHours:     40,
				WorkloadPercent: 50,
				Memberships: []*model.TeamMembership{
					{TeamID: "t1", WeeklyHours: ptr(10.0)},
					{TeamID: "t2", WorkloadPercent: ptr(25.0)},
				},
			},
			expectedWeekly:  15,
			expectedPercent: 100,
		},
		{
			name:            "nil person",
			person:          nil,
			expectedWeekly:  0,
			expectedPercent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAvailability(tt.person)
			assert.InDelta(t, tt.expectedWeekly, got.Weekly(), 1e-9)
			assert.Equal(t, tt.expectedPercent, got.WorkloadPercent)
		})
	}
}

func TestAvailability_Periods(t *testing.T) {
	a := DeriveAvailability(&model.Person{WeeklyHours: 40, WorkloadPercent: 100})

	assert.InDelta(t, 40.0, a.Weekly(), 1e-9)
	assert.InDelta(t, 8.0, a.Daily(), 1e-9)
	assert.InDelta(t, 173.2, a.Monthly(), 1e-9)
}
