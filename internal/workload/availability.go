package workload

import "github.com/yakoovad/workload-planner/internal/model"

const (
	WorkdaysPerWeek = 5
	WeeksPerMonth   = 4.33
)

// Availability is a capacity expressed as base hours scaled by a percentage.
type Availability struct {
	WeeklyHours     float64
	WorkloadPercent float64
}

// DeriveAvailability sums weeklyHours × workload / 100 over every membership
// carrying an override and reports the sum at 100%. A person without such
// memberships keeps their own base hours and percentage.
func DeriveAvailability(p *model.Person) Availability {
	if p == nil {
		return Availability{}
	}

	var (
		sum        float64
		overridden int
	)
	for _, m := range p.Memberships {
		if m == nil || !m.HasOverride() {
			continue
		}

		hours, pct := p.WeeklyHours, p.WorkloadPercent
		if m.WeeklyHours != nil {
			hours = *m.WeeklyHours
		}
		if m.WorkloadPercent != nil {
			pct = *m.WorkloadPercent
		}

		sum += hours * pct / 100
		overridden++
	}

	if overridden > 0 {
		return Availability{WeeklyHours: sum, WorkloadPercent: 100}
	}
	return Availability{WeeklyHours: p.WeeklyHours, WorkloadPercent: p.WorkloadPercent}
}

func (a Availability) Weekly() float64 {
	return a.WeeklyHours * a.WorkloadPercent / 100
}

func (a Availability) Daily() float64 {
	return a.Weekly() / WorkdaysPerWeek
}

func (a Availability) Monthly() float64 {
	return a.Weekly() * WeeksPerMonth
}
