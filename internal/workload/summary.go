package workload

import (
	"time"

	"github.com/yakoovad/workload-planner/internal/model"
)

// Summarize computes a person's load for the day, week and month containing
// date, with tasks planned relative to today.
func Summarize(p *model.Person, today, date time.Time) *model.PersonWorkload {
	avail := DeriveAvailability(p)
	allocs, unplanned := SpreadAll(p.Tasks, today)

	res := &model.PersonWorkload{
		PersonID:         p.ID,
		Name:             p.Name,
		WeeklyAvailable:  avail.Weekly(),
		DailyAvailable:   avail.Daily(),
		MonthlyAvailable: avail.Monthly(),
		OpenTasks:        len(allocs) + unplanned,
		UnplannedTasks:   unplanned,
	}

	for _, a := range allocs {
		if a.Overdue {
			res.OverdueTasks++
		}
	}

	day, week, month := DayPeriod(date), WeekPeriod(date), MonthPeriod(date)
	res.Today = Load(day, SumHours(allocs, day), avail.Daily())
	res.ThisWeek = Load(week, SumHours(allocs, week), avail.Weekly())
	res.ThisMonth = Load(month, SumHours(allocs, month), avail.Monthly())

	weeks := MonthWeeks(date)
	res.Weeks = make([]model.WeekLoad, 0, len(weeks))
	for _, w := range weeks {
		year, num := w.From.ISOWeek()
		res.Weeks = append(res.Weeks, model.WeekLoad{
			Year:       year,
			Week:       num,
			PeriodLoad: Load(w, SumHours(allocs, w), avail.Daily()*float64(w.Workdays())),
		})
	}

	return res
}

// Combine adds up the figures of several people into one load per period.
func Combine(people []*model.PersonWorkload, date time.Time) (today, week, month model.PeriodLoad) {
	var (
		assigned  [3]float64
		available [3]float64
	)
	for _, p := range people {
		assigned[0] += p.Today.AssignedHours
		available[0] += p.Today.AvailableHours
		assigned[1] += p.ThisWeek.AssignedHours
		available[1] += p.ThisWeek.AvailableHours
		assigned[2] += p.ThisMonth.AssignedHours
		available[2] += p.ThisMonth.AvailableHours
	}

	today = Load(DayPeriod(date), assigned[0], available[0])
	week = Load(WeekPeriod(date), assigned[1], available[1])
	month = Load(MonthPeriod(date), assigned[2], available[2])
	return today, week, month
}
