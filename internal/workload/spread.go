package workload

import (
	"time"

	"github.com/yakoovad/workload-planner/internal/model"
)

// Allocation is the share of a task's estimate planned on each work day of
// [Start, End]. A single-day allocation puts TotalHours on Start, whatever
// weekday that is.
type Allocation struct {
	TaskID      string
	Start       time.Time
	End         time.Time
	WorkDays    int
	HoursPerDay float64
	TotalHours  float64
	Overdue     bool
}

func (a Allocation) SingleDay() bool {
	return a.Start.Equal(a.End)
}

// Spread plans a task relative to today. The second result is false when the
// task contributes nothing: it is completed, or lacks a due date or a
// positive estimate.
func Spread(task *model.Task, today time.Time) (Allocation, bool) {
	if task == nil || task.Completed || task.DueDate == nil || task.EstimatedHours == nil {
		return Allocation{}, false
	}

	hours := *task.EstimatedHours
	if hours <= 0 {
		return Allocation{}, false
	}

	today = Date(today)
	due := Date(task.DueDate.Time)
	start := NextWorkday(today)

	if due.Before(today) {
		return singleDay(task.ID, start, hours, true), true
	}

	if start.After(due) {
		return singleDay(task.ID, start, hours, false), true
	}

	days := CountWorkdays(start, due)
	if days == 0 {
		// span covers only a weekend
		return singleDay(task.ID, start, hours, false), true
	}

	return Allocation{
		TaskID:      task.ID,
		Start:       start,
		End:         due,
		WorkDays:    days,
		HoursPerDay: hours / float64(days),
		TotalHours:  hours,
	}, true
}

func singleDay(taskID string, day time.Time, hours float64, overdue bool) Allocation {
	return Allocation{
		TaskID:      taskID,
		Start:       day,
		End:         day,
		WorkDays:    1,
		HoursPerDay: hours,
		TotalHours:  hours,
		Overdue:     overdue,
	}
}

// SpreadAll plans every task and reports how many were left unplanned.
func SpreadAll(tasks []*model.Task, today time.Time) ([]Allocation, int) {
	allocs := make([]Allocation, 0, len(tasks))
	unplanned := 0
	for _, t := range tasks {
		if t == nil || t.Completed {
			continue
		}
		a, ok := Spread(t, today)
		if !ok {
			unplanned++
			continue
		}
		allocs = append(allocs, a)
	}
	return allocs, unplanned
}
