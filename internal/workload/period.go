package workload

import "time"

// Period is an inclusive range of calendar days.
type Period struct {
	From time.Time
	To   time.Time
}

func DayPeriod(date time.Time) Period {
	d := Date(date)
	return Period{From: d, To: d}
}

// WeekPeriod returns Monday to Sunday of the week containing date.
func WeekPeriod(date time.Time) Period {
	d := Date(date)
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return Period{From: monday, To: monday.AddDate(0, 0, 6)}
}

func MonthPeriod(date time.Time) Period {
	d := Date(date)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{From: first, To: first.AddDate(0, 1, -1)}
}

// MonthWeeks returns one period per ISO week overlapping the month of date,
// each clipped to the month.
func MonthWeeks(date time.Time) []Period {
	month := MonthPeriod(date)

	weeks := make([]Period, 0, 6)
	for monday := WeekPeriod(month.From).From; !monday.After(month.To); monday = monday.AddDate(0, 0, 7) {
		week := Period{From: monday, To: monday.AddDate(0, 0, 6)}
		if clipped, ok := week.Intersect(month); ok {
			weeks = append(weeks, clipped)
		}
	}
	return weeks
}

func (p Period) Contains(t time.Time) bool {
	d := Date(t)
	return !d.Before(p.From) && !d.After(p.To)
}

func (p Period) Intersect(q Period) (Period, bool) {
	from, to := p.From, p.To
	if q.From.After(from) {
		from = q.From
	}
	if q.To.Before(to) {
		to = q.To
	}
	if from.After(to) {
		return Period{}, false
	}
	return Period{From: from, To: to}, true
}

func (p Period) Workdays() int {
	return CountWorkdays(p.From, p.To)
}
