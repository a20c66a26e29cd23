// Package workload derives availability, spreads task estimates over work
// days and aggregates them into utilization figures. Everything here is a
// pure function of its arguments; callers pass "today" explicitly.
package workload

import "time"

// Date truncates t to its calendar day at UTC midnight. The wall-clock date
// of t is kept, so convert t into the planning timezone first.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func IsWorkday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextWorkday only skips a weekend when today lies on it. Every other day
// maps to the following calendar day, so a Friday yields a Saturday.
func NextWorkday(today time.Time) time.Time {
	today = Date(today)
	if today.Weekday() == time.Saturday {
		return today.AddDate(0, 0, 2)
	}
	return today.AddDate(0, 0, 1)
}

// CountWorkdays counts Monday to Friday days in [from, to], both inclusive.
func CountWorkdays(from, to time.Time) int {
	from, to = Date(from), Date(to)
	n := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsWorkday(d) {
			n++
		}
	}
	return n
}
