package service

import "time"

func ptr[T any](v T) *T {
	return &v
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func fixedID(id string) func() string {
	return func() string { return id }
}
