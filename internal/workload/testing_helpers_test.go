package workload

import (
	"time"

	"github.com/yakoovad/workload-planner/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}

func task(id, due string, hours float64) *model.Task {
	t := &model.Task{ID: id, Title: id, EstimatedHours: ptr(hours)}
	if due != "" {
		t.DueDate = ptr(model.NewDate(day(due)))
	}
	return t
}
