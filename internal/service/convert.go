package service

import (
	"time"

	"github.com/yakoovad/workload-planner/internal/model"
	"github.com/yakoovad/workload-planner/internal/repository"
)

func toModelPerson(p *repository.Person) *model.Person {
	return &model.Person{
		ID:              p.ID,
		OrganizationID:  p.OrganizationID,
		Name:            p.Name,
		Email:           p.Email,
		Role:            p.Role,
		WeeklyHours:     p.WeeklyHours,
		WorkloadPercent: p.WorkloadPercent,
	}
}

func toModelMembership(m *repository.Membership) *model.TeamMembership {
	return &model.TeamMembership{
		TeamID:          m.TeamID,
		TeamName:        m.TeamName,
		PersonID:        m.PersonID,
		WeeklyHours:     m.WeeklyHours,
		WorkloadPercent: m.WorkloadPercent,
	}
}

func toModelTask(t *repository.Task) *model.Task {
	return &model.Task{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		Title:          t.Title,
		DueDate:        toModelDate(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		Completed:      t.Completed,
		AssigneeID:     t.AssigneeID,
		CreatedAt:      t.CreatedAt,
	}
}

func toModelDate(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	d := model.NewDate(*t)
	return &d
}
