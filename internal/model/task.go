package model

import "time"

// Task is a subtask of a ticket. DueDate is a calendar date at UTC midnight.
type Task struct {
	ID             string     `json:"task_id"`
	OrganizationID string     `json:"organization_id"`
	Title          string     `json:"title"`
	DueDate        *Date      `json:"due_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	Completed      bool       `json:"completed"`
	AssigneeID     *string    `json:"assignee_id,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

type NewTask struct {
	Title          string
	DueDate        *time.Time
	EstimatedHours *float64
	AssigneeID     *string
}
