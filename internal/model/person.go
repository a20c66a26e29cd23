package model

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Person struct {
	ID              string            `json:"person_id"`
	OrganizationID  string            `json:"organization_id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Role            Role              `json:"role"`
	WeeklyHours     float64           `json:"weekly_hours"`
	WorkloadPercent float64           `json:"workload_percent"`
	Memberships     []*TeamMembership `json:"memberships,omitempty"`
	Tasks           []*Task           `json:"tasks,omitempty"`
}

// TeamMembership overrides a person's capacity within a single team.
// A nil field falls back to the person's base value.
type TeamMembership struct {
	TeamID          string   `json:"team_id"`
	TeamName        string   `json:"team_name,omitempty"`
	PersonID        string   `json:"person_id"`
	WeeklyHours     *float64 `json:"weekly_hours,omitempty"`
	WorkloadPercent *float64 `json:"workload_percent,omitempty"`
}

func (m *TeamMembership) HasOverride() bool {
	return m.WeeklyHours != nil || m.WorkloadPercent != nil
}

type NewPerson struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8,max=72"`
	Role            Role    `json:"role" validate:"omitempty,oneof=admin member"`
	WeeklyHours     float64 `json:"weekly_hours" validate:"gte=0,lte=168"`
	WorkloadPercent float64 `json:"workload_percent" validate:"gte=0,lte=100"`
}

// Capacity changes a person's base hours; nil fields stay unchanged.
type Capacity struct {
	WeeklyHours     *float64 `json:"weekly_hours" validate:"omitempty,gte=0,lte=168"`
	WorkloadPercent *float64 `json:"workload_percent" validate:"omitempty,gte=0,lte=100"`
}
