package model

type Team struct {
	ID             string        `json:"team_id"`
	OrganizationID string        `json:"organization_id"`
	Name           string        `json:"team_name"`
	Members        []*TeamMember `json:"members"`
}

type TeamMember struct {
	PersonID        string   `json:"person_id"`
	Name            string   `json:"name"`
	WeeklyHours     *float64 `json:"weekly_hours,omitempty"`
	WorkloadPercent *float64 `json:"workload_percent,omitempty"`
}
