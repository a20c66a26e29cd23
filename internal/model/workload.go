package model

// Band is the color-coded utilization range shown next to a load figure.
type Band string

const (
	BandGreen  Band = "green"
	BandBlue   Band = "blue"
	BandOrange Band = "orange"
	BandRed    Band = "red"
)

type PeriodLoad struct {
	From           Date    `json:"from"`
	To             Date    `json:"to"`
	AssignedHours  float64 `json:"assigned_hours"`
	AvailableHours float64 `json:"available_hours"`
	Utilization    float64 `json:"utilization"`
	Band           Band    `json:"band"`
}

type WeekLoad struct {
	Year int `json:"iso_year"`
	Week int `json:"iso_week"`
	PeriodLoad
}

type PersonWorkload struct {
	PersonID         string     `json:"person_id"`
	Name             string     `json:"name"`
	WeeklyAvailable  float64    `json:"weekly_available_hours"`
	DailyAvailable   float64    `json:"daily_available_hours"`
	MonthlyAvailable float64    `json:"monthly_available_hours"`
	Today            PeriodLoad `json:"today"`
	ThisWeek         PeriodLoad `json:"this_week"`
	ThisMonth        PeriodLoad `json:"this_month"`
	Weeks            []WeekLoad `json:"weeks"`
	OpenTasks        int        `json:"open_tasks"`
	OverdueTasks     int        `json:"overdue_tasks"`
	UnplannedTasks   int        `json:"unplanned_tasks"`
}

type WorkloadReport struct {
	OrganizationID string            `json:"organization_id"`
	TeamID         *string           `json:"team_id,omitempty"`
	Date           Date              `json:"date"`
	Today          PeriodLoad        `json:"today"`
	ThisWeek       PeriodLoad        `json:"this_week"`
	ThisMonth      PeriodLoad        `json:"this_month"`
	People         []*PersonWorkload `json:"people"`
}
