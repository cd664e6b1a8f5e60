package domain

import "time"

// ProjectStatus represents recruitment project states.
type ProjectStatus string

const (
	ProjectStatusOpen      ProjectStatus = "open"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project groups jobs and tasks run for one client company.
type Project struct {
	ID          string
	Name        string
	Description string
	CompanyID   *string
	Location    string
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
