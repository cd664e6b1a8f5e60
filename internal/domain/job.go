package domain

import "time"

// JobType enumerates employment arrangements.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

// JobStatus represents posting visibility states.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusDraft  JobStatus = "draft"
	JobStatusClosed JobStatus = "closed"
)

// Job is a posting created on behalf of a company.
type Job struct {
	ID           string
	Title        string
	CompanyID    string
	CompanyName  string
	Location     string
	Type         JobType
	Salary       string
	Description  string
	Requirements string
	Skills       []string
	Status       JobStatus
	Remote       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
