package domain

import "time"

// ApplicationStatus tracks the hiring pipeline.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusScreening ApplicationStatus = "screening"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusHired     ApplicationStatus = "hired"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Application links a candidate to a job posting.
type Application struct {
	ID          string
	JobID       string
	CandidateID string
	Status      ApplicationStatus
	Notes       string
	Location    string
	AppliedAt   time.Time
	UpdatedAt   time.Time
}
