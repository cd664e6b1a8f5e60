package dto

import (
	"time"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// ApplicationSubmitRequest payload for filing an application.
type ApplicationSubmitRequest struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	Notes       string `json:"notes"`
}

// ApplicationStatusRequest payload for pipeline transitions.
type ApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
	Notes  string                   `json:"notes"`
}

// ApplicationResponse is the application representation returned by the API.
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	CandidateID string                   `json:"candidate_id"`
	Status      domain.ApplicationStatus `json:"status"`
	Notes       string                   `json:"notes,omitempty"`
	Location    string                   `json:"location,omitempty"`
	AppliedAt   time.Time                `json:"applied_at"`
}
