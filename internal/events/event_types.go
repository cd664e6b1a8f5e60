package events

import (
	"time"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCandidateRegistered      EventType = "candidate_registered"
	EventCompanyRegistered        EventType = "company_registered"
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
	EventTaskAssigned             EventType = "task_assigned"
	EventPasswordResetRequested   EventType = "password_reset_requested"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Kind        domain.PrincipalKind `json:"kind"`
	PrincipalID string               `json:"principal_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	JobID       string `json:"job_id"`
	CandidateID string `json:"candidate_id"`
	Location    string `json:"location,omitempty"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	OldStatus domain.ApplicationStatus `json:"old_status"`
	NewStatus domain.ApplicationStatus `json:"new_status"`
	Notes     string                   `json:"notes,omitempty"`
}

// TaskAssignedPayload payload.
type TaskAssignedPayload struct {
	AssigneeID string    `json:"assignee_id"`
	Title      string    `json:"title"`
	DueAt      time.Time `json:"due_at"`
}

// PasswordResetRequestedPayload carries the reset token for delivery.
// It is never returned over HTTP.
type PasswordResetRequestedPayload struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PrincipalRegisteredPayload payload for candidate/company signups.
type PrincipalRegisteredPayload struct {
	Email    string `json:"email"`
	Location string `json:"location,omitempty"`
}
