package dto

import (
	"time"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// SkillRequest payload for skill creation and updates.
type SkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SkillResponse is the skill representation returned by the API.
type SkillResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// CalendarTaskRequest payload for task creation and updates.
type CalendarTaskRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AssigneeID  *string           `json:"assignee_id"`
	Location    string            `json:"location"`
	Status      domain.TaskStatus `json:"status"`
	DueAt       time.Time         `json:"due_at"`
}

// CalendarTaskResponse is the task representation returned by the API.
type CalendarTaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	AssigneeID  *string           `json:"assignee_id,omitempty"`
	Location    string            `json:"location,omitempty"`
	Status      domain.TaskStatus `json:"status"`
	DueAt       time.Time         `json:"due_at"`
}

// ProjectRequest payload for project creation and updates.
type ProjectRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	CompanyID   *string              `json:"company_id"`
	Location    string               `json:"location"`
	Status      domain.ProjectStatus `json:"status"`
}

// ProjectResponse is the project representation returned by the API.
type ProjectResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	CompanyID   *string              `json:"company_id,omitempty"`
	Location    string               `json:"location,omitempty"`
	Status      domain.ProjectStatus `json:"status"`
}

// GenerateEmailRequest payload for the completion endpoint.
type GenerateEmailRequest struct {
	RecipientName string `json:"recipient_name"`
	Prompt        string `json:"prompt"`
}
