package dto

import "github.com/talentdesk/recruitment-service/internal/domain"

// JobRequest payload for job creation and updates.
type JobRequest struct {
	Title        string           `json:"title"`
	CompanyID    string           `json:"company_id"`
	CompanyName  string           `json:"company_name"`
	Location     string           `json:"location"`
	Type         domain.JobType   `json:"type"`
	Salary       string           `json:"salary"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	Skills       []string         `json:"skills"`
	Status       domain.JobStatus `json:"status"`
	Remote       bool             `json:"remote"`
}

// JobResponse is the job representation returned by the API.
type JobResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	CompanyID    string           `json:"company_id"`
	CompanyName  string           `json:"company_name,omitempty"`
	Location     string           `json:"location"`
	Type         domain.JobType   `json:"type"`
	Salary       string           `json:"salary,omitempty"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements,omitempty"`
	Skills       []string         `json:"skills,omitempty"`
	Status       domain.JobStatus `json:"status"`
	Remote       bool             `json:"remote"`
}
