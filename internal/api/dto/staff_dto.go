package dto

import "github.com/talentdesk/recruitment-service/internal/domain"

// StaffCreateRequest payload for new staff accounts.
type StaffCreateRequest struct {
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Role       domain.StaffRole `json:"role"`
	Region     string           `json:"region"`
	Department string           `json:"department"`
	Position   string           `json:"position"`
}

// StaffUpdateRequest payload for partial staff updates.
type StaffUpdateRequest struct {
	FirstName  *string           `json:"first_name"`
	LastName   *string           `json:"last_name"`
	Email      *string           `json:"email"`
	Role       *domain.StaffRole `json:"role"`
	Region     *string           `json:"region"`
	Department *string           `json:"department"`
	Position   *string           `json:"position"`
	Active     *bool             `json:"active"`
}

// StaffResponse is the staff account representation returned by the API.
type StaffResponse struct {
	ID         string           `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	Role       domain.StaffRole `json:"role"`
	Region     string           `json:"region,omitempty"`
	Department string           `json:"department,omitempty"`
	Position   string           `json:"position,omitempty"`
	Active     bool             `json:"active"`
}
