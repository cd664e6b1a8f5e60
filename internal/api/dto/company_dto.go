package dto

import "github.com/talentdesk/recruitment-service/internal/domain"

// CompanyRegisterRequest payload for employer signup.
type CompanyRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	Website  string `json:"website"`
}

// CompanyUpdateRequest payload for partial company updates.
type CompanyUpdateRequest struct {
	Name     *string               `json:"name"`
	Industry *string               `json:"industry"`
	Location *string               `json:"location"`
	Website  *string               `json:"website"`
	Status   *domain.CompanyStatus `json:"status"`
}

// CompanyResponse is the company representation returned by the API.
type CompanyResponse struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	Industry string               `json:"industry,omitempty"`
	Location string               `json:"location"`
	Website  string               `json:"website,omitempty"`
	Status   domain.CompanyStatus `json:"status"`
}
