package dto

// CandidateRegisterRequest payload for candidate signup.
type CandidateRegisterRequest struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Phone       string   `json:"phone"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills"`
	ResumeURL   string   `json:"resume_url"`
	CoverLetter string   `json:"cover_letter"`
}

// CandidateUpdateRequest payload for partial candidate updates.
type CandidateUpdateRequest struct {
	FirstName   *string  `json:"first_name"`
	LastName    *string  `json:"last_name"`
	Phone       *string  `json:"phone"`
	Location    *string  `json:"location"`
	Skills      []string `json:"skills"`
	ResumeURL   *string  `json:"resume_url"`
	CoverLetter *string  `json:"cover_letter"`
	Active      *bool    `json:"active"`
}

// CandidateResponse is the candidate representation returned by the API.
type CandidateResponse struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills,omitempty"`
	ResumeURL   string   `json:"resume_url,omitempty"`
	CoverLetter string   `json:"cover_letter,omitempty"`
	Active      bool     `json:"active"`
}
