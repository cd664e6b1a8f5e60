package domain

import "time"

// Candidate models a job seeker. Location stands in for the office
// region when computing visibility scope.
type Candidate struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Location     string
	Skills       []string
	ResumeURL    string
	CoverLetter  string
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
