package domain

import "time"

// CompanyStatus represents lifecycle states for an employer account.
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusInactive  CompanyStatus = "inactive"
	CompanyStatusPending   CompanyStatus = "pending"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

// Company models an employer. Only status "active" may authenticate.
type Company struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Industry     string
	Location     string
	Website      string
	Status       CompanyStatus
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
