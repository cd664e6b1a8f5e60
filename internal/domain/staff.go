package domain

import "time"

// StaffRole enumerates internal back-office roles.
type StaffRole string

const (
	StaffRoleSuperAdmin StaffRole = "super_admin"
	StaffRoleAdmin      StaffRole = "admin"
	StaffRoleConsultant StaffRole = "consultant"
	StaffRoleEmployer   StaffRole = "employer"
)

// Staff models an internal CRM operator. Region may be empty for
// super admins; every other role is expected to be bound to one office.
type Staff struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         StaffRole
	Region       string
	Department   string
	Position     string
	Active       bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
