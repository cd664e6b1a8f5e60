package domain

import "time"

// Skill is a catalog entry used to tag candidates and jobs.
type Skill struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
