package domain

import "time"

// TaskStatus represents calendar task completion states.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusDone      TaskStatus = "done"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// CalendarTask is a scheduled item assigned to a staff member.
type CalendarTask struct {
	ID          string
	Title       string
	Description string
	AssigneeID  *string
	Location    string
	Status      TaskStatus
	DueAt       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
