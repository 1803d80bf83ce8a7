package models

import "time"

// TaskStatus is the closed set of task lifecycle states. The lifecycle
// does not forbid any transition; the only governed effect is the
// CompletedAt stamp maintained by the task service.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusReview     TaskStatus = "REVIEW"
	StatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	BaseModel

	Title       string     `gorm:"not null"`
	Description string     `gorm:"not null"`
	Status      TaskStatus `gorm:"not null;default:TODO"`
	ProjectID   uint       `gorm:"not null;index"`
	CompletedAt *time.Time

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
