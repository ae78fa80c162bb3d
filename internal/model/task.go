package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	Description      *string    `json:"description"`
	Status           string     `gorm:"not null;default:'todo'" json:"status"`
	Priority         string     `gorm:"not null;default:'medium'" json:"priority"`
	ProjectID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"projectId"`
	AssigneeID       *uuid.UUID `gorm:"type:uuid" json:"assigneeId"`
	ParentTaskID     *uuid.UUID `gorm:"type:uuid" json:"parentTaskId"`
	DueDate          *time.Time `json:"dueDate"`
	CompletedAt      *time.Time `json:"completedAt"`
	Position         int        `gorm:"not null;default:0" json:"position"`
	EstimatedMinutes *int       `json:"estimatedMinutes"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignee *User    `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	// Subtasks models the parent/child self-reference. Only one level is ever
	// loaded; nothing traverses deeper.
	Subtasks []Task `gorm:"foreignKey:ParentTaskID" json:"subtasks,omitempty"`
}

// Task statuses double as kanban columns. Any status can follow any other.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusReview     = "review"
	TaskStatusDone       = "done"
)

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)
