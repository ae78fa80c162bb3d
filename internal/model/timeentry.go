package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry records time spent on a task. A running entry has IsRunning set
// and no EndTime; Minutes is filled in when the entry is stopped.
type TimeEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"taskId"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	Description *string    `json:"description"`
	StartTime   time.Time  `gorm:"not null" json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Minutes     *int       `json:"minutes"`
	IsRunning   bool       `gorm:"default:false" json:"isRunning"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	Task *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
