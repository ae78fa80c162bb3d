package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMember links a user to a project. The owner is not stored here;
// ownership lives on the project row itself.
type ProjectMember struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"projectId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Role      string    `gorm:"not null;default:'member'" json:"role"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"addedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Member roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)
