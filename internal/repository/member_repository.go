package repository

import (
	"context"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

type MemberRepositoryInterface interface {
	Add(ctx context.Context, member *model.ProjectMember) error
	Remove(ctx context.Context, projectID, userID uuid.UUID) error
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMember, error)
}

var _ MemberRepositoryInterface = (*MemberRepository)(nil)

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Add links a user to a project with the given role.
func (r *MemberRepository) Add(ctx context.Context, member *model.ProjectMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Remove deletes the membership of a user on a project.
func (r *MemberRepository) Remove(ctx context.Context, projectID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&model.ProjectMember{}).Error
}

// GetByProjectID returns a project's members with their user records.
func (r *MemberRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.ProjectMember, error) {
	var members []model.ProjectMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Find(&members).Error
	return members, err
}
