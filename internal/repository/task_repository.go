package repository

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

// TaskPosition is one row of a kanban reorder batch: the task's new status
// (its column) and its index within that column.
type TaskPosition struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Position int       `json:"position" binding:"min=0"`
	Status   string    `json:"status" binding:"required,oneof=todo in-progress review done"`
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	GetByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Task, error)
	Reorder(ctx context.Context, updates []TaskPosition) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task with its project, assignee, and direct subtasks
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Preload("Subtasks").
		First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByProjectID retrieves a project's tasks in display order
func (r *TaskRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Where("project_id = ?", projectID).
		Order("position").
		Find(&tasks).Error
	return tasks, err
}

// GetByAssignee retrieves the tasks assigned to a user, newest first
func (r *TaskRepository) GetByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Where("assignee_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// Update applies a partial update and refreshes updated_at
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Task, error) {
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}
	return r.GetByID(ctx, id)
}

// Reorder persists a kanban reorder batch in a single transaction. Each task
// gets its new status and position; any failure rolls the whole batch back.
// A row that lands on its current status and position is still written.
func (r *TaskRepository) Reorder(ctx context.Context, updates []TaskPosition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&model.Task{}).
				Where("id = ?", update.ID).
				Updates(map[string]interface{}{
					"position":   update.Position,
					"status":     update.Status,
					"updated_at": time.Now(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrTaskNotFound
			}
		}
		return nil
	})
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
