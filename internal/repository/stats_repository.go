package repository

import (
	"context"
	"math"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStats are the dashboard aggregates for one user, recomputed in full on
// every call.
type UserStats struct {
	ActiveProjects int64 `json:"activeProjects"`
	CompletedTasks int64 `json:"completedTasks"`
	HoursThisMonth int   `json:"hoursThisMonth"`
	TeamMembers    int64 `json:"teamMembers"`
}

type StatsRepository struct {
	db *gorm.DB
}

type StatsRepositoryInterface interface {
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
}

var _ StatsRepositoryInterface = (*StatsRepository)(nil)

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// UserStats computes the dashboard numbers for a user: owned projects that
// are active, done tasks across owned projects, hours logged this calendar
// month, and distinct members across owned projects.
func (r *StatsRepository) UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	stats := &UserStats{}

	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("owner_id = ? AND status = ?", userID, model.ProjectStatusActive).
		Count(&stats.ActiveProjects).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&model.Task{}).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.owner_id = ? AND tasks.status = ?", userID, model.TaskStatusDone).
		Count(&stats.CompletedTasks).Error
	if err != nil {
		return nil, err
	}

	// The month window is applied in process over the user's entries, not as
	// a database-side date filter.
	var entries []model.TimeEntry
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfNextMonth := startOfMonth.AddDate(0, 1, 0)

	totalMinutes := 0
	for _, entry := range entries {
		if entry.StartTime.Before(startOfMonth) || !entry.StartTime.Before(startOfNextMonth) {
			continue
		}
		if entry.Minutes != nil {
			totalMinutes += *entry.Minutes
		}
	}
	stats.HoursThisMonth = int(math.Round(float64(totalMinutes) / 60))

	err = r.db.WithContext(ctx).Model(&model.ProjectMember{}).
		Joins("JOIN projects ON projects.id = project_members.project_id").
		Where("projects.owner_id = ?", userID).
		Distinct("project_members.user_id").
		Count(&stats.TeamMembers).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
