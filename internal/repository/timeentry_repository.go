package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"taskhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntryRepository struct {
	db *gorm.DB
}

type TimeEntryRepositoryInterface interface {
	Create(ctx context.Context, entry *model.TimeEntry) error
	GetByUser(ctx context.Context, userID uuid.UUID, day *time.Time) ([]model.TimeEntry, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*model.TimeEntry, error)
	Stop(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TimeEntryRepositoryInterface = (*TimeEntryRepository)(nil)

func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

func (r *TimeEntryRepository) Create(ctx context.Context, entry *model.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByUser retrieves a user's entries with their task and project, newest
// first. When day is given only entries started on that calendar day are
// returned.
func (r *TimeEntryRepository) GetByUser(ctx context.Context, userID uuid.UUID, day *time.Time) ([]model.TimeEntry, error) {
	query := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Task.Project").
		Where("user_id = ?", userID)

	if day != nil {
		startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		endOfDay := startOfDay.AddDate(0, 0, 1)
		query = query.Where("start_time >= ? AND start_time < ?", startOfDay, endOfDay)
	}

	var entries []model.TimeEntry
	err := query.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// GetActive returns the user's running entry, or nil when the timer is idle.
func (r *TimeEntryRepository) GetActive(ctx context.Context, userID uuid.UUID) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Task.Project").
		Where("user_id = ? AND is_running = ?", userID, true).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Stop closes a running entry: end_time is set to now and minutes to the
// elapsed duration rounded to the nearest minute, half away from zero.
func (r *TimeEntryRepository) Stop(ctx context.Context, id uuid.UUID) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTimeEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	minutes := roundMinutes(now.Sub(entry.StartTime))

	err = r.db.WithContext(ctx).Model(&model.TimeEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"end_time":   now,
			"minutes":    minutes,
			"is_running": false,
		}).Error
	if err != nil {
		return nil, err
	}

	entry.EndTime = &now
	entry.Minutes = &minutes
	entry.IsRunning = false
	return &entry, nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TimeEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTimeEntryNotFound
	}
	return nil
}

func roundMinutes(elapsed time.Duration) int {
	return int(math.Round(elapsed.Minutes()))
}
