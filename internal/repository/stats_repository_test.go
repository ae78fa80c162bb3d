package repository_test

import (
	"context"
	"testing"
	"time"

	"taskhub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatsRepository_UserStats(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	statsRepo := repository.NewStatsRepository(gormDB)

	userID := uuid.New()
	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	// Entries are fetched unfiltered; the month window is applied in process.
	// 90 minutes this month rounds to 2 hours; last month's 600 and the
	// null-minute entry are ignored.
	mock.ExpectQuery(`SELECT .* FROM "time_entries" WHERE user_id = .*`).
		WillReturnRows(sqlmock.NewRows(timeEntryColumns()).
			AddRow(uuid.New().String(), uuid.New().String(), userID.String(), nil, thisMonth, nil, 90, false, thisMonth).
			AddRow(uuid.New().String(), uuid.New().String(), userID.String(), nil, lastMonth, nil, 600, false, lastMonth).
			AddRow(uuid.New().String(), uuid.New().String(), userID.String(), nil, thisMonth, nil, nil, true, thisMonth))

	mock.ExpectQuery(`(?i)SELECT count\(DISTINCT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	stats, err := statsRepo.UserStats(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.ActiveProjects)
	assert.Equal(t, int64(7), stats.CompletedTasks)
	assert.Equal(t, 2, stats.HoursThisMonth)
	assert.Equal(t, int64(3), stats.TeamMembers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_UserStats_Empty(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	statsRepo := repository.NewStatsRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .* FROM "time_entries" WHERE user_id = .*`).
		WillReturnRows(sqlmock.NewRows(timeEntryColumns()))
	mock.ExpectQuery(`(?i)SELECT count\(DISTINCT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	stats, err := statsRepo.UserStats(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Zero(t, stats.ActiveProjects)
	assert.Zero(t, stats.CompletedTasks)
	assert.Zero(t, stats.HoursThisMonth)
	assert.Zero(t, stats.TeamMembers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
