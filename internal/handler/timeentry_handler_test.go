package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskhub/internal/handler"
	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTimeEntryTest() (*gin.Engine, *MockTimeEntryRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockTimeEntryRepository)
	entryHandler := handler.NewTimeEntryHandler(mockRepo)

	r.GET("/api/time-entries", entryHandler.List)
	r.GET("/api/time-entries/active", entryHandler.Active)
	r.POST("/api/time-entries", entryHandler.Start)
	r.PUT("/api/time-entries/:id/stop", entryHandler.Stop)
	r.DELETE("/api/time-entries/:id", entryHandler.Delete)

	return r, mockRepo
}

func TestStartTimer_Success(t *testing.T) {
	router, mockRepo := setupTimeEntryTest()

	taskID := uuid.New()
	userID := uuid.New()

	mockRepo.On("GetActive", mock.Anything, userID).Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *model.TimeEntry) bool {
		return entry.IsRunning &&
			entry.EndTime == nil &&
			entry.Minutes == nil &&
			entry.TaskID == taskID &&
			entry.UserID == userID
	})).Return(nil)

	body := fmt.Sprintf(`{"taskId":%q,"userId":%q}`, taskID.String(), userID.String())
	req, _ := http.NewRequest("POST", "/api/time-entries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var entry model.TimeEntry
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &entry))
	assert.True(t, entry.IsRunning)
	assert.False(t, entry.StartTime.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestStartTimer_AlreadyRunning(t *testing.T) {
	router, mockRepo := setupTimeEntryTest()

	taskID := uuid.New()
	userID := uuid.New()

	running := &model.TimeEntry{
		ID:        uuid.New(),
		TaskID:    taskID,
		UserID:    userID,
		StartTime: time.Now().Add(-10 * time.Minute),
		IsRunning: true,
	}
	mockRepo.On("GetActive", mock.Anything, userID).Return(running, nil)

	body := fmt.Sprintf(`{"taskId":%q,"userId":%q}`, taskID.String(), userID.String())
	req, _ := http.NewRequest("POST", "/api/time-entries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStopTimer_NotFound(t *testing.T) {
	router, mockRepo := setupTimeEntryTest()

	entryID := uuid.New()
	mockRepo.On("Stop", mock.Anything, entryID).Return(nil, repository.ErrTimeEntryNotFound)

	req, _ := http.NewRequest("PUT", "/api/time-entries/"+entryID.String()+"/stop", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Time entry not found")
}

func TestActiveTimer_None(t *testing.T) {
	router, mockRepo := setupTimeEntryTest()

	userID := uuid.New()
	mockRepo.On("GetActive", mock.Anything, userID).Return(nil, nil)

	req, _ := http.NewRequest("GET", "/api/time-entries/active?userId="+userID.String(), nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "null", resp.Body.String())
}

func TestListEntries_DayFilter(t *testing.T) {
	router, mockRepo := setupTimeEntryTest()

	userID := uuid.New()
	mockRepo.On("GetByUser", mock.Anything, userID, mock.MatchedBy(func(day *time.Time) bool {
		return day != nil && day.Year() == 2026 && day.Month() == time.March && day.Day() == 14
	})).Return([]model.TimeEntry{}, nil)

	req, _ := http.NewRequest("GET", "/api/time-entries?userId="+userID.String()+"&date=2026-03-14", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestListEntries_MissingUserID(t *testing.T) {
	router, _ := setupTimeEntryTest()

	req, _ := http.NewRequest("GET", "/api/time-entries", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "userId is required")
}
