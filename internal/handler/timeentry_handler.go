package handler

import (
	"errors"
	"net/http"
	"time"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimeEntryHandler struct {
	entryRepo repository.TimeEntryRepositoryInterface
}

func NewTimeEntryHandler(entryRepo repository.TimeEntryRepositoryInterface) *TimeEntryHandler {
	return &TimeEntryHandler{entryRepo: entryRepo}
}

type StartTimeEntryRequest struct {
	TaskID      string     `json:"taskId" binding:"required,uuid"`
	UserID      string     `json:"userId" binding:"required,uuid"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
}

// List returns a user's time entries, optionally restricted to one calendar
// day via ?date=YYYY-MM-DD.
func (h *TimeEntryHandler) List(c *gin.Context) {
	userIDStr := c.Query("userId")
	if userIDStr == "" {
		errorResponse(c, http.StatusBadRequest, "userId is required")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid userId format")
		return
	}

	var day *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, dateStr)
		}
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		day = &parsed
	}

	entries, err := h.entryRepo.GetByUser(c.Request.Context(), userID, day)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Active returns the user's running entry, or a JSON null when the timer is
// idle.
func (h *TimeEntryHandler) Active(c *gin.Context) {
	userIDStr := c.Query("userId")
	if userIDStr == "" {
		errorResponse(c, http.StatusBadRequest, "userId is required")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid userId format")
		return
	}

	entry, err := h.entryRepo.GetActive(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if entry == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Start begins a new running entry. A user with a timer already running gets
// a conflict; the prior entry is never stopped implicitly.
func (h *TimeEntryHandler) Start(c *gin.Context) {
	var req StartTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid taskId format")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid userId format")
		return
	}

	active, err := h.entryRepo.GetActive(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if active != nil {
		errorResponse(c, http.StatusConflict, "A timer is already running for this user")
		return
	}

	startTime := time.Now()
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	entry := &model.TimeEntry{
		TaskID:      taskID,
		UserID:      userID,
		Description: req.Description,
		StartTime:   startTime,
		IsRunning:   true,
	}

	if err := h.entryRepo.Create(c.Request.Context(), entry); err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Stop closes a running entry and records its rounded duration.
func (h *TimeEntryHandler) Stop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid time entry ID format")
		return
	}

	entry, err := h.entryRepo.Stop(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTimeEntryNotFound) {
			errorResponse(c, http.StatusNotFound, "Time entry not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *TimeEntryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid time entry ID format")
		return
	}

	if err := h.entryRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTimeEntryNotFound) {
			errorResponse(c, http.StatusNotFound, "Time entry not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Time entry deleted"})
}
