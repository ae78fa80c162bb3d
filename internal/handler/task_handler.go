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

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

type CreateTaskRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status" binding:"omitempty,oneof=todo in-progress review done"`
	Priority         *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProjectID        string     `json:"projectId" binding:"required,uuid"`
	AssigneeID       *string    `json:"assigneeId" binding:"omitempty,uuid"`
	ParentTaskID     *string    `json:"parentTaskId" binding:"omitempty,uuid"`
	DueDate          *time.Time `json:"dueDate"`
	Position         *int       `json:"position" binding:"omitempty,min=0"`
	EstimatedMinutes *int       `json:"estimatedMinutes" binding:"omitempty,min=0"`
}

type UpdateTaskRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status" binding:"omitempty,oneof=todo in-progress review done"`
	Priority         *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	AssigneeID       *string    `json:"assigneeId" binding:"omitempty,uuid"`
	DueDate          *time.Time `json:"dueDate"`
	Position         *int       `json:"position" binding:"omitempty,min=0"`
	EstimatedMinutes *int       `json:"estimatedMinutes" binding:"omitempty,min=0"`
}

// List returns a project's tasks in board order, or a user's assigned tasks
// when userId is given instead.
func (h *TaskHandler) List(c *gin.Context) {
	projectIDStr := c.Query("projectId")
	userIDStr := c.Query("userId")

	switch {
	case projectIDStr != "":
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid projectId format")
			return
		}
		tasks, err := h.taskRepo.GetByProjectID(c.Request.Context(), projectID)
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, tasks)

	case userIDStr != "":
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid userId format")
			return
		}
		tasks, err := h.taskRepo.GetByAssignee(c.Request.Context(), userID)
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, tasks)

	default:
		errorResponse(c, http.StatusBadRequest, "projectId or userId is required")
	}
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid projectId format")
		return
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatusTodo,
		Priority:    model.PriorityMedium,
		ProjectID:   projectID,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Position != nil {
		task.Position = *req.Position
	}
	task.EstimatedMinutes = req.EstimatedMinutes
	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid assigneeId format")
			return
		}
		task.AssigneeID = &assigneeID
	}
	if req.ParentTaskID != nil {
		parentID, err := uuid.Parse(*req.ParentTaskID)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid parentTaskId format")
			return
		}
		task.ParentTaskID = &parentID
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.AssigneeID != nil {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "Invalid assigneeId format")
			return
		}
		updates["assignee_id"] = assigneeID
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.EstimatedMinutes != nil {
		updates["estimated_minutes"] = *req.EstimatedMinutes
	}

	task, err := h.taskRepo.Update(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdatePositions applies a kanban reorder batch atomically. Each element
// carries a task id, its target column as a status, and its index in that
// column.
func (h *TaskHandler) UpdatePositions(c *gin.Context) {
	var updates []repository.TaskPosition
	if err := c.ShouldBindJSON(&updates); err != nil {
		validationError(c, err)
		return
	}

	if err := h.taskRepo.Reorder(c.Request.Context(), updates); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task positions updated"})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			errorResponse(c, http.StatusNotFound, "Task not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
