package handler

import (
	"net/http"
	"time"

	"taskhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler flattens a user's projects, tasks, and time entries into one
// denormalized document for external BI tooling.
type ExportHandler struct {
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	entryRepo   repository.TimeEntryRepositoryInterface
}

func NewExportHandler(
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	entryRepo repository.TimeEntryRepositoryInterface,
) *ExportHandler {
	return &ExportHandler{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		entryRepo:   entryRepo,
	}
}

type ExportProjectRow struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ExportTaskRow struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	ProjectID        uuid.UUID  `json:"projectId"`
	ProjectName      string     `json:"projectName"`
	AssigneeID       *uuid.UUID `json:"assigneeId"`
	AssigneeName     *string    `json:"assigneeName"`
	DueDate          *time.Time `json:"dueDate"`
	CompletedAt      *time.Time `json:"completedAt"`
	EstimatedMinutes *int       `json:"estimatedMinutes"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type ExportTimeEntryRow struct {
	ID          uuid.UUID  `json:"id"`
	TaskID      uuid.UUID  `json:"taskId"`
	TaskTitle   string     `json:"taskTitle"`
	ProjectID   *uuid.UUID `json:"projectId"`
	ProjectName *string    `json:"projectName"`
	UserID      uuid.UUID  `json:"userId"`
	Description *string    `json:"description"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Minutes     *int       `json:"minutes"`
	IsRunning   bool       `json:"isRunning"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ExportDocument struct {
	Projects    []ExportProjectRow   `json:"projects"`
	Tasks       []ExportTaskRow      `json:"tasks"`
	TimeEntries []ExportTimeEntryRow `json:"timeEntries"`
}

// ExportForBI builds the full export document for a user. Pure read, no
// pagination: the user's entire history goes out in one response.
func (h *ExportHandler) ExportForBI(c *gin.Context) {
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

	ctx := c.Request.Context()

	projects, err := h.projectRepo.GetOwned(ctx, userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	tasks, err := h.taskRepo.GetByAssignee(ctx, userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	entries, err := h.entryRepo.GetByUser(ctx, userID, nil)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	doc := ExportDocument{
		Projects:    make([]ExportProjectRow, len(projects)),
		Tasks:       make([]ExportTaskRow, len(tasks)),
		TimeEntries: make([]ExportTimeEntryRow, len(entries)),
	}

	for i, p := range projects {
		doc.Projects[i] = ExportProjectRow{
			ID:        p.ID,
			Name:      p.Name,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}

	for i, t := range tasks {
		row := ExportTaskRow{
			ID:               t.ID,
			Title:            t.Title,
			Status:           t.Status,
			Priority:         t.Priority,
			ProjectID:        t.ProjectID,
			AssigneeID:       t.AssigneeID,
			DueDate:          t.DueDate,
			CompletedAt:      t.CompletedAt,
			EstimatedMinutes: t.EstimatedMinutes,
			CreatedAt:        t.CreatedAt,
			UpdatedAt:        t.UpdatedAt,
		}
		if t.Project != nil {
			row.ProjectName = t.Project.Name
		}
		if t.Assignee != nil {
			row.AssigneeName = &t.Assignee.FullName
		}
		doc.Tasks[i] = row
	}

	for i, e := range entries {
		row := ExportTimeEntryRow{
			ID:          e.ID,
			TaskID:      e.TaskID,
			UserID:      e.UserID,
			Description: e.Description,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Minutes:     e.Minutes,
			IsRunning:   e.IsRunning,
			CreatedAt:   e.CreatedAt,
		}
		if e.Task != nil {
			row.TaskTitle = e.Task.Title
			row.ProjectID = &e.Task.ProjectID
			if e.Task.Project != nil {
				row.ProjectName = &e.Task.Project.Name
			}
		}
		doc.TimeEntries[i] = row
	}

	c.JSON(http.StatusOK, doc)
}
