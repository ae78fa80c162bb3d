package handler

import (
	"errors"
	"log"
	"net/http"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectRepo repository.ProjectRepositoryInterface
}

func NewProjectHandler(projectRepo repository.ProjectRepositoryInterface) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed on_hold cancelled"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
	OwnerID     string  `json:"ownerId" binding:"required,uuid"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=active completed on_hold cancelled"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

// List returns the projects owned by the given user, with their owner
// embedded.
func (h *ProjectHandler) List(c *gin.Context) {
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

	projects, err := h.projectRepo.GetOwned(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if project == nil {
		errorResponse(c, http.StatusNotFound, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Project creation rejected: %v", err)
		validationError(c, err)
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid ownerId format")
		return
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.ProjectStatusActive,
		Color:       "#3b82f6",
		OwnerID:     ownerID,
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Color != nil {
		project.Color = *req.Color
	}

	log.Printf("Creating project %q for owner %s", project.Name, project.OwnerID)

	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		log.Printf("Project creation error: %v", err)
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}

	project, err := h.projectRepo.Update(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			errorResponse(c, http.StatusNotFound, "Project not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	if err := h.projectRepo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			errorResponse(c, http.StatusNotFound, "Project not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
