package handler

import (
	"net/http"

	"taskhub/internal/model"
	"taskhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MemberHandler struct {
	memberRepo repository.MemberRepositoryInterface
}

func NewMemberHandler(memberRepo repository.MemberRepositoryInterface) *MemberHandler {
	return &MemberHandler{memberRepo: memberRepo}
}

type AddMemberRequest struct {
	ProjectID string  `json:"projectId" binding:"required,uuid"`
	UserID    string  `json:"userId" binding:"required,uuid"`
	Role      *string `json:"role" binding:"omitempty,oneof=member admin"`
}

// List returns a project's members with their user records.
func (h *MemberHandler) List(c *gin.Context) {
	projectIDStr := c.Query("projectId")
	if projectIDStr == "" {
		errorResponse(c, http.StatusBadRequest, "projectId is required")
		return
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid projectId format")
		return
	}

	members, err := h.memberRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Add(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid projectId format")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid userId format")
		return
	}

	member := &model.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      model.RoleMember,
	}
	if req.Role != nil {
		member.Role = *req.Role
	}

	if err := h.memberRepo.Add(c.Request.Context(), member); err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Remove(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid projectId format")
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid userId format")
		return
	}

	if err := h.memberRepo.Remove(c.Request.Context(), projectID, userID); err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
