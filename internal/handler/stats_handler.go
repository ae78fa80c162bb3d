package handler

import (
	"net/http"

	"taskhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatsHandler struct {
	statsRepo repository.StatsRepositoryInterface
}

func NewStatsHandler(statsRepo repository.StatsRepositoryInterface) *StatsHandler {
	return &StatsHandler{statsRepo: statsRepo}
}

// GetUserStats returns the dashboard aggregates for a user. A user with no
// data gets all-zero counts.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid userId format")
		return
	}

	stats, err := h.statsRepo.UserStats(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, stats)
}
