package handlers

import (
	"errors"
	"net/http"

	sessionRepo "terapiku/database/repository/session"
	"terapiku/middleware"
	"terapiku/models"
	"terapiku/services/booking"
	"terapiku/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes the persisted-session endpoints.
type SessionHandler struct {
	Status booking.StatusService
	Repo   sessionRepo.SessionRepository
	Logger *zap.Logger
}

func NewSessionHandler(status booking.StatusService, repo sessionRepo.SessionRepository, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Status: status, Repo: repo, Logger: logger}
}

// UpdateSessionStatus applies a status transition on behalf of the
// authenticated user, who is stamped into the audit field.
func (h *SessionHandler) UpdateSessionStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	value, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}
	actor := value.(models.User)

	session, err := h.Status.UpdateSessionStatus(c.Request.Context(), c.Param("sessionID"), input.Status, actor)
	if err != nil {
		var invalid *booking.InvalidTransitionError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": invalid.Error(),
				"from":  invalid.From,
				"to":    invalid.To,
			})
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to update session status", err.Error())
		return
	}

	h.Logger.Info("session status updated",
		zap.String("sessionId", session.ID),
		zap.String("status", session.Status),
		zap.String("actor", actor.ID))
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession fetches one persisted session.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Repo.GetByID(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "therapy session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ListSessionsByDate returns the day schedule.
func (h *SessionHandler) ListSessionsByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}
	sessions, err := h.Repo.ListByDate(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "sessions": sessions})
}
