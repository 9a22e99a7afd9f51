package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AmrIbrahim41/tfg-backend/internal/middleware"
	"github.com/AmrIbrahim41/tfg-backend/internal/service"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

type TrainingHandler struct {
	trainingService *service.TrainingService
	authService     *service.AuthService
}

func NewTrainingHandler(
	trainingService *service.TrainingService,
	authService *service.AuthService,
) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
		authService:     authService,
	}
}

func (h *TrainingHandler) RegisterRoutes(router *gin.RouterGroup) {
	training := router.Group("/training", middleware.AuthMiddleware(h.authService))
	{
		training.POST("/plans", h.SavePlan)
		training.GET("/plans/:subscription_id", h.GetPlan)
		training.POST("/sessions", h.CreateSession)
		training.GET("/sessions/:id", h.GetSession)
		training.POST("/sessions/:id/complete", h.CompleteSession)
		training.DELETE("/sessions/:id", h.DeleteSession)
		training.GET("/subscriptions/:subscription_id/sessions", h.ListSessions)
	}
}

func (h *TrainingHandler) SavePlan(c *gin.Context) {
	var req types.CreateTrainingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.trainingService.SavePlan(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *TrainingHandler) GetPlan(c *gin.Context) {
	subID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription ID"})
		return
	}

	plan, err := h.trainingService.GetPlan(subID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Training plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *TrainingHandler) CreateSession(c *gin.Context) {
	var req types.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.trainingService.CreateSession(&req)
	if err != nil {
		if err == service.ErrSessionExists {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *TrainingHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	session, err := h.trainingService.GetSession(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TrainingHandler) ListSessions(c *gin.Context) {
	subID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription ID"})
		return
	}

	sessions, err := h.trainingService.ListSessions(subID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *TrainingHandler) CompleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	var req types.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainerID, _ := c.Get("user_id")
	trainerUUID, _ := trainerID.(uuid.UUID)

	session, err := h.trainingService.CompleteSession(id, trainerUUID, &req)
	if err != nil {
		if err == service.ErrSessionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *TrainingHandler) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	if err := h.trainingService.DeleteSession(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
