package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmrIbrahim41/tfg-backend/internal/middleware"
	"github.com/AmrIbrahim41/tfg-backend/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	authService      *service.AuthService
}

func NewDashboardHandler(
	dashboardService *service.DashboardService,
	authService *service.AuthService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		authService:      authService,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", middleware.AuthMiddleware(h.authService), h.Stats)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
