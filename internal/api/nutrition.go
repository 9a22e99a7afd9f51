package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AmrIbrahim41/tfg-backend/internal/middleware"
	"github.com/AmrIbrahim41/tfg-backend/internal/service"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

type NutritionHandler struct {
	nutritionService *service.NutritionService
	reportService    *service.ReportService
	authService      *service.AuthService
	pdfLimiter       *middleware.RateLimiter
}

func NewNutritionHandler(
	nutritionService *service.NutritionService,
	reportService *service.ReportService,
	authService *service.AuthService,
	pdfLimiter *middleware.RateLimiter,
) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
		reportService:    reportService,
		authService:      authService,
		pdfLimiter:       pdfLimiter,
	}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition", middleware.AuthMiddleware(h.authService))
	{
		nutrition.POST("/compute", h.Compute)
		nutrition.GET("/prefill/:client_id", h.Prefill)
		nutrition.POST("/plans", h.SavePlan)
		nutrition.GET("/plans/:id", h.GetPlan)
		nutrition.DELETE("/plans/:id", h.DeletePlan)
		nutrition.GET("/subscriptions/:subscription_id/plans", h.ListPlans)

		nutrition.GET("/pdf-quota", h.PDFQuota)

		pdf := nutrition.Group("", h.pdfLimiter.RateLimitMiddleware())
		{
			pdf.GET("/plans/:id/pdf", h.PlanPDF)
			pdf.GET("/subscriptions/:subscription_id/workout-pdf", h.WorkoutPDF)
		}
	}
}

// Compute runs the calculator without persisting anything. This is the
// endpoint the calculator screen hits on every input change.
func (h *NutritionHandler) Compute(c *gin.Context) {
	var req types.ComputeNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.nutritionService.Compute(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute targets"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NutritionHandler) Prefill(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("client_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	prefill, err := h.nutritionService.Prefill(clientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, prefill)
}

func (h *NutritionHandler) SavePlan(c *gin.Context) {
	var req types.SaveNutritionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trainerID, _ := c.Get("user_id")
	trainerUUID, _ := trainerID.(uuid.UUID)

	plan, err := h.nutritionService.SavePlan(trainerUUID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *NutritionHandler) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	plan, err := h.nutritionService.GetPlan(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nutrition plan not found"})
		return
	}

	computed, err := h.nutritionService.RecomputePlan(plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":     plan,
		"computed": computed,
	})
}

func (h *NutritionHandler) ListPlans(c *gin.Context) {
	subID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription ID"})
		return
	}

	plans, err := h.nutritionService.ListPlans(subID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *NutritionHandler) DeletePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	if err := h.nutritionService.DeletePlan(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nutrition plan not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// PDFQuota reports how many PDF renders the trainer has left in the current
// window, the same numbers the X-RateLimit headers carry on the PDF routes.
func (h *NutritionHandler) PDFQuota(c *gin.Context) {
	userID, _ := c.Get("user_id")

	remaining, resetTime, err := h.pdfLimiter.GetRemainingRequests(
		c.Request.Context(), fmt.Sprintf("%v", userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rate limit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":     h.pdfLimiter.Limit(),
		"remaining": remaining,
		"reset":     resetTime.Unix(),
	})
}

func (h *NutritionHandler) PlanPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	lang := c.DefaultQuery("lang", "en")
	if lang != "en" && lang != "ar" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lang must be en or ar"})
		return
	}

	pdf, err := h.reportService.NutritionPlanPDF(id, lang)
	if err != nil {
		if err == service.ErrNutritionPlanNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nutrition plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=nutrition-plan-%s.pdf", lang))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *NutritionHandler) WorkoutPDF(c *gin.Context) {
	subID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription ID"})
		return
	}

	pdf, err := h.reportService.WorkoutPlanPDF(subID)
	if err != nil {
		if err == service.ErrTrainingPlanNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Training plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=workout-plan.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
