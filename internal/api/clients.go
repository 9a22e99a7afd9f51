package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AmrIbrahim41/tfg-backend/internal/middleware"
	"github.com/AmrIbrahim41/tfg-backend/internal/service"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

// Photo uploads are capped well above what a phone camera produces.
const maxPhotoBytes = 10 << 20

type ClientHandler struct {
	clientService *service.ClientService
	photoService  *service.PhotoService
	authService   *service.AuthService
}

func NewClientHandler(
	clientService *service.ClientService,
	photoService *service.PhotoService,
	authService *service.AuthService,
) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		photoService:  photoService,
		authService:   authService,
	}
}

func (h *ClientHandler) RegisterRoutes(router *gin.RouterGroup) {
	clients := router.Group("/clients", middleware.AuthMiddleware(h.authService))
	{
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
		clients.POST("/:id/photo", h.UploadPhoto)
		clients.GET("/:id/photo-url", h.PhotoURL)
	}

	router.GET("/countries", h.ListCountries)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	filter := service.ListFilter{
		Search: c.Query("q"),
		Status: c.Query("status"),
	}
	if v := c.Query("is_child"); v != "" {
		isChild := v == "true" || v == "1"
		filter.IsChild = &isChild
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))

	clients, total, err := h.clientService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": clients,
		"pagination": Pagination{
			Page:    filter.Page,
			PerPage: filter.PerPage,
			Total:   total,
		},
	})
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	client, err := h.clientService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req types.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	var req types.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.Update(id, &req)
	if err != nil {
		if err == service.ErrClientNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	if err := h.clientService.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) UploadPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds 10MB"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read photo"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key, err := h.photoService.UploadClientPhoto(c.Request.Context(), id, data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.clientService.SetPhotoKey(id, key); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	url, err := h.photoService.DownloadURL(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_key": key, "photo_url": url})
}

// PhotoURL presigns a fresh download link for the client's stored photo.
func (h *ClientHandler) PhotoURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	client, err := h.clientService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if client.PhotoKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client has no photo"})
		return
	}

	url, err := h.photoService.DownloadURL(c.Request.Context(), client.PhotoKey)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

func (h *ClientHandler) ListCountries(c *gin.Context) {
	countries, err := h.clientService.ListCountries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch countries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}
