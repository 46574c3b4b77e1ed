package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbridge-api/internal/models"
)

type createServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Image       string  `json:"image" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// CreateService adds a service to the catalog.
func (h *Handler) CreateService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required service fields"})
		return
	}

	now := time.Now()
	svc := &models.Service{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Store.InsertService(c.Request.Context(), svc); err != nil {
		log.Printf("Error creating service: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Service created successfully", "service": svc})
}

// ListServices returns the whole catalog as a bare array.
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.Store.ListServices(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching services: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, services)
}
