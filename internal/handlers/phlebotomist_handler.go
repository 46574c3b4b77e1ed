package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbridge-api/internal/models"
	"healthbridge-api/internal/store"
)

type addPhlebotomistRequest struct {
	BusinessOwnerID string `json:"businessOwnerId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
}

// AddPhlebotomist appends a phlebotomist to a business owner's roster.
// Email uniqueness is enforced within that roster only; the same address
// may appear under a different owner.
func (h *Handler) AddPhlebotomist(c *gin.Context) {
	var req addPhlebotomistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required phlebotomist fields"})
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(req.BusinessOwnerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid business owner id"})
		return
	}

	ctx := c.Request.Context()
	owner, err := h.Store.FindOwnerByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business owner not found"})
			return
		}
		log.Printf("Error adding phlebotomist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	for _, p := range owner.Phlebotomists {
		if p.Email == req.Email {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Phlebotomist already exists"})
			return
		}
	}

	phlebotomist := models.Phlebotomist{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		HiredDate:   time.Now(),
	}
	roster := append(owner.Phlebotomists, phlebotomist)
	if err := h.Store.UpdatePhlebotomists(ctx, owner.ID, roster); err != nil {
		log.Printf("Error adding phlebotomist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Phlebotomist added successfully", "phlebotomist": phlebotomist})
}

// ListPhlebotomists returns a business owner's roster.
func (h *Handler) ListPhlebotomists(c *gin.Context) {
	ownerID, err := primitive.ObjectIDFromHex(c.Param("businessOwnerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid business owner id"})
		return
	}

	owner, err := h.Store.FindOwnerByID(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business owner not found"})
			return
		}
		log.Printf("Error listing phlebotomists: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"phlebotomists": owner.Phlebotomists})
}

// RemovePhlebotomist filters the given id out of the roster. Removing an
// id that is not there is a no-op and still succeeds.
func (h *Handler) RemovePhlebotomist(c *gin.Context) {
	ownerID, err := primitive.ObjectIDFromHex(c.Param("businessOwnerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid business owner id"})
		return
	}
	phlebotomistID := c.Param("phlebotomistId")

	ctx := c.Request.Context()
	owner, err := h.Store.FindOwnerByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business owner not found"})
			return
		}
		log.Printf("Error removing phlebotomist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	roster := make([]models.Phlebotomist, 0, len(owner.Phlebotomists))
	for _, p := range owner.Phlebotomists {
		if p.ID.Hex() != phlebotomistID {
			roster = append(roster, p)
		}
	}
	if err := h.Store.UpdatePhlebotomists(ctx, owner.ID, roster); err != nil {
		log.Printf("Error removing phlebotomist: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Phlebotomist removed successfully"})
}
