package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbridge-api/internal/models"
	"healthbridge-api/internal/store"
)

type createUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// RegisteredBusinessOwner lets the super admin create a plain user entry.
func (h *Handler) RegisteredBusinessOwner(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Store.FindUserByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Error during user creation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  req.Name,
		Email: req.Email,
	}
	if err := h.Store.InsertUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		log.Printf("Error during user creation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

// Users returns every user and business owner in the directory.
func (h *Handler) Users(c *gin.Context) {
	ctx := c.Request.Context()

	existingUsers, err := h.Store.ListUsers(ctx)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	businessOwners, err := h.Store.ListOwners(ctx)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"existingUsers": existingUsers, "businessOwners": businessOwners})
}
