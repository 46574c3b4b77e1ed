package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbridge-api/internal/models"
	"healthbridge-api/internal/store"
	"healthbridge-api/internal/utils"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterSuperAdmin creates the super admin account.
func (h *Handler) RegisterSuperAdmin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Store.FindAdminByEmail(ctx, req.Email); err == nil {
		log.Printf("Admin with email %s already exists", req.Email)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Error during Super Admin registration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	admin := &models.SuperAdmin{
		ID:       primitive.NewObjectID(),
		Email:    req.Email,
		Password: hashed,
	}
	if err := h.Store.InsertAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
			return
		}
		log.Printf("Error during Super Admin registration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Super Admin registered successfully"})
}

// LoginSuperAdmin authenticates the super admin and returns a bearer token.
// Any malformed input falls out as a credential mismatch rather than a
// validation error.
func (h *Handler) LoginSuperAdmin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	admin, err := h.Store.FindAdminByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("Invalid login attempt for admin: %s", req.Email)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		log.Printf("Error during Super Admin login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, admin.Password) {
		log.Printf("Invalid login attempt for admin: %s", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email)
	if err != nil {
		log.Printf("Error during Super Admin login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
