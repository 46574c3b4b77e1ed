package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbridge-api/internal/models"
	"healthbridge-api/internal/store"
	"healthbridge-api/internal/utils"
)

type inviteOwnerRequest struct {
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	CompanyName        string `json:"companyName" binding:"required"`
	CompanyLogoURL     string `json:"companyLogoUrl"`
	CompanyEmail       string `json:"companyEmail" binding:"required,email"`
	CompanyPhoneNumber string `json:"companyPhoneNumber" binding:"required"`
	CompanyAddress     string `json:"companyAddress" binding:"required"`
	CompanyPostalCode  string `json:"companyPostalCode" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
}

// InviteBusinessOwner persists a new business owner and emails an
// invitation link to their personal address. The link's id is a one-off;
// it is not stored with the record. If the email fails after the save the
// record stays behind and the request fails.
func (h *Handler) InviteBusinessOwner(c *gin.Context) {
	var req inviteOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required business owner fields"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Store.FindOwnerByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Business owner already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Error sending invitation email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	uniqueID, err := utils.RandomHex(16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	owner := &models.BusinessOwner{
		ID:                 primitive.NewObjectID(),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		CompanyName:        req.CompanyName,
		CompanyLogoURL:     req.CompanyLogoURL,
		CompanyEmail:       req.CompanyEmail,
		CompanyPhoneNumber: req.CompanyPhoneNumber,
		CompanyAddress:     req.CompanyAddress,
		CompanyPostalCode:  req.CompanyPostalCode,
		Email:              req.Email,
		Phlebotomists:      []models.Phlebotomist{},
		InvitedAt:          time.Now(),
	}
	if err := h.Store.InsertOwner(ctx, owner); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Business owner already exists"})
			return
		}
		log.Printf("Error saving business owner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	log.Printf("New business owner saved successfully: %s", owner.ID.Hex())

	platformLink := fmt.Sprintf("%s/register/%s", h.Config.PlatformBaseURL, uniqueID)
	body := fmt.Sprintf(
		"Dear %s %s,\n\nYou have been invited to join our platform as a business owner for %s.\n\nPlease register using the following link: %s\n\nBest regards,\nYour Company Name",
		req.FirstName, req.LastName, req.CompanyName, platformLink,
	)
	if err := h.Mailer.SendEmail(req.Email, "Business Owner Invitation", body, ""); err != nil {
		log.Printf("Error sending invitation email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending invitation email"})
		return
	}
	log.Printf("Invitation email sent to %s with link: %s", req.Email, platformLink)

	c.JSON(http.StatusOK, gin.H{"message": "Invitation sent successfully with unique link"})
}
