package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"healthbridge-api/internal/store"
	"healthbridge-api/internal/utils"
)

// RequireAdmin verifies the bearer token and resolves its email claim to an
// existing super admin. The admin's id and email are set on the context for
// the handler.
func RequireAdmin(admins store.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		admin, err := admins.FindAdminByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Admin not found"})
				return
			}
			log.Printf("RequireAdmin: failed to look up admin: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.Set("adminID", admin.ID.Hex())
		c.Set("adminEmail", admin.Email)
		c.Next()
	}
}

// RequireToken only checks that the bearer token is valid. The services
// routes never re-resolve the admin record; that asymmetry is part of the
// existing API contract and is kept as-is.
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if _, err := utils.ValidateJWT(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Next()
	}
}
