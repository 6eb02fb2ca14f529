package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goldinkstudio/tattoo-booking-api/internal/config"
	"github.com/goldinkstudio/tattoo-booking-api/internal/tokens"
)

const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
	ContextJTI     = "tokenJTI"
	ContextExpiry  = "tokenExpiry"
)

func AuthMiddleware(cfg *config.Config, denylist tokens.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication_required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := tokens.Parse(parts[1], cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if claims.JTI != "" {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.JTI)
			if err != nil {
				log.Printf("denylist check failed: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Set(ContextJTI, claims.JTI)
		c.Set(ContextExpiry, claims.ExpiresAt)

		c.Next()
	}
}
