package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin roda depois do AuthMiddleware e barra quem não carrega
// a flag de administrador.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := c.Get(ContextIsAdmin)
		if !ok || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_only"})
			return
		}
		c.Next()
	}
}
