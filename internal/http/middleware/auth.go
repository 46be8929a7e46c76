package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/identity"
)

// Context ключи для gin.Context.
const (
	ContextUIDKey   = "uid"
	ContextEmailKey = "email"
)

// AuthMiddleware проверяет bearer токен через identity-провайдера.
// Отсутствующий токен — 401, отклонённый провайдером — 403.
func AuthMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "требуется авторизация"})
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		ident, err := provider.VerifyToken(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "токен невалиден или истёк"})
			return
		}

		c.Set(ContextUIDKey, ident.UID)
		c.Set(ContextEmailKey, ident.Email)
		c.Next()
	}
}
