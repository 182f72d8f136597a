package middleware

import (
	"net/http"
	"strings"

	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthMiddleware.
const (
	ContextAccountID = "accountID"
	ContextRole      = "role"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortResponse(c, http.StatusUnauthorized, "Missing token")
			return
		}

		// Expect "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.AbortResponse(c, http.StatusUnauthorized, "Malformed token")
			return
		}

		token, err := utils.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			utils.AbortResponse(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.AbortResponse(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		// JSON numbers decode as float64
		idVal, ok := claims["account_id"].(float64)
		if !ok || idVal <= 0 {
			utils.AbortResponse(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		roleStr, _ := claims["role"].(string)
		role, err := models.ParseRole(roleStr)
		if err != nil {
			utils.AbortResponse(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		c.Set(ContextAccountID, uint(idVal))
		c.Set(ContextRole, role)

		c.Next()
	}
}

// RequireRoles lets the request through only when AuthMiddleware stored
// one of the allowed roles.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextRole)
		if !exists {
			utils.AbortResponse(c, http.StatusForbidden, "Access denied")
			return
		}

		role, _ := val.(models.Role)
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}

		utils.AbortResponse(c, http.StatusForbidden, "Access denied for role "+role.String())
	}
}
