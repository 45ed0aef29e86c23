package middleware

import (
	"net/http"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"
	"github.com/roshanpatil2000/web-analytics-backend/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewJWTMiddleware verifies the bearer token cookie set by signup and
// login, then exposes the identity claims as userID, userEmail and
// userRole on the request context
func NewJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, err := c.Cookie("token")
		if err != nil {
			respond.ErrorMessage(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := util.ParseAuthToken(tokenStr)
		if err != nil {
			zap.L().Debug("Rejected auth token", zap.Error(err), zap.String("requestID", requestID))

			respond.ErrorMessage(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, ok := claims["id"].(string)
		if !ok {
			respond.ErrorMessage(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		c.Set("userID", userID)
		c.Set("userEmail", email)
		c.Set("userRole", role)
		c.Next()
	}
}

// RequireAdmin gates destructive administrative operations behind the
// admin role claim. Must run after NewJWTMiddleware
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != string(model.RoleAdmin) {
			respond.ErrorMessage(c, http.StatusForbidden, "Admin privileges required")
			return
		}

		c.Next()
	}
}
