package middleware

import (
	"fmt"

	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRecoveryMiddleware is the final error boundary. Whatever escapes a
// handler ends up here and is normalized into the 500 envelope instead
// of crashing the process or leaking a hung request
func NewRecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}

		zap.L().Error("Recovered from panic in handler",
			zap.Error(err),
			zap.String("requestID", c.GetString("requestID")),
			zap.String("path", c.Request.URL.Path),
		)

		respond.Internal(c, err)
	})
}
