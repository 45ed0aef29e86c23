// Package respond implements the response envelope every endpoint
// terminates through. There are exactly two wire shapes: a success
// envelope and an error envelope. No handler writes JSON any other way
package respond

import (
	"net/http"
	"runtime/debug"

	"github.com/roshanpatil2000/web-analytics-backend/config"

	"github.com/gin-gonic/gin"
)

// Success writes {"success":true,"message":...} with the extra data
// fields merged shallowly at the top level. The HTTP status only lives
// on the status line, it's not duplicated in the body
func Success(c *gin.Context, status int, message string, data gin.H) {
	body := gin.H{
		"success": true,
		"message": message,
	}

	for k, v := range data {
		body[k] = v
	}

	c.JSON(status, body)
}

// Error writes {"success":false,"status":N,"error":{...}}. The error
// payload is passed through unmodified so callers can attach message,
// code or details as needed
func Error(c *gin.Context, status int, err gin.H) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"status":  status,
		"error":   err,
	})
}

// ErrorMessage is a shorthand for the common {"message": ...} error payload
func ErrorMessage(c *gin.Context, status int, message string) {
	Error(c, status, gin.H{"message": message})
}

// Internal is the boundary translator for failures no handler
// anticipated, including recovered panics and JSON parse failures.
// Outside production the real message and stack are exposed, in
// production only a generic message leaves the process
func Internal(c *gin.Context, err error) {
	if config.IsProduction() {
		ErrorMessage(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	Error(c, http.StatusInternalServerError, gin.H{
		"message": err.Error(),
		"stack":   string(debug.Stack()),
	})
}
