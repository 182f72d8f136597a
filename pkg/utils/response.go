package utils

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope used for every error and status message.
// Successful entity reads and writes return the bare DTO instead.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// AbortResponse writes a failure envelope and stops the handler chain.
// Middleware uses it to reject a request.
func AbortResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{
		Success: false,
		Message: message,
	})
}
