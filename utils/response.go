package utils

import (
	"budgetbuddy/models"

	"github.com/gin-gonic/gin"
)

// Envelope is the wrapper every endpoint returns.
type Envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func SuccessPaginated(c *gin.Context, status int, message string, data any, p models.Pagination) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data, Pagination: &p})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// ErrorDetail carries a detail string alongside the message for unexpected
// failures; handlers keep the detail generic for internal errors.
func ErrorDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, Envelope{Success: false, Message: message, Error: detail})
}
