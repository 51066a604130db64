package response

import (
	"errors"
	"net/http"
	"time"

	"yanki-wallet-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Body is the standard response envelope: a numeric status code, a
// human-readable message and an optional payload.
type Body struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, message string, data interface{}) {
	send(c, http.StatusOK, message, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, message string, data interface{}) {
	send(c, http.StatusCreated, message, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		send(c, appErr.HTTPStatus, appErr.Message, nil)
		return
	}
	send(c, http.StatusInternalServerError, "Internal server error", nil)
}

func send(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{
		Status:    status,
		Message:   message,
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
