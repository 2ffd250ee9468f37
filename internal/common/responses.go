package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of resource-endpoint errors
type MessageResponse struct {
	Message string `json:"message"`
}

// Envelope wraps auth endpoint responses
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SendMessage writes {"message": ...} with the given status
func SendMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}

// SendSuccess writes a 200 envelope with data
func SendSuccess(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// SendFailure writes an envelope with success=false
func SendFailure(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}
