// Package response writes the JSON bodies of the dashboard API.
// Success bodies are the payload itself; failures are {"error": "<message>"}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of operations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// OK writes a 200 JSON payload.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Message writes a 200 {"message": ...} body.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// PNG writes an image/png body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}

// Error writes an error body with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}
