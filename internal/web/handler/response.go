// Package handler holds what the API handlers share.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrNilDependency is returned by Init when app, cfg or plugin is nil.
var ErrNilDependency = errors.New(ErrNilACPFatalLogMsg)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendError writes status with msg as JSON error body.
func SendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}
