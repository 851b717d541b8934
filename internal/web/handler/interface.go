package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, p *plugin.Plugin) error
}
