// Package messages serves the message catalogue entries of this service.
package messages

import (
	"github.com/gofiber/fiber/v2"

	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
	"github.com/debcf/disposable-email-blocker/internal/web/handler"
)

const (
	// Path is the path of the messages endpoint.
	Path = handler.APIPrefix + "/messages"
)

// Service is the messages handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	plugin *plugin.Plugin
}

// Handler is the messages handler.
var Handler = Service{}

// Init registers the messages route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, p *plugin.Plugin) error {
	if app == nil || cfg == nil || p == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.plugin = p

	app.Get(Path, s.Get)

	return nil
}

// Get returns the catalogue keyed by message key.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(s.plugin.Messages(c.UserContext()))
}
