// Package admin serves the lifecycle and notice endpoints used by the host admin area.
package admin

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/hooks"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
	"github.com/debcf/disposable-email-blocker/internal/web/handler"
	"github.com/debcf/disposable-email-blocker/internal/web/middleware/auth"
)

const (
	// Path is the path of the admin route group.
	Path = handler.APIPrefix + "/admin"
)

// NoticesResponse lists the admin notices.
type NoticesResponse struct {
	Notices []hooks.Notice `json:"notices"`
}

// StatusResponse acknowledges a lifecycle action.
type StatusResponse struct {
	Status string `json:"status"`
}

// Service is the admin handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	plugin *plugin.Plugin
}

// Handler is the admin handler.
var Handler = Service{}

// Init registers the admin routes, all of them require the editor token.
func (s *Service) Init(app *fiber.App, cfg *config.Config, p *plugin.Plugin) error {
	if app == nil || cfg == nil || p == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.plugin = p

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.Editor(cfg.Webserver.EditorTokenHash))
		router.Get("/notices", s.Notices)
		router.Post("/activate", s.lifecycle("activated", p.Activate))
		router.Post("/deactivate", s.lifecycle("deactivated", p.Deactivate))
		router.Post("/uninstall", s.lifecycle("uninstalled", p.Uninstall))
	})

	return nil
}

// Notices returns the current admin notices.
func (s *Service) Notices(c *fiber.Ctx) error {
	notices, err := s.plugin.AdminNotices(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("failed to collect admin notices")
		return handler.SendError(c, fiber.StatusInternalServerError, "failed to collect admin notices")
	}

	if notices == nil {
		notices = []hooks.Notice{}
	}

	return c.JSON(NoticesResponse{Notices: notices})
}

func (s *Service) lifecycle(status string, action func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := action(c.UserContext()); err != nil {
			log.Error().Err(err).Str("action", status).Msg("lifecycle action failed")
			return handler.SendError(c, fiber.StatusInternalServerError, "lifecycle action failed")
		}

		return c.JSON(StatusResponse{Status: status})
	}
}
