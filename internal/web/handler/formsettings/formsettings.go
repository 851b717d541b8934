// Package formsettings serves the per form blocking switch.
package formsettings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
	"github.com/debcf/disposable-email-blocker/internal/web/handler"
	"github.com/debcf/disposable-email-blocker/internal/web/middleware/auth"
)

const (
	// Path is the path of the form settings endpoint.
	Path = handler.APIPrefix + "/forms/:" + handler.ParamFormID + "/settings"
)

type (
	// Settings is the form settings document.
	Settings struct {
		FormID          string `json:"formId"`
		BlockDisposable bool   `json:"blockDisposable"`
	}

	// UpdateRequest switches blocking on or off.
	UpdateRequest struct {
		Enabled *bool `json:"enabled" validate:"required"`
	}
)

// Service is the form settings handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	plugin    *plugin.Plugin
	validator *validator.Validate
}

// Handler is the form settings handler.
var Handler = Service{}

// Init registers the form settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, p *plugin.Plugin) error {
	if app == nil || cfg == nil || p == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.plugin = p
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Put(handler.RouterRootPath, auth.Editor(cfg.Webserver.EditorTokenHash), s.Put)
	})

	return nil
}

// Get returns the settings of a form.
func (s *Service) Get(c *fiber.Ctx) error {
	formID := c.Params(handler.ParamFormID)

	enabled, err := s.plugin.FormSettings(c.UserContext(), formID)
	if err != nil {
		log.Error().Err(err).Str("form", formID).Msg("failed to load form settings")
		return handler.SendError(c, fiber.StatusInternalServerError, "failed to load form settings")
	}

	return c.JSON(Settings{FormID: formID, BlockDisposable: enabled})
}

// Put saves the settings of a form.
func (s *Service) Put(c *fiber.Ctx) error {
	var req UpdateRequest

	formID := c.Params(handler.ParamFormID)

	if err := c.BodyParser(&req); err != nil {
		return handler.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	err := s.plugin.SaveFormSettings(c.UserContext(), formID, *req.Enabled, auth.IsEditor(c))
	if errors.Is(err, plugin.ErrNotEditor) {
		return handler.SendError(c, fiber.StatusForbidden, err.Error())
	}

	if err != nil {
		log.Error().Err(err).Str("form", formID).Msg("failed to save form settings")
		return handler.SendError(c, fiber.StatusInternalServerError, "failed to save form settings")
	}

	return c.JSON(Settings{FormID: formID, BlockDisposable: *req.Enabled})
}
