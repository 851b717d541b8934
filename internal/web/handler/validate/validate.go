// Package validate serves the email check the host runs for every submitted email field.
package validate

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
	"github.com/debcf/disposable-email-blocker/internal/web/handler"
)

const (
	// Path is the path of the validate endpoint.
	Path = handler.APIPrefix + "/forms/:" + handler.ParamFormID + "/validate"
)

// Request is one submitted email field.
type Request struct {
	Field    string `json:"field"    validate:"max=191"`
	Value    string `json:"value"    validate:"max=1024"`
	Required bool   `json:"required"`
}

// Service is the validate handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	plugin    *plugin.Plugin
	validator *validator.Validate
}

// Handler is the validate handler.
var Handler = Service{}

// Init registers the validate route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, p *plugin.Plugin) error {
	if app == nil || cfg == nil || p == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.plugin = p
	s.validator = validator.New()

	app.Post(Path, s.Post)

	return nil
}

// Post answers 200 with the validation result, a rejected address is not an HTTP error.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if err := c.BodyParser(&req); err != nil {
		return handler.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := s.plugin.Validate(c.UserContext(), c.Params(handler.ParamFormID), req.Field, req.Value, req.Required)
	if err != nil {
		log.Error().Err(err).Str("form", c.Params(handler.ParamFormID)).Msg("validation failed")
		return handler.SendError(c, fiber.StatusInternalServerError, "validation failed")
	}

	return c.JSON(result)
}
