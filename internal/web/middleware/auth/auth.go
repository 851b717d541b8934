package auth

import (
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/web/handler"
)

const (
	// LocalsEditor is set to true in fiber.Locals for authenticated editors.
	LocalsEditor = "editor"

	bearerPrefix = "bearer "
)

// Editor returns a middleware that only lets requests with a valid editor token pass.
func Editor(tokenHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenHash == "" {
			return handler.SendError(c, fiber.StatusForbidden, "editor access is not configured")
		}

		token := BearerToken(c)
		if token == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return handler.SendError(c, fiber.StatusUnauthorized, "editor token required")
		}

		match, err := argon2id.ComparePasswordAndHash(token, tokenHash)
		if err != nil {
			log.Error().Err(err).Msg("can't compare editor token, check Webserver.EditorTokenHash")
			return handler.SendError(c, fiber.StatusInternalServerError, "editor token check failed")
		}

		if !match {
			log.Warn().Str("ip", c.IP()).Str("uri", c.OriginalURL()).Msg("invalid editor token")
			return handler.SendError(c, fiber.StatusUnauthorized, "invalid editor token")
		}

		c.Locals(LocalsEditor, true)

		return c.Next()
	}
}

// IsEditor reports whether the Editor middleware accepted the request.
func IsEditor(c *fiber.Ctx) bool {
	editor, ok := c.Locals(LocalsEditor).(bool)

	return ok && editor
}

// BearerToken returns the token of an Authorization: Bearer header, "" without one.
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// HashToken returns the argon2id hash of token for the configuration.
func HashToken(token string) (string, error) {
	return argon2id.CreateHash(token, argon2id.DefaultParams)
}
