package messages

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debcf/disposable-email-blocker/internal/blocker"
	"github.com/debcf/disposable-email-blocker/internal/hooks"
	"github.com/debcf/disposable-email-blocker/internal/plugin/plugintest"
)

func TestGet(t *testing.T) {
	cfg := plugintest.Config(t)
	cfg.Messages.DisposableEmailsFound = "No throwaway addresses please"
	env := plugintest.New(t, cfg, "")

	app := fiber.New()
	service := &Service{}
	require.NoError(t, service.Init(app, env.Config, env.Plugin))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var catalogue map[string]hooks.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&catalogue))
	assert.Equal(t, map[string]hooks.Message{
		blocker.MessageKey: {
			Description: blocker.MessageDescription,
			Default:     "No throwaway addresses please",
		},
	}, catalogue)
}
