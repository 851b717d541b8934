package daemon

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/db/controller/syncversion"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
)

// seed activates the plugin on a fresh database and runs the admin checks once at startup.
func seed(ctx context.Context, p *plugin.Plugin, versions *syncversion.Store) error {
	version, err := versions.Version(ctx)
	if err != nil {
		return err
	}

	if version == "" {
		log.Info().Msg("no synced domain data found, activating")

		if err = p.Activate(ctx); err != nil {
			return err
		}
	}

	notices, err := p.AdminNotices(ctx)
	if err != nil {
		return err
	}

	for _, n := range notices {
		log.Warn().Str("level", n.Level).Msg(n.Message)
	}

	return nil
}
