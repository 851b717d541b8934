// Package plugintest builds a Plugin on an in-memory database for tests of its callers.
package plugintest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/debcf/disposable-email-blocker/internal/blocker"
	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/domain"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/formtoggle"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/syncversion"
	"github.com/debcf/disposable-email-blocker/internal/db/models"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
	"github.com/debcf/disposable-email-blocker/internal/scheduler"
)

// Env is a Plugin with direct access to its stores.
type Env struct {
	Plugin   *plugin.Plugin
	Config   *config.Config
	DB       *gorm.DB
	Domains  *domain.Repository
	Versions *syncversion.Store
	Toggles  *formtoggle.Store
}

// Config returns a config for tests with the domain list in a temporary directory.
func Config(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Title: "Disposable Email Blocker",
		Webserver: config.Webserver{
			Port:         8080,
			URL:          "http://localhost:8080",
			ShutDownTime: 1,
		},
		Domains: config.Domains{
			ListFile:  filepath.Join(t.TempDir(), "domains.txt"),
			SyncDelay: 10 * time.Millisecond,
			BatchSize: 100,
		},
		Host: config.Host{
			Name:   "Contact Form 7",
			Active: true,
		},
	}
}

// New writes list to the configured list file, unless empty, and builds the Plugin.
func New(t *testing.T, cfg *config.Config, list string) *Env {
	t.Helper()

	if list != "" {
		require.NoError(t, os.WriteFile(cfg.Domains.ListFile, []byte(list), 0o600))
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Setting{}, &models.FormToggle{}))

	domains, err := domain.New(db)
	require.NoError(t, err)

	toggles, err := formtoggle.New(db)
	require.NoError(t, err)

	versions := syncversion.New(db)

	syncer, err := blocker.NewSyncer(domains, versions, cfg.Domains.ListFile, cfg.Domains.BatchSize)
	require.NoError(t, err)

	validator, err := blocker.NewValidator(toggles, domains, cfg.Domains.ListFile)
	require.NoError(t, err)

	queue := scheduler.New(context.Background())
	t.Cleanup(queue.Shutdown)

	p, err := plugin.New(plugin.Options{
		Config:    cfg,
		Queue:     queue,
		Syncer:    syncer,
		Validator: validator,
		Domains:   domains,
		Versions:  versions,
		Toggles:   toggles,
	})
	require.NoError(t, err)

	return &Env{
		Plugin:   p,
		Config:   cfg,
		DB:       db,
		Domains:  domains,
		Versions: versions,
		Toggles:  toggles,
	}
}
