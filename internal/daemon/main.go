// Package daemon assembles the database, task queue, plugin and web service.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/debcf/disposable-email-blocker/internal/blocker"
	"github.com/debcf/disposable-email-blocker/internal/config"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/domain"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/formtoggle"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/syncversion"
	"github.com/debcf/disposable-email-blocker/internal/db/dsn"
	"github.com/debcf/disposable-email-blocker/internal/db/models"
	gormlogger "github.com/debcf/disposable-email-blocker/internal/logger/adapter/gorm"
	"github.com/debcf/disposable-email-blocker/internal/plugin"
	"github.com/debcf/disposable-email-blocker/internal/scheduler"
	"github.com/debcf/disposable-email-blocker/internal/web"
)

// ErrConfigNil is returned by New without a config.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	queue      *scheduler.Queue
	versions   *syncversion.Store
	plugin     *plugin.Plugin
	webService *web.Service
}

// OpenDB connects to the configured database and migrates the settings and form toggle tables.
// The domain table is created by the first sync.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dsn.Open(&cfg.DB)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.New(0),
		NamingStrategy: schema.NamingStrategy{TablePrefix: cfg.DB.TablePrefix},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Setting{},
		&models.FormToggle{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	d, err := newWithDB(cfg, db)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func newWithDB(cfg *config.Config, db *gorm.DB) (*Daemon, error) {
	domains, err := domain.New(db)
	if err != nil {
		return nil, err
	}

	toggles, err := formtoggle.New(db)
	if err != nil {
		return nil, err
	}

	versions := syncversion.New(db)

	syncer, err := blocker.NewSyncer(domains, versions, cfg.Domains.ListFile, cfg.Domains.BatchSize)
	if err != nil {
		return nil, err
	}

	validator, err := blocker.NewValidator(toggles, domains, cfg.Domains.ListFile)
	if err != nil {
		return nil, err
	}

	queue := scheduler.New(context.Background())

	p, err := plugin.New(plugin.Options{
		Config:    cfg,
		Queue:     queue,
		Syncer:    syncer,
		Validator: validator,
		Domains:   domains,
		Versions:  versions,
		Toggles:   toggles,
	})
	if err != nil {
		queue.Shutdown()
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		queue:      queue,
		versions:   versions,
		plugin:     p,
		webService: web.New(cfg, p),
	}, nil
}

// Plugin returns the wired plugin.
func (d *Daemon) Plugin() *plugin.Plugin {
	return d.plugin
}

// Start runs the web service until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	defer d.Close()

	if err := seed(context.Background(), d.plugin, d.versions); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	listenErr := make(chan error, 1)

	go func() {
		listenErr <- d.webService.Start(addr)
	}()

	log.Info().Str("addr", addr).Msg("web service started")

	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(irqSig)

	select {
	case err := <-listenErr:
		return err
	case sig := <-irqSig:
		log.Info().Msgf("shutdown request (signal: %v)", sig)
	}

	d.webService.Shutdown()

	return <-listenErr
}

// Close stops pending tasks and closes the database connection.
func (d *Daemon) Close() {
	d.queue.Shutdown()

	sqlDB, err := d.db.DB()
	if err != nil {
		log.Error().Err(err).Msg("can't get database handle")
		return
	}

	if err = sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("can't close database")
	}
}
