package config

import (
	"time"

	"github.com/debcf/disposable-email-blocker/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Domains   Domains
	Host      Host
	Messages  Messages
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover  bool   // disable recover middleware
	Port            int    // listening port for the webserver
	ShutDownTime    int    // wait time for shutdown
	URL             string // base url for the webserver
	EditorTokenHash string // argon2id hash of the bearer token allowed to change form and admin state
}

// Domains configures the bundled disposable domain list and its sync job.
type Domains struct {
	ListFile  string        // newline delimited list of disposable domains
	SyncDelay time.Duration // delay between scheduling and running the sync job
	BatchSize int           // rows per upsert statement
}

// Host describes the form system this service plugs into.
type Host struct {
	Name      string
	Active    bool   // false renders a dismissible warning on the admin notices endpoint
	PluginURL string // where an admin can get the host form plugin
}

// Messages overrides user-facing texts.
type Messages struct {
	DisposableEmailsFound string
}
