// Package blocker decides whether a submitted email address uses a disposable mail domain
// and keeps the database copy of the bundled domain list in sync.
package blocker

import "context"

const (
	// DBVersion is the version of the bundled domain list. A stored version that differs
	// triggers a new sync.
	DBVersion = "20251705"

	// ToggleOn is the only form toggle value that enables blocking.
	ToggleOn = "on"
)

// DomainStore is the database table of disposable domains.
type DomainStore interface {
	Exists(ctx context.Context) (bool, error)
	EnsureTable(ctx context.Context) error
	Upsert(ctx context.Context, domains []string, batchSize int) (int, error)
	Contains(ctx context.Context, domain string) (bool, error)
}

// VersionStore holds the version of the last successful sync.
type VersionStore interface {
	Version(ctx context.Context) (string, error)
	SetVersion(ctx context.Context, version string) error
}

// ToggleStore holds the per form blocking switch.
type ToggleStore interface {
	Toggle(ctx context.Context, formID string) (string, error)
}
