package blocker

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/debcf/disposable-email-blocker/internal/domainlist"
)

// Syncer copies the bundled domain list into the domain store.
type Syncer struct {
	domains   DomainStore
	versions  VersionStore
	listFile  string
	batchSize int
}

// NewSyncer creates a Syncer reading listFile and writing batchSize rows per statement.
func NewSyncer(domains DomainStore, versions VersionStore, listFile string, batchSize int) (*Syncer, error) {
	if domains == nil || versions == nil {
		return nil, ErrNilStore
	}

	if listFile == "" {
		return nil, ErrEmptyListFile
	}

	return &Syncer{
		domains:   domains,
		versions:  versions,
		listFile:  listFile,
		batchSize: batchSize,
	}, nil
}

// Sync creates the domain table when needed, upserts every listed domain and records DBVersion.
// Without a list file nothing happens. Running it again yields the same stored set.
func (s *Syncer) Sync(ctx context.Context) error {
	domains, err := domainlist.Read(s.listFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("file", s.listFile).Msg("domain list not found, nothing to sync")
		syncRunsTotal.WithLabelValues(statusSkipped).Inc()

		return nil
	}

	if err != nil {
		syncRunsTotal.WithLabelValues(statusError).Inc()
		return err
	}

	if err = s.domains.EnsureTable(ctx); err != nil {
		syncRunsTotal.WithLabelValues(statusError).Inc()
		return errors.Wrap(err, "failed to create domain table")
	}

	n, err := s.domains.Upsert(ctx, domains, s.batchSize)
	if err != nil {
		syncRunsTotal.WithLabelValues(statusError).Inc()
		return errors.Wrap(err, "failed to store domains")
	}

	if err = s.versions.SetVersion(ctx, DBVersion); err != nil {
		syncRunsTotal.WithLabelValues(statusError).Inc()
		return errors.Wrap(err, "failed to store sync version")
	}

	syncRunsTotal.WithLabelValues(statusSuccess).Inc()
	syncedDomains.Set(float64(n))

	log.Info().Int("domains", n).Str("version", DBVersion).Msg("disposable domains synced")

	return nil
}

// NeedsSync reports whether the stored version differs from DBVersion.
func (s *Syncer) NeedsSync(ctx context.Context) (bool, error) {
	v, err := s.versions.Version(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to read sync version")
	}

	return v != DBVersion, nil
}
