// Package syncversion keeps the version of the disposable domain data set stored in the database.
package syncversion

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/debcf/disposable-email-blocker/internal/db/controller/setting"
)

const (
	// SettingKeySyncVersion is the key used to store the synced data set version in the database.
	SettingKeySyncVersion = "disposable_domains_db_version"
)

// Store reads and writes the sync version setting.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Version returns the stored version, "" when none was ever recorded.
func (s *Store) Version(ctx context.Context) (string, error) {
	v, err := setting.Get(s.db.WithContext(ctx), SettingKeySyncVersion)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return string(v.Value), nil
}

// SetVersion records version as the synced data set version.
func (s *Store) SetVersion(ctx context.Context, version string) error {
	_, err := setting.Set(s.db.WithContext(ctx), SettingKeySyncVersion, []byte(version))

	return err
}

// Clear removes the stored version. A missing version is not an error.
func (s *Store) Clear(ctx context.Context) error {
	err := setting.DeleteByName(s.db.WithContext(ctx), SettingKeySyncVersion)
	if errors.Is(err, setting.ErrSettingNotFound) {
		return nil
	}

	return err
}
