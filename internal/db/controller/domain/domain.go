// Package domain stores the known disposable mail domains.
package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/debcf/disposable-email-blocker/internal/db/models"
)

const (
	domainColumn       = "domain"
	domainQueryPattern = "domain = ?"
	defaultBatchSize   = 500
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Repository gives access to the disposable domains table.
type Repository struct {
	db *gorm.DB
}

// New returns a Repository backed by db.
func New(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &Repository{db: db}, nil
}

// Exists reports whether the domains table is present.
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	return r.db.WithContext(ctx).Migrator().HasTable(&models.DisposableDomain{}), nil
}

// EnsureTable creates the domains table when it is absent.
func (r *Repository) EnsureTable(ctx context.Context) error {
	m := r.db.WithContext(ctx).Migrator()
	if m.HasTable(&models.DisposableDomain{}) {
		return nil
	}

	return m.CreateTable(&models.DisposableDomain{})
}

// Upsert inserts domains, replacing rows that already hold the same domain.
// It returns the number of domains written.
func (r *Repository) Upsert(ctx context.Context, domains []string, batchSize int) (int, error) {
	if len(domains) == 0 {
		return 0, nil
	}

	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	rows := make([]models.DisposableDomain, 0, len(domains))
	for _, d := range domains {
		rows = append(rows, models.DisposableDomain{Domain: d})
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: domainColumn}},
			DoUpdates: clause.AssignmentColumns([]string{domainColumn}),
		}).
		CreateInBatches(rows, batchSize)
	if result.Error != nil {
		return 0, result.Error
	}

	return len(rows), nil
}

// Contains reports whether domain is stored. The match is exact.
func (r *Repository) Contains(ctx context.Context, domain string) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&models.DisposableDomain{}).
		Where(domainQueryPattern, domain).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Count returns the number of stored domains.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.DisposableDomain{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// List returns all stored domains ordered by id.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	var domains []string

	result := r.db.WithContext(ctx).
		Model(&models.DisposableDomain{}).
		Order("id").
		Pluck(domainColumn, &domains)
	if result.Error != nil {
		return nil, result.Error
	}

	return domains, nil
}

// Drop removes the domains table. A missing table is not an error.
func (r *Repository) Drop(ctx context.Context) error {
	m := r.db.WithContext(ctx).Migrator()
	if !m.HasTable(&models.DisposableDomain{}) {
		return nil
	}

	return m.DropTable(&models.DisposableDomain{})
}
