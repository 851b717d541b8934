// Package formtoggle stores the per form switch that enables disposable address blocking.
package formtoggle

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/debcf/disposable-email-blocker/internal/db/models"
)

const (
	// ValueOn enables blocking for a form.
	ValueOn = "on"
	// ValueOff disables blocking for a form.
	ValueOff = "off"

	formIDQueryPattern = "form_id = ?"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrFormIDEmpty is returned for operations without a form id.
	ErrFormIDEmpty = errors.New("form id cannot be empty")
	// ErrInvalidToggleValue is returned when a value other than on or off is written.
	ErrInvalidToggleValue = errors.New("toggle value must be on or off")
)

// Store reads and writes form toggles.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &Store{db: db}, nil
}

// Toggle returns the stored value for formID, "" when the form has none.
func (s *Store) Toggle(ctx context.Context, formID string) (string, error) {
	if formID == "" {
		return "", nil
	}

	var toggle models.FormToggle

	result := s.db.WithContext(ctx).Where(formIDQueryPattern, formID).Limit(1).Find(&toggle)
	if result.Error != nil {
		return "", result.Error
	}

	if result.RowsAffected == 0 {
		return "", nil
	}

	return toggle.Value, nil
}

// SetToggle stores value for formID, replacing a previous value.
func (s *Store) SetToggle(ctx context.Context, formID, value string) error {
	if formID == "" {
		return ErrFormIDEmpty
	}

	if value != ValueOn && value != ValueOff {
		return ErrInvalidToggleValue
	}

	toggle := models.FormToggle{
		FormID: formID,
		Value:  value,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "form_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&toggle).Error
}

// Delete removes the toggle of formID, the form is not blocking afterwards.
func (s *Store) Delete(ctx context.Context, formID string) error {
	if formID == "" {
		return ErrFormIDEmpty
	}

	return s.db.WithContext(ctx).Where(formIDQueryPattern, formID).Delete(&models.FormToggle{}).Error
}

