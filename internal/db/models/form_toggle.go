package models

import "time"

// FormToggle stores whether disposable address blocking is enabled for a form.
// A form without a row is not blocking.
type FormToggle struct {
	ID        uint64 `gorm:"primaryKey"`
	FormID    string `gorm:"size:191;not null;uniqueIndex"`
	Value     string `gorm:"size:8;not null"`
	UpdatedAt time.Time
}
