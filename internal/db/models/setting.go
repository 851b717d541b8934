// Package models contains database model definitions.
package models

// Setting is a named value in the process wide key/value table.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:191;not null"`
	Value []byte
}
