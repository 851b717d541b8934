package blocker

import "errors"

var (
	// ErrNilStore is returned when a constructor is called without a required store.
	ErrNilStore = errors.New("store can not be nil")

	// ErrEmptyListFile is returned when no domain list path was configured.
	ErrEmptyListFile = errors.New("domain list path can not be empty")
)
