package plugin

import "errors"

var (
	// ErrNotEditor is returned when form settings are saved without editor rights.
	ErrNotEditor = errors.New("only editors can change form settings")

	// ErrNilDependency is returned by New when a required dependency is missing.
	ErrNilDependency = errors.New("plugin dependency can not be nil")
)
