package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given paths, applying them on top of
	// Defaults in path order. Paths that do not exist are skipped.
	Load(ctx context.Context, paths ...string) (*Settings, error)
}
