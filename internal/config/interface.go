package config

import "context"

// Loader is the interface for a format-specific scene loader.
type Loader interface {
	// Load reads every scene file reachable from paths and translates them
	// into a single model. Items keep the order in which they were read.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
