package blob

import (
	"context"
	"fmt"
)

// OpenConfig selects and configures the document archive backend.
type OpenConfig struct {
	Driver Driver
	// Filesystem
	Root string
	// S3
	S3 S3Config
}

// Open constructs the archive named by cfg.Driver. An empty driver selects
// the in-memory store.
func Open(ctx context.Context, cfg OpenConfig) (Store, error) {
	switch cfg.Driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverFilesystem:
		return NewFilesystem(cfg.Root)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
	}
}
