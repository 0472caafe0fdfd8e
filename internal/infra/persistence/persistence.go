// Package persistence selects a submission cache backend by driver name.
package persistence

import (
	"context"
	"fmt"

	"tcintake/internal/infra/persistence/memory"
	"tcintake/internal/infra/persistence/postgres"
	"tcintake/internal/infra/persistence/sqlite"
	"tcintake/pkg/domain"
)

// Driver names a cache backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config selects and configures the cache backend.
type Config struct {
	Driver Driver
	// SQLite
	Path string
	// Postgres
	DSN string
}

// Open constructs the cache named by cfg.Driver. An empty driver selects
// sqlite, the local-first default.
func Open(ctx context.Context, cfg Config) (domain.SubmissionStore, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		return sqlite.NewStore(cfg.Path)
	case DriverMemory:
		return memory.NewStore(), nil
	case DriverPostgres:
		return postgres.NewStore(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown persistence driver %q", cfg.Driver)
	}
}
