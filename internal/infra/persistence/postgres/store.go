// Package postgres provides a Postgres-backed submission cache mirroring the
// sqlite layout, for deployments that centralize intake records.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"tcintake/pkg/domain"
)

var _ domain.SubmissionStore = (*Store)(nil)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/tcintake?sslmode=disable"
	pointerKey    = "lastTransactionId"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Store is a Postgres-backed submission cache.
type Store struct {
	db *sql.DB
}

// NewStore opens a cache using the provided DSN (falls back to defaultDSN)
// and ensures the state table exists.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	ddl := `CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("ensure state table: %w", err)
	}
	return &Store{db: db}, nil
}

func recordKey(transactionID string) string { return "transaction_" + transactionID }

// SaveSubmission upserts the record and the pointer in one transaction.
func (s *Store) SaveSubmission(ctx context.Context, record domain.SubmissionRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	const upsert = `INSERT INTO state(key,payload) VALUES($1,$2) ON CONFLICT(key) DO UPDATE SET payload=EXCLUDED.payload`
	if _, err := tx.ExecContext(ctx, upsert, recordKey(record.TransactionID), payload); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, pointerKey, []byte(record.TransactionID)); err != nil {
		return fmt.Errorf("upsert pointer: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// Submission fetches a cached record by transaction id.
func (s *Store) Submission(ctx context.Context, transactionID string) (domain.SubmissionRecord, bool, error) {
	return s.get(ctx, recordKey(transactionID))
}

// LastSubmission resolves the pointer and fetches the record it names.
func (s *Store) LastSubmission(ctx context.Context) (domain.SubmissionRecord, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key=$1`, pointerKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SubmissionRecord{}, false, nil
	}
	if err != nil {
		return domain.SubmissionRecord{}, false, fmt.Errorf("select pointer: %w", err)
	}
	return s.get(ctx, recordKey(string(payload)))
}

// ClearLastSubmission deletes the pointed-to record and the pointer.
func (s *Store) ClearLastSubmission(ctx context.Context) error {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key=$1`, pointerKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("select pointer: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key IN ($1,$2)`, pointerKey, recordKey(string(payload))); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) get(ctx context.Context, key string) (domain.SubmissionRecord, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key=$1`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SubmissionRecord{}, false, nil
	}
	if err != nil {
		return domain.SubmissionRecord{}, false, fmt.Errorf("select %s: %w", key, err)
	}
	var rec domain.SubmissionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return domain.SubmissionRecord{}, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return rec, true, nil
}

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore
// function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
