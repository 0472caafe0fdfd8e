// Package sqlite persists the submission cache to a single SQLite table as
// JSON blobs, mirroring the key layout of the browser cache it replaces:
// record keys "transaction_{id}" plus a "lastTransactionId" pointer.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"tcintake/pkg/domain"
)

var _ domain.SubmissionStore = (*Store)(nil)

const pointerKey = "lastTransactionId"

// Store is a SQLite-backed submission cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the cache database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "tcintake.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func recordKey(transactionID string) string { return "transaction_" + transactionID }

// SaveSubmission upserts the record and the pointer in one transaction.
func (s *Store) SaveSubmission(ctx context.Context, record domain.SubmissionRecord) (retErr error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	const upsert = `INSERT INTO state(key,payload) VALUES(?,?) ON CONFLICT(key) DO UPDATE SET payload=excluded.payload`
	if _, err := tx.ExecContext(ctx, upsert, recordKey(record.TransactionID), payload); err != nil {
		retErr = fmt.Errorf("upsert record: %w", err)
		return retErr
	}
	if _, err := tx.ExecContext(ctx, upsert, pointerKey, []byte(record.TransactionID)); err != nil {
		retErr = fmt.Errorf("upsert pointer: %w", err)
		return retErr
	}
	return tx.Commit()
}

// Submission fetches a cached record by transaction id.
func (s *Store) Submission(ctx context.Context, transactionID string) (domain.SubmissionRecord, bool, error) {
	return s.get(ctx, recordKey(transactionID))
}

// LastSubmission resolves the pointer and fetches the record it names.
func (s *Store) LastSubmission(ctx context.Context) (domain.SubmissionRecord, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key=?`, pointerKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SubmissionRecord{}, false, nil
	}
	if err != nil {
		return domain.SubmissionRecord{}, false, fmt.Errorf("select pointer: %w", err)
	}
	return s.get(ctx, recordKey(string(payload)))
}

// ClearLastSubmission deletes the pointed-to record and the pointer.
func (s *Store) ClearLastSubmission(ctx context.Context) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	var payload []byte
	err = tx.QueryRowContext(ctx, `SELECT payload FROM state WHERE key=?`, pointerKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return tx.Commit()
	}
	if err != nil {
		retErr = fmt.Errorf("select pointer: %w", err)
		return retErr
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE key IN (?,?)`, pointerKey, recordKey(string(payload))); err != nil {
		retErr = fmt.Errorf("delete: %w", err)
		return retErr
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

func (s *Store) get(ctx context.Context, key string) (domain.SubmissionRecord, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key=?`, key).Scan(&payload)
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
