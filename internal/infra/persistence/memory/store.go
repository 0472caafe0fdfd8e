// Package memory provides the in-process submission cache used by tests and
// as the hydration base for the durable backends.
package memory

import (
	"context"
	"sync"

	"tcintake/pkg/domain"
)

var _ domain.SubmissionStore = (*Store)(nil)

// Store keeps submissions in a mutex-guarded map keyed by transaction id.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.SubmissionRecord
	lastID  string
}

// NewStore returns an empty in-memory cache.
func NewStore() *Store {
	return &Store{records: make(map[string]domain.SubmissionRecord)}
}

// SaveSubmission stores the record and moves the last-submission pointer.
func (s *Store) SaveSubmission(_ context.Context, record domain.SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.TransactionID] = record
	s.lastID = record.TransactionID
	return nil
}

// Submission fetches a cached record by transaction id.
func (s *Store) Submission(_ context.Context, transactionID string) (domain.SubmissionRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[transactionID]
	return rec, ok, nil
}

// LastSubmission returns the record the pointer names.
func (s *Store) LastSubmission(_ context.Context) (domain.SubmissionRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastID == "" {
		return domain.SubmissionRecord{}, false, nil
	}
	rec, ok := s.records[s.lastID]
	return rec, ok, nil
}

// ClearLastSubmission removes the pointed-to record and the pointer.
func (s *Store) ClearLastSubmission(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastID != "" {
		delete(s.records, s.lastID)
		s.lastID = ""
	}
	return nil
}

// Close is a no-op for the in-memory cache.
func (s *Store) Close() error { return nil }

// Len reports the number of cached submissions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
