package domain

import "context"

// SubmissionStore is a minimal abstraction over the local submission cache.
// Implementations are best-effort durable caches, not systems of record: the
// backend owns the authoritative copy once a submission succeeds.
type SubmissionStore interface {
	// SaveSubmission stores the record under its transaction id and moves the
	// last-submission pointer to it.
	SaveSubmission(ctx context.Context, record SubmissionRecord) error
	// Submission fetches a cached record by transaction id.
	Submission(ctx context.Context, transactionID string) (SubmissionRecord, bool, error)
	// LastSubmission returns the record the last-submission pointer names, or
	// ok=false when the pointer or record is absent.
	LastSubmission(ctx context.Context) (SubmissionRecord, bool, error)
	// ClearLastSubmission removes the pointed-to record and the pointer.
	ClearLastSubmission(ctx context.Context) error
	// Close releases any underlying resources.
	Close() error
}
