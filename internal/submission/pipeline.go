package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tcintake/internal/analytics"
	"tcintake/internal/blob"
	"tcintake/internal/validation"
	"tcintake/pkg/domain"
)

// Stage names a phase of the submission pipeline.
type Stage string

const (
	StageValidation Stage = "validation"
	StageProcessing Stage = "processing"
	StageUploading  Stage = "uploading"
	StageComplete   Stage = "complete"
)

// Progress is delivered to the caller as the pipeline advances through its
// stages. Stages are sequential and none is skipped once upload begins.
type Progress struct {
	Stage   Stage
	Percent float64
	Message string
}

// ProgressFunc receives progress updates. A nil func disables reporting.
type ProgressFunc func(Progress)

// Result is the outcome of a single submission run.
type Result struct {
	Success        bool
	Errors         []string
	TransactionID  string
	SubmissionDate string
}

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// apiResponse is the backend reply shape for both success and structured
// failure.
type apiResponse struct {
	TransactionID  string `json:"transactionId"`
	SubmissionDate string `json:"submissionDate"`
	Message        string `json:"message"`
}

// Pipeline validates, normalizes, uploads, and persists a transaction record.
// A Pipeline is safe for sequential reuse; callers guard re-entrancy through
// the form store's submission flag.
type Pipeline struct {
	endpoint  string
	client    Doer
	validator *validation.Engine
	store     domain.SubmissionStore
	archive   blob.Store
	analytics analytics.Safe
	log       *zap.Logger
	retry     RetryConfig
	norm      Normalizer
	sleep     SleepFunc
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithHTTPClient replaces the transport.
func WithHTTPClient(d Doer) Option { return func(p *Pipeline) { p.client = d } }

// WithValidator replaces the pre-submit validation engine.
func WithValidator(e *validation.Engine) Option { return func(p *Pipeline) { p.validator = e } }

// WithArchive enables best-effort archiving of each submitted snapshot.
func WithArchive(s blob.Store) Option { return func(p *Pipeline) { p.archive = s } }

// WithAnalytics installs the analytics collaborator. Calls are fire and
// forget; panics in the recorder never reach the pipeline.
func WithAnalytics(r analytics.Recorder) Option {
	return func(p *Pipeline) { p.analytics = analytics.Safe{Inner: r} }
}

// WithLogger replaces the no-op logger.
func WithLogger(l *zap.Logger) Option { return func(p *Pipeline) { p.log = l } }

// WithRetry replaces the retry policy.
func WithRetry(cfg RetryConfig) Option { return func(p *Pipeline) { p.retry = cfg } }

// WithSleep replaces the inter-retry delay, letting tests run without real
// timers.
func WithSleep(fn SleepFunc) Option { return func(p *Pipeline) { p.sleep = fn } }

// WithClock fixes the normalizer's clock.
func WithClock(now func() time.Time) Option { return func(p *Pipeline) { p.norm.now = now } }

// WithRandom fixes the transaction identifier entropy source.
func WithRandom(r io.Reader) Option { return func(p *Pipeline) { p.norm.rand = r } }

// New constructs a pipeline posting to endpoint and persisting outcomes in
// store.
func New(endpoint string, store domain.SubmissionStore, opts ...Option) *Pipeline {
	p := &Pipeline{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: 30 * time.Second},
		validator: validation.NewEngine(),
		store:     store,
		analytics: analytics.Safe{},
		log:       zap.NewNop(),
		retry:     DefaultRetryConfig(),
		norm:      NewNormalizer(),
		sleep:     realSleep,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Submit runs the full pipeline for one record snapshot. Validation failures
// return before any network call; upload failures never persist.
func (p *Pipeline) Submit(ctx context.Context, record domain.TransactionRecord, onProgress ProgressFunc) Result {
	report := func(stage Stage, percent float64, message string) {
		if onProgress != nil {
			onProgress(Progress{Stage: stage, Percent: percent, Message: message})
		}
	}

	report(StageValidation, 0, "Validating form data...")
	if res := p.validator.ValidateForm(record); !res.IsValid {
		p.log.Info("submission rejected by validation", zap.Error(&ValidationError{Errors: res.Errors}))
		p.analytics.FormSubmission(false, res.Errors)
		p.analytics.FormSubmissionError(res.Errors)
		return Result{Success: false, Errors: res.Errors}
	}

	report(StageProcessing, 25, "Processing transaction data...")
	snapshot := p.norm.Process(record)

	body, err := json.Marshal(snapshot)
	if err != nil {
		p.analytics.FormSubmissionError([]string{err.Error()})
		report(StageComplete, 100, "Submission failed")
		return Result{Success: false, Errors: []string{err.Error()}}
	}

	outcome := p.upload(ctx, snapshot.TransactionID, body, report)
	if !outcome.Success {
		p.analytics.FormSubmission(false, outcome.Errors)
		p.analytics.FormSubmissionError(outcome.Errors)
		report(StageComplete, 100, "Submission failed")
		return outcome
	}

	// Server echo is authoritative for the final identifier and timestamp.
	if outcome.TransactionID != "" {
		snapshot.TransactionID = outcome.TransactionID
	}
	if outcome.SubmissionDate != "" {
		snapshot.SubmissionDate = outcome.SubmissionDate
	}

	if err := p.store.SaveSubmission(ctx, snapshot); err != nil {
		p.log.Error("persist submission", zap.String("transaction_id", snapshot.TransactionID), zap.Error(err))
	}
	p.archiveSnapshot(ctx, snapshot)

	p.analytics.FormSubmission(true, nil)
	p.analytics.FormSubmissionSuccess(snapshot.TransactionID)
	report(StageComplete, 100, "Transaction submitted successfully")
	return Result{Success: true, TransactionID: snapshot.TransactionID, SubmissionDate: snapshot.SubmissionDate}
}

// upload runs the retry loop. 400 and 422 replies are structured validation
// failures and are never retried; everything else retries with backoff until
// the attempt budget runs out.
func (p *Pipeline) upload(ctx context.Context, transactionID string, body []byte, report func(Stage, float64, string)) Result {
	var lastErr string
	for attempt := 1; attempt <= p.retry.MaxAttempts; attempt++ {
		report(StageUploading, 50, fmt.Sprintf("Submitting transaction (attempt %d of %d)...", attempt, p.retry.MaxAttempts))

		reply, err := p.postOnce(ctx, body)
		if err == nil {
			return Result{Success: true, TransactionID: reply.TransactionID, SubmissionDate: reply.SubmissionDate}
		}
		if !retryable(err) {
			return Result{Success: false, Errors: []string{err.Error()}}
		}
		lastErr = err.Error()
		p.log.Warn("submission attempt failed",
			zap.String("transaction_id", transactionID),
			zap.Int("attempt", attempt),
			zap.String("error", lastErr))

		if attempt == p.retry.MaxAttempts {
			break
		}
		delay := p.retry.DelayFor(attempt)
		report(StageUploading, 50, fmt.Sprintf("Retrying in %s (attempt %d of %d failed)...", delay, attempt, p.retry.MaxAttempts))
		if err := p.sleep(ctx, delay); err != nil {
			lastErr = err.Error()
			break
		}
	}
	return Result{Success: false, Errors: []string{lastErr}}
}

// postOnce performs a single POST. On success it returns the decoded reply;
// otherwise the error is either a transport failure or an *APIError carrying
// the reply status.
func (p *Pipeline) postOnce(ctx context.Context, body []byte) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var reply apiResponse
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if readErr == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &reply)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return &reply, nil
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		message := reply.Message
		if message == "" {
			message = "API Error"
		}
		return nil, &APIError{Status: resp.StatusCode, Message: message}
	default:
		return nil, &APIError{Status: resp.StatusCode}
	}
}

func (p *Pipeline) archiveSnapshot(ctx context.Context, snapshot domain.SubmissionRecord) {
	if p.archive == nil {
		return
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		p.log.Warn("archive submission", zap.Error(err))
		return
	}
	key := fmt.Sprintf("submissions/%s.json", snapshot.TransactionID)
	if _, err := p.archive.Put(ctx, key, bytes.NewReader(data), blob.PutOptions{ContentType: "application/json"}); err != nil {
		p.log.Warn("archive submission", zap.String("key", key), zap.Error(err))
	}
}

// LastSubmission returns the most recently persisted submission. Storage
// failures are logged and reported as absence; the call never fails.
func (p *Pipeline) LastSubmission(ctx context.Context) (domain.SubmissionRecord, bool) {
	rec, ok, err := p.store.LastSubmission(ctx)
	if err != nil {
		p.log.Warn("read last submission", zap.Error(err))
		return domain.SubmissionRecord{}, false
	}
	return rec, ok
}

// ClearLastSubmission drops the last-submission pointer and its record,
// swallowing storage failures.
func (p *Pipeline) ClearLastSubmission(ctx context.Context) {
	if err := p.store.ClearLastSubmission(ctx); err != nil {
		p.log.Warn("clear last submission", zap.Error(err))
	}
}
