package submission

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tcintake/internal/blob"
	"tcintake/internal/infra/persistence/memory"
	"tcintake/pkg/domain"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func submittableRecord() domain.TransactionRecord {
	r := domain.DefaultRecord()
	r.Role = domain.RoleListingAgent
	r.PropertyAddress = "123 Main St"
	r.SalePrice = "600000"
	r.Clients = []domain.ClientInfo{{
		Name:          "Jane Doe",
		Address:       "456 Oak Ave",
		Email:         "jane@example.com",
		Phone:         "2155551234",
		MaritalStatus: domain.MaritalSingle,
		Designation:   domain.DesignationSeller,
	}}
	r.TotalCommission = "6"
	r.TitleCompany = "Keystone Abstract"
	r.AcknowledgeDocuments = true
	r.AgentName = "Alex Agent"
	r.DateSubmitted = "2026-09-01"
	r.ConfirmationChecked = true
	return r
}

func noSleep(t *testing.T) (SleepFunc, *[]time.Duration) {
	t.Helper()
	var slept []time.Duration
	return func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}, &slept
}

func TestSubmitSuccess(t *testing.T) {
	store := memory.NewStore()
	archive := blob.NewMemory()
	var calls int
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, "application/json", req.Header.Get("Content-Type"))
		return jsonResponse(200, `{"transactionId":"TX-20260901-SERVERAAA","submissionDate":"2026-09-01T16:00:00Z"}`), nil
	})

	pipe := New("http://backend/api/transactions", store,
		WithHTTPClient(doer), WithArchive(archive))

	var stages []Stage
	result := pipe.Submit(context.Background(), submittableRecord(), func(p Progress) {
		stages = append(stages, p.Stage)
	})

	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Equal(t, 1, calls)
	require.Equal(t, "TX-20260901-SERVERAAA", result.TransactionID)
	require.Equal(t, "2026-09-01T16:00:00Z", result.SubmissionDate)

	// Stage order: validation, processing, uploading, complete.
	require.Equal(t, StageValidation, stages[0])
	require.Equal(t, StageProcessing, stages[1])
	require.Equal(t, StageUploading, stages[2])
	require.Equal(t, StageComplete, stages[len(stages)-1])

	rec, ok := pipe.LastSubmission(context.Background())
	require.True(t, ok)
	require.Equal(t, "TX-20260901-SERVERAAA", rec.TransactionID)
	require.Equal(t, domain.StatusPending, rec.Status)

	infos, err := archive.List(context.Background(), "submissions/")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "submissions/TX-20260901-SERVERAAA.json", infos[0].Key)
}

func TestSubmitRetriesExactlyMaxAttempts(t *testing.T) {
	store := memory.NewStore()
	var calls int
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("connection refused")
	})
	sleep, slept := noSleep(t)

	pipe := New("http://backend/api/transactions", store,
		WithHTTPClient(doer), WithSleep(sleep))

	result := pipe.Submit(context.Background(), submittableRecord(), nil)
	require.False(t, result.Success)
	require.Equal(t, 3, calls, "transport must be invoked exactly maxAttempts times")
	require.Equal(t, []string{"connection refused"}, result.Errors)

	// Backoff doubles: 1s then 2s, and no sleep after the final attempt.
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *slept)

	// Failures never persist.
	require.Equal(t, 0, store.Len())
	_, ok := pipe.LastSubmission(context.Background())
	require.False(t, ok)
}

func TestSubmitUnprocessableEntityShortCircuits(t *testing.T) {
	var calls int
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(422, `{}`), nil
	})
	sleep, slept := noSleep(t)
	pipe := New("http://backend/api/transactions", memory.NewStore(),
		WithHTTPClient(doer), WithSleep(sleep))

	result := pipe.Submit(context.Background(), submittableRecord(), nil)
	require.False(t, result.Success)
	require.Equal(t, 1, calls, "4xx validation failures are non-retryable")
	require.Empty(t, *slept)
	require.Equal(t, []string{"API Error"}, result.Errors)
}

func TestSubmitBadRequestSurfacesServerMessage(t *testing.T) {
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(400, `{"message":"duplicate transaction"}`), nil
	})
	pipe := New("http://backend/api/transactions", memory.NewStore(), WithHTTPClient(doer))

	result := pipe.Submit(context.Background(), submittableRecord(), nil)
	require.False(t, result.Success)
	require.Equal(t, []string{"duplicate transaction"}, result.Errors)
}

func TestSubmitRetriesServerErrorsThenSucceeds(t *testing.T) {
	var calls int
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		if calls < 3 {
			return jsonResponse(503, ``), nil
		}
		return jsonResponse(201, `{}`), nil
	})
	sleep, _ := noSleep(t)
	store := memory.NewStore()
	pipe := New("http://backend/api/transactions", store,
		WithHTTPClient(doer), WithSleep(sleep))

	result := pipe.Submit(context.Background(), submittableRecord(), nil)
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Equal(t, 3, calls)

	// An empty echo keeps the client-generated identifier.
	require.Regexp(t, `^TX-\d{8}-[A-Z0-9]{9}$`, result.TransactionID)
	require.Equal(t, 1, store.Len())
}

func TestSubmitValidationFailureSkipsTransport(t *testing.T) {
	var calls int
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(200, `{}`), nil
	})
	pipe := New("http://backend/api/transactions", memory.NewStore(), WithHTTPClient(doer))

	result := pipe.Submit(context.Background(), domain.DefaultRecord(), nil)
	require.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	require.Zero(t, calls, "no network call on validation failure")
}

type failingStore struct{ *memory.Store }

func (f *failingStore) SaveSubmission(context.Context, domain.SubmissionRecord) error {
	return errors.New("disk full")
}

func TestSubmitSwallowsStorageErrors(t *testing.T) {
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, `{}`), nil
	})
	store := &failingStore{Store: memory.NewStore()}
	pipe := New("http://backend/api/transactions", store, WithHTTPClient(doer))

	result := pipe.Submit(context.Background(), submittableRecord(), nil)
	require.True(t, result.Success, "storage failure must not fail a submitted transaction")
}

func TestClearLastSubmission(t *testing.T) {
	store := memory.NewStore()
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(200, `{}`), nil
	})
	pipe := New("http://backend/api/transactions", store, WithHTTPClient(doer))

	result := pipe.Submit(context.Background(), submittableRecord(), nil)
	require.True(t, result.Success)
	_, ok := pipe.LastSubmission(context.Background())
	require.True(t, ok)

	pipe.ClearLastSubmission(context.Background())
	_, ok = pipe.LastSubmission(context.Background())
	require.False(t, ok)
	require.Equal(t, 0, store.Len(), "clear removes the record and the pointer")
}

func TestRetryDelayFor(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 4, Delay: time.Second, BackoffFactor: 2}
	require.Equal(t, time.Second, cfg.DelayFor(1))
	require.Equal(t, 2*time.Second, cfg.DelayFor(2))
	require.Equal(t, 4*time.Second, cfg.DelayFor(3))
}

func TestSubmitCancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls int
	doer := doerFunc(func(*http.Request) (*http.Response, error) {
		calls++
		cancel()
		return nil, errors.New("connection reset")
	})
	pipe := New("http://backend/api/transactions", memory.NewStore(), WithHTTPClient(doer))

	result := pipe.Submit(ctx, submittableRecord(), nil)
	require.False(t, result.Success)
	require.Equal(t, 1, calls, "cancellation interrupts the retry loop")
}
