package analytics

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"tcintake/pkg/domain"
)

var expvarSeq uint64

// ExpvarRecorder publishes aggregate form-event counters via expvar. It
// fulfills Recorder for deployments that prefer process-local telemetry
// without external dependencies.
type ExpvarRecorder struct {
	name         string
	mu           sync.Mutex
	interactions map[string]int64
	validations  map[string]map[string]int64
	submissions  map[string]int64
}

// ExpvarSnapshot captures a read-only view of the recorded counters.
type ExpvarSnapshot struct {
	Interactions map[string]int64            `json:"field_interactions_total"`
	Validations  map[string]map[string]int64 `json:"validations_total"`
	Submissions  map[string]int64            `json:"submissions_total"`
	RecordedAt   time.Time                   `json:"recorded_at"`
}

// NewExpvarRecorder constructs an expvar-backed recorder and publishes it
// under the supplied name. When name is empty, a unique identifier is
// generated.
func NewExpvarRecorder(name string) *ExpvarRecorder {
	if name == "" {
		id := atomic.AddUint64(&expvarSeq, 1)
		name = fmt.Sprintf("intake_form_analytics_%d", id)
	}
	rec := &ExpvarRecorder{
		name:         name,
		interactions: make(map[string]int64),
		validations:  make(map[string]map[string]int64),
		submissions:  make(map[string]int64),
	}
	expvar.Publish(name, expvar.Func(func() any {
		return rec.Snapshot()
	}))
	return rec
}

// Name returns the expvar export name associated with the recorder.
func (r *ExpvarRecorder) Name() string { return r.name }

// Snapshot returns an immutable copy of the aggregated counters.
func (r *ExpvarRecorder) Snapshot() ExpvarSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	interactions := make(map[string]int64, len(r.interactions))
	for k, v := range r.interactions {
		interactions[k] = v
	}
	validations := make(map[string]map[string]int64, len(r.validations))
	for k, statuses := range r.validations {
		cpy := make(map[string]int64, len(statuses))
		for status, count := range statuses {
			cpy[status] = count
		}
		validations[k] = cpy
	}
	submissions := make(map[string]int64, len(r.submissions))
	for k, v := range r.submissions {
		submissions[k] = v
	}
	return ExpvarSnapshot{
		Interactions: interactions,
		Validations:  validations,
		Submissions:  submissions,
		RecordedAt:   time.Now().UTC(),
	}
}

func (r *ExpvarRecorder) FieldInteraction(field domain.Field, event FieldEventType, _ string) {
	r.mu.Lock()
	r.interactions[string(field)+":"+string(event)]++
	r.mu.Unlock()
}

func (r *ExpvarRecorder) Validation(field domain.Field, isValid bool, _ []string) {
	r.recordValidation(string(field), isValid)
}

func (r *ExpvarRecorder) SectionValidation(section domain.Section, isValid bool, _ []string) {
	r.recordValidation("section:"+section.String(), isValid)
}

func (r *ExpvarRecorder) recordValidation(key string, isValid bool) {
	status := "invalid"
	if isValid {
		status = "valid"
	}
	r.mu.Lock()
	if _, ok := r.validations[key]; !ok {
		r.validations[key] = make(map[string]int64, 2)
	}
	r.validations[key][status]++
	r.mu.Unlock()
}

func (r *ExpvarRecorder) FormSubmission(success bool, _ []string) {
	key := "attempt_invalid"
	if success {
		key = "attempt"
	}
	r.mu.Lock()
	r.submissions[key]++
	r.mu.Unlock()
}

func (r *ExpvarRecorder) FormSubmissionSuccess(string) {
	r.mu.Lock()
	r.submissions["success"]++
	r.mu.Unlock()
}

func (r *ExpvarRecorder) FormSubmissionError([]string) {
	r.mu.Lock()
	r.submissions["error"]++
	r.mu.Unlock()
}
