package analytics

import (
	"github.com/prometheus/client_golang/prometheus"

	"tcintake/pkg/domain"
)

// PrometheusRecorder exposes form telemetry as Prometheus counters. It
// fulfills Recorder for deployments that scrape metrics.
type PrometheusRecorder struct {
	interactions *prometheus.CounterVec
	validations  *prometheus.CounterVec
	submissions  *prometheus.CounterVec
}

// NewPrometheusRecorder constructs a recorder and registers its collectors
// with the supplied registerer (prometheus.DefaultRegisterer when nil).
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PrometheusRecorder{
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_field_interactions_total",
			Help: "Form field interactions by field and event type.",
		}, []string{"field", "event"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_validations_total",
			Help: "Validation outcomes by subject and result.",
		}, []string{"subject", "result"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Submission pipeline outcomes.",
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{r.interactions, r.validations, r.submissions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func result(isValid bool) string {
	if isValid {
		return "valid"
	}
	return "invalid"
}

func (r *PrometheusRecorder) FieldInteraction(field domain.Field, event FieldEventType, _ string) {
	r.interactions.WithLabelValues(string(field), string(event)).Inc()
}

func (r *PrometheusRecorder) Validation(field domain.Field, isValid bool, _ []string) {
	r.validations.WithLabelValues(string(field), result(isValid)).Inc()
}

func (r *PrometheusRecorder) SectionValidation(section domain.Section, isValid bool, _ []string) {
	r.validations.WithLabelValues("section:"+section.String(), result(isValid)).Inc()
}

func (r *PrometheusRecorder) FormSubmission(success bool, _ []string) {
	outcome := "attempt_invalid"
	if success {
		outcome = "attempt"
	}
	r.submissions.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRecorder) FormSubmissionSuccess(string) {
	r.submissions.WithLabelValues("success").Inc()
}

func (r *PrometheusRecorder) FormSubmissionError([]string) {
	r.submissions.WithLabelValues("error").Inc()
}
