// Package analytics defines the fire-and-forget event sink the form engine
// notifies. Recorders are one-way: the engine never reads a result from them
// and remains correct when every call is a no-op.
package analytics

import "tcintake/pkg/domain"

// FieldEventType classifies a field interaction.
type FieldEventType string

// Field interaction event types.
const (
	EventFocus  FieldEventType = "focus"
	EventChange FieldEventType = "change"
	EventBlur   FieldEventType = "blur"
)

// Recorder receives form telemetry. Implementations must be cheap and must
// not block; callers wrap invocations so a panicking recorder cannot affect
// form behavior.
type Recorder interface {
	FieldInteraction(field domain.Field, event FieldEventType, value string)
	Validation(field domain.Field, isValid bool, errors []string)
	SectionValidation(section domain.Section, isValid bool, errors []string)
	FormSubmission(success bool, errors []string)
	FormSubmissionSuccess(transactionID string)
	FormSubmissionError(errors []string)
}

// Noop is the default recorder; every notification is discarded.
type Noop struct{}

func (Noop) FieldInteraction(domain.Field, FieldEventType, string) {}
func (Noop) Validation(domain.Field, bool, []string)               {}
func (Noop) SectionValidation(domain.Section, bool, []string)      {}
func (Noop) FormSubmission(bool, []string)                         {}
func (Noop) FormSubmissionSuccess(string)                          {}
func (Noop) FormSubmissionError([]string)                          {}

// Safe wraps a recorder so that panics in the underlying implementation are
// swallowed. A nil inner recorder degrades to a no-op.
type Safe struct {
	Inner Recorder
}

func (s Safe) call(fn func(Recorder)) {
	if s.Inner == nil {
		return
	}
	defer func() { _ = recover() }()
	fn(s.Inner)
}

func (s Safe) FieldInteraction(field domain.Field, event FieldEventType, value string) {
	s.call(func(r Recorder) { r.FieldInteraction(field, event, value) })
}

func (s Safe) Validation(field domain.Field, isValid bool, errors []string) {
	s.call(func(r Recorder) { r.Validation(field, isValid, errors) })
}

func (s Safe) SectionValidation(section domain.Section, isValid bool, errors []string) {
	s.call(func(r Recorder) { r.SectionValidation(section, isValid, errors) })
}

func (s Safe) FormSubmission(success bool, errors []string) {
	s.call(func(r Recorder) { r.FormSubmission(success, errors) })
}

func (s Safe) FormSubmissionSuccess(transactionID string) {
	s.call(func(r Recorder) { r.FormSubmissionSuccess(transactionID) })
}

func (s Safe) FormSubmissionError(errors []string) {
	s.call(func(r Recorder) { r.FormSubmissionError(errors) })
}
