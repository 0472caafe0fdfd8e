package form

import (
	"sort"

	"tcintake/pkg/domain"
)

// State is the full form state owned by the store: the working record, the
// section cursor, completion and validation bookkeeping, and the submission
// guard flag.
type State struct {
	Record            domain.TransactionRecord
	CurrentSection    domain.Section
	CompletedSections []domain.Section
	Validation        map[domain.Field]domain.FieldValidation
	IsSubmitting      bool
}

// Action is one unit of state transition. Actions are applied in dispatch
// order by a pure reducer; no action performs I/O.
type Action interface{ isAction() }

// UpdateField replaces a single record field.
type UpdateField struct {
	Field domain.Field
	Value any
}

// SetSection moves the section cursor.
type SetSection struct{ Section domain.Section }

// CompleteSection records a section as completed. Idempotent; the completed
// set stays sorted and de-duplicated.
type CompleteSection struct{ Section domain.Section }

// SetValidation stores a field's latest validation outcome.
type SetValidation struct {
	Field   domain.Field
	IsValid bool
	Errors  []string
}

// TouchField marks a field as touched by the user.
type TouchField struct{ Field domain.Field }

// SetClientCount resizes the client list, clamped to the role's allowed
// range; new entries are blank clients with the role's default designation.
type SetClientCount struct{ Count int }

// StartSubmission raises the re-entrancy guard for a submission attempt.
type StartSubmission struct{}

// EndSubmission lowers the submission guard.
type EndSubmission struct{}

// ResetForm returns the state to defaults, including one blank client.
type ResetForm struct{}

func (UpdateField) isAction()     {}
func (SetSection) isAction()      {}
func (CompleteSection) isAction() {}
func (SetValidation) isAction()   {}
func (TouchField) isAction()      {}
func (SetClientCount) isAction()  {}
func (StartSubmission) isAction() {}
func (EndSubmission) isAction()   {}
func (ResetForm) isAction()       {}

// NewState returns the mount-time state: default record, intro section,
// nothing completed, nothing validated.
func NewState() State {
	return State{
		Record:         domain.DefaultRecord(),
		CurrentSection: domain.SectionIntro,
		Validation:     map[domain.Field]domain.FieldValidation{},
	}
}

// Reduce applies one action to the state and returns the next state. The
// previous state is never mutated.
func Reduce(state State, action Action) State {
	next := cloneState(state)
	switch a := action.(type) {
	case UpdateField:
		applyField(&next.Record, a.Field, a.Value)
	case SetSection:
		next.CurrentSection = a.Section
	case CompleteSection:
		if !containsSection(next.CompletedSections, a.Section) {
			next.CompletedSections = append(next.CompletedSections, a.Section)
			sort.Slice(next.CompletedSections, func(i, j int) bool {
				return next.CompletedSections[i] < next.CompletedSections[j]
			})
		}
	case SetValidation:
		v := next.Validation[a.Field]
		v.IsValid = a.IsValid
		v.Errors = append([]string(nil), a.Errors...)
		next.Validation[a.Field] = v
	case TouchField:
		v := next.Validation[a.Field]
		v.Touched = true
		next.Validation[a.Field] = v
	case SetClientCount:
		next.Record.Clients = resizeClients(next.Record.Clients, a.Count, next.Record.Role)
	case StartSubmission:
		next.IsSubmitting = true
	case EndSubmission:
		next.IsSubmitting = false
	case ResetForm:
		return NewState()
	}
	return next
}

// Store owns a State and applies actions in dispatch order. It also exposes
// the commission edit operations, which compose calculator output into
// field updates.
type Store struct {
	state State
	calc  Calculator
}

// NewStore constructs a store holding the mount-time state.
func NewStore() *Store {
	return &Store{state: NewState()}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	return cloneState(s.state)
}

// Record returns a snapshot of the working record.
func (s *Store) Record() domain.TransactionRecord {
	return s.state.Record.Clone()
}

// Dispatch applies one action.
func (s *Store) Dispatch(action Action) {
	s.state = Reduce(s.state, action)
}

// UpdateField dispatches an UPDATE_FIELD action.
func (s *Store) UpdateField(field domain.Field, value any) {
	s.Dispatch(UpdateField{Field: field, Value: value})
}

// SetSection dispatches a SET_SECTION action.
func (s *Store) SetSection(section domain.Section) {
	s.Dispatch(SetSection{Section: section})
}

// CompleteSection dispatches a COMPLETE_SECTION action.
func (s *Store) CompleteSection(section domain.Section) {
	s.Dispatch(CompleteSection{Section: section})
}

// SetValidation dispatches a SET_VALIDATION action.
func (s *Store) SetValidation(field domain.Field, isValid bool, errors []string) {
	s.Dispatch(SetValidation{Field: field, IsValid: isValid, Errors: errors})
}

// TouchField dispatches a TOUCH_FIELD action.
func (s *Store) TouchField(field domain.Field) {
	s.Dispatch(TouchField{Field: field})
}

// SetClientCount dispatches a client list resize.
func (s *Store) SetClientCount(count int) {
	s.Dispatch(SetClientCount{Count: count})
}

// StartSubmission raises the submission guard. It reports false when a
// submission is already in flight, in which case the caller must not start
// another pipeline run.
func (s *Store) StartSubmission() bool {
	if s.state.IsSubmitting {
		return false
	}
	s.Dispatch(StartSubmission{})
	return true
}

// EndSubmission lowers the submission guard.
func (s *Store) EndSubmission() {
	s.Dispatch(EndSubmission{})
}

// Reset returns the store to the mount-time state.
func (s *Store) Reset() {
	s.Dispatch(ResetForm{})
}

// EditCommissionPercentage runs a percentage-field edit through the
// calculator and stores the resulting record.
func (s *Store) EditCommissionPercentage(pair CommissionPair, input string) {
	s.replaceRecord(s.calc.SetPercentage(s.state.Record, pair, input))
}

// EditCommissionFixed runs a fixed-amount edit through the calculator.
func (s *Store) EditCommissionFixed(pair CommissionPair, input string) {
	s.replaceRecord(s.calc.SetFixed(s.state.Record, pair, input))
}

// BlurCommissionFixed normalizes a hand-edited fixed amount.
func (s *Store) BlurCommissionFixed(pair CommissionPair) {
	s.replaceRecord(s.calc.BlurFixed(s.state.Record, pair))
}

// replaceRecord swaps in a calculator-produced record snapshot while keeping
// the rest of the state intact.
func (s *Store) replaceRecord(record domain.TransactionRecord) {
	next := cloneState(s.state)
	next.Record = record
	s.state = next
}

func cloneState(state State) State {
	out := state
	out.Record = state.Record.Clone()
	out.CompletedSections = append([]domain.Section(nil), state.CompletedSections...)
	out.Validation = make(map[domain.Field]domain.FieldValidation, len(state.Validation))
	for f, v := range state.Validation {
		v.Errors = append([]string(nil), v.Errors...)
		out.Validation[f] = v
	}
	return out
}

// resizeClients clamps the requested count to [1, MaxClients(role)], appends
// blank role-designated clients to grow, and truncates to shrink. Retained
// entries are never modified.
func resizeClients(clients []domain.ClientInfo, count int, role domain.AgentRole) []domain.ClientInfo {
	if count < 1 {
		count = 1
	}
	if max := domain.MaxClients(role); count > max {
		count = max
	}
	out := append([]domain.ClientInfo(nil), clients...)
	for len(out) < count {
		out = append(out, domain.BlankClient(role))
	}
	return out[:count]
}
