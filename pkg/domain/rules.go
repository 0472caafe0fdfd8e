package domain

// Level classifies a failed rule: invalid findings block section progression
// and submission, warnings surface without blocking.
type Level string

// Rule levels.
const (
	LevelInvalid Level = "invalid"
	LevelWarning Level = "warning"
)

// Rule evaluates one constraint against a field value. Conditional rules read
// other fields off the record snapshot passed alongside the value; they never
// close over mutable state.
type Rule interface {
	// Name identifies the rule for diagnostics and analytics.
	Name() string
	// Level reports the severity of a failed evaluation.
	Level() Level
	// Evaluate returns ok=true when the value satisfies the rule, otherwise
	// ok=false and a user-facing message. Evaluation never fails.
	Evaluate(value any, record TransactionRecord) (ok bool, message string)
}

// FieldResult is the outcome of evaluating the rules bound to one field.
// Warnings never affect IsValid.
type FieldResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// Merge folds another result into the receiver, preserving message order.
func (r *FieldResult) Merge(other FieldResult) {
	if !other.IsValid {
		r.IsValid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// FieldValidation is the per-field validation state tracked by the form
// store: the latest result plus whether the user has touched the field.
type FieldValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
	Touched bool     `json:"touched"`
}
