// Package validation implements the form's rule catalogue and the engine that
// evaluates fields, sections, and whole records against it. Rules are fixed
// and form-specific; evaluation is total and never returns an error.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"tcintake/pkg/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// funcRule adapts a predicate into a domain.Rule. Every catalogue rule is one
// of these; conditional rules wrap their predicate with a record check.
type funcRule struct {
	name    string
	level   domain.Level
	message string
	check   func(value any, record domain.TransactionRecord) bool
}

func (r funcRule) Name() string        { return r.name }
func (r funcRule) Level() domain.Level { return r.level }

func (r funcRule) Evaluate(value any, record domain.TransactionRecord) (bool, string) {
	if r.check(value, record) {
		return true, ""
	}
	return false, r.message
}

// Required fails for empty trimmed strings, empty slices, and nil values.
// Booleans are always present and therefore always pass.
func Required(message string) domain.Rule {
	return funcRule{
		name:    "required",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			return !isEmpty(value)
		},
	}
}

// Email validates the address shape. Empty values pass; pair with Required.
func Email(message string) domain.Rule {
	return funcRule{
		name:    "email",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			s := stringValue(value)
			return s == "" || emailPattern.MatchString(s)
		},
	}
}

// Phone requires exactly ten digits after stripping formatting. Empty values
// pass; pair with Required.
func Phone(message string) domain.Rule {
	return funcRule{
		name:    "phone",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			s := stringValue(value)
			return s == "" || len(digitsOnly(s)) == 10
		},
	}
}

// Currency accepts values parsing to a non-negative number once formatting
// characters are removed. Empty values pass; pair with Required.
func Currency(message string) domain.Rule {
	return funcRule{
		name:    "currency",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			s := stringValue(value)
			if s == "" {
				return true
			}
			amount, err := strconv.ParseFloat(strings.ReplaceAll(CleanNumeric(s), ",", ""), 64)
			return err == nil && amount >= 0
		},
	}
}

// Percentage accepts numbers in [0, 100]. Empty values pass.
func Percentage(message string) domain.Rule {
	return funcRule{
		name:    "percentage",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			s := stringValue(value)
			if s == "" {
				return true
			}
			pct, err := strconv.ParseFloat(s, 64)
			return err == nil && pct >= 0 && pct <= 100
		},
	}
}

// MinLength requires at least n characters. Empty values pass.
func MinLength(n int, message string) domain.Rule {
	return funcRule{
		name:    "min_length",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			s := stringValue(value)
			return s == "" || len(s) >= n
		},
	}
}

// MustBeTrue requires an affirmative boolean, used for acknowledgments.
func MustBeTrue(message string) domain.Rule {
	return funcRule{
		name:    "must_be_true",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			b, ok := value.(bool)
			return ok && b
		},
	}
}

// ValidRole requires one of the selectable agent roles.
func ValidRole(message string) domain.Rule {
	return funcRule{
		name:    "valid_role",
		level:   domain.LevelInvalid,
		message: message,
		check: func(value any, _ domain.TransactionRecord) bool {
			role, ok := value.(domain.AgentRole)
			if !ok {
				role = domain.AgentRole(stringValue(value))
			}
			return role == domain.RoleUnset || role.Valid()
		},
	}
}

// When gates a rule on a record-level condition; the wrapped rule passes
// whenever the condition does not hold.
func When(condition func(domain.TransactionRecord) bool, rule domain.Rule) domain.Rule {
	return funcRule{
		name:    rule.Name(),
		level:   rule.Level(),
		message: failureMessage(rule),
		check: func(value any, record domain.TransactionRecord) bool {
			if !condition(record) {
				return true
			}
			ok, _ := rule.Evaluate(value, record)
			return ok
		},
	}
}

// failureMessage extracts the message a rule would produce on failure.
func failureMessage(rule domain.Rule) string {
	_, msg := rule.Evaluate(nil, domain.TransactionRecord{})
	if msg == "" {
		// Rule passes on nil (for example format rules that skip empties);
		// re-evaluate with an impossible value to surface the message.
		_, msg = rule.Evaluate("\x00", domain.TransactionRecord{})
	}
	return msg
}

// CleanNumeric strips everything but digits and decimal points from a
// currency input and collapses extra decimal points onto the first one.
func CleanNumeric(value string) string {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	parts := strings.Split(cleaned, ".")
	if len(parts) > 2 {
		cleaned = parts[0] + "." + strings.Join(parts[1:], "")
	}
	return cleaned
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case domain.AgentRole:
		return string(v)
	case domain.MaritalStatus:
		return string(v)
	case domain.ClientDesignation:
		return string(v)
	case domain.CommissionBase:
		return string(v)
	case domain.TCFeePaidBy:
		return string(v)
	case domain.AccessType:
		return string(v)
	case domain.PropertyStatus:
		return string(v)
	case domain.WarrantyPaidBy:
		return string(v)
	case domain.WinterizedStatus:
		return string(v)
	}
	return ""
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return false
	case []string:
		return len(v) == 0
	case []domain.ClientInfo:
		return len(v) == 0
	default:
		return strings.TrimSpace(stringValue(value)) == ""
	}
}
