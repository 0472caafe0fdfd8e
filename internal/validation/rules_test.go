package validation

import (
	"testing"

	"tcintake/pkg/domain"
)

func TestRequired(t *testing.T) {
	rule := Required("required")
	cases := []struct {
		name  string
		value any
		ok    bool
	}{
		{"empty string", "", false},
		{"whitespace", "   ", false},
		{"value", "123 Main St", true},
		{"nil", nil, false},
		{"false bool", false, true},
		{"empty clients", []domain.ClientInfo{}, false},
		{"one client", []domain.ClientInfo{{}}, true},
		{"unset role", domain.RoleUnset, false},
		{"role", domain.RoleListingAgent, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg := rule.Evaluate(tc.value, domain.TransactionRecord{})
			if ok != tc.ok {
				t.Fatalf("Evaluate(%v) ok=%v, want %v", tc.value, ok, tc.ok)
			}
			if !ok && msg != "required" {
				t.Fatalf("message = %q, want %q", msg, "required")
			}
		})
	}
}

func TestEmail(t *testing.T) {
	rule := Email("bad email")
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true},
		{"user@example.com", true},
		{"first.last@sub.example.co", true},
		{"missing-at.example.com", false},
		{"user@nodot", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
	}
	for _, tc := range cases {
		if ok, _ := rule.Evaluate(tc.value, domain.TransactionRecord{}); ok != tc.ok {
			t.Fatalf("Email(%q) ok=%v, want %v", tc.value, ok, tc.ok)
		}
	}
}

func TestPhone(t *testing.T) {
	rule := Phone("bad phone")
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true},
		{"2155551234", true},
		{"(215) 555-1234", true},
		{"215-555-123", false},
		{"12155551234", false},
		{"none", false},
	}
	for _, tc := range cases {
		if ok, _ := rule.Evaluate(tc.value, domain.TransactionRecord{}); ok != tc.ok {
			t.Fatalf("Phone(%q) ok=%v, want %v", tc.value, ok, tc.ok)
		}
	}
}

func TestCurrency(t *testing.T) {
	rule := Currency("bad amount")
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true},
		{"500000", true},
		{"$1,250,000.50", true},
		{"0", true},
		{"abc", false},
	}
	for _, tc := range cases {
		if ok, _ := rule.Evaluate(tc.value, domain.TransactionRecord{}); ok != tc.ok {
			t.Fatalf("Currency(%q) ok=%v, want %v", tc.value, ok, tc.ok)
		}
	}
}

func TestPercentage(t *testing.T) {
	rule := Percentage("bad percent")
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true},
		{"0", true},
		{"6.5", true},
		{"100", true},
		{"100.001", false},
		{"-1", false},
		{"six", false},
	}
	for _, tc := range cases {
		if ok, _ := rule.Evaluate(tc.value, domain.TransactionRecord{}); ok != tc.ok {
			t.Fatalf("Percentage(%q) ok=%v, want %v", tc.value, ok, tc.ok)
		}
	}
}

func TestMustBeTrue(t *testing.T) {
	rule := MustBeTrue("confirm")
	if ok, _ := rule.Evaluate(true, domain.TransactionRecord{}); !ok {
		t.Fatalf("true should pass")
	}
	if ok, _ := rule.Evaluate(false, domain.TransactionRecord{}); ok {
		t.Fatalf("false should fail")
	}
	if ok, _ := rule.Evaluate("true", domain.TransactionRecord{}); ok {
		t.Fatalf("non-bool should fail")
	}
}

func TestValidRole(t *testing.T) {
	rule := ValidRole("bad role")
	for _, role := range []domain.AgentRole{domain.RoleUnset, domain.RoleBuyersAgent, domain.RoleListingAgent, domain.RoleDualAgent} {
		if ok, _ := rule.Evaluate(role, domain.TransactionRecord{}); !ok {
			t.Fatalf("role %q should pass", role)
		}
	}
	if ok, _ := rule.Evaluate(domain.AgentRole("Landlord"), domain.TransactionRecord{}); ok {
		t.Fatalf("unknown role should fail")
	}
}

func TestWhenGatesOnRecord(t *testing.T) {
	rule := When(func(r domain.TransactionRecord) bool { return r.HomeWarrantyPurchased },
		Required("company required"))

	ok, _ := rule.Evaluate("", domain.TransactionRecord{})
	if !ok {
		t.Fatalf("rule should pass while condition is false")
	}
	ok, msg := rule.Evaluate("", domain.TransactionRecord{HomeWarrantyPurchased: true})
	if ok {
		t.Fatalf("rule should fail once condition holds")
	}
	if msg != "company required" {
		t.Fatalf("message = %q, want wrapped rule's message", msg)
	}
}

func TestWhenCarriesFormatRuleMessage(t *testing.T) {
	rule := When(func(domain.TransactionRecord) bool { return true }, Email("bad email"))
	_, msg := rule.Evaluate("not-an-email", domain.TransactionRecord{})
	if msg != "bad email" {
		t.Fatalf("message = %q, want %q", msg, "bad email")
	}
}

func TestCleanNumeric(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"500000", "500000"},
		{"$1,250,000.50", "1250000.50"},
		{"3.5.7", "3.57"},
		{"abc", ""},
		{"12a.5b0", "12.50"},
	}
	for _, tc := range cases {
		if got := CleanNumeric(tc.in); got != tc.want {
			t.Fatalf("CleanNumeric(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
