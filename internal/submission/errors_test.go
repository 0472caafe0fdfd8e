package submission

import (
	"errors"
	"testing"
)

func TestAPIErrorRetryable(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{status: 400, want: false},
		{status: 422, want: false},
		{status: 404, want: true},
		{status: 500, want: true},
		{status: 503, want: true},
		{status: 0, want: false},
	}
	for _, tc := range cases {
		if got := (&APIError{Status: tc.status}).Retryable(); got != tc.want {
			t.Fatalf("status %d: retryable = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestAPIErrorMessage(t *testing.T) {
	if got := (&APIError{Status: 503}).Error(); got != "server returned status 503" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := (&APIError{Status: 422, Message: "duplicate transaction"}).Error(); got != "duplicate transaction" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestRetryableClassification(t *testing.T) {
	if !retryable(errors.New("connection refused")) {
		t.Fatal("transport errors must retry")
	}
	if retryable(&APIError{Status: 400, Message: "API Error"}) {
		t.Fatal("structured rejections must not retry")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Errors: []string{"Agent role is required", "Property address is required"}}
	want := "validation failed: Agent role is required; Property address is required"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
