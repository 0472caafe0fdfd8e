package docmail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSend(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	req := Request{
		PDFBase64:    EncodePDF([]byte("%PDF-1.4 fake")),
		EmailAddress: "agent@example.com",
		Subject:      "Transaction TX-20260901-AAAAAAAAA",
		Message:      "Your intake summary is attached.",
	}
	if err := client.Send(context.Background(), req); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got.EmailAddress != "agent@example.com" || got.PDFBase64 == "" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestClientSendNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "mailer offline", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	if err := client.Send(context.Background(), Request{EmailAddress: "agent@example.com"}); err == nil {
		t.Fatalf("want error on non-2xx reply")
	}
}

func TestNoopDiscards(t *testing.T) {
	if err := (Noop{}).Send(context.Background(), Request{}); err != nil {
		t.Fatalf("noop send: %v", err)
	}
}
