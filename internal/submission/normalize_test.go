package submission

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"tcintake/pkg/domain"
)

var transactionIDPattern = regexp.MustCompile(`^TX-\d{8}-[A-Z0-9]{9}$`)

func fixedNormalizer(now time.Time) Normalizer {
	return Normalizer{
		now:  func() time.Time { return now },
		rand: bytes.NewReader(bytes.Repeat([]byte{7}, 64)),
	}
}

func TestTransactionIDFormat(t *testing.T) {
	n := NewNormalizer()
	seen := map[string]bool{}
	day := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		id := n.TransactionID(day)
		if !transactionIDPattern.MatchString(id) {
			t.Fatalf("id %q does not match TX-YYYYMMDD-XXXXXXXXX", id)
		}
		if id[:11] != "TX-20260901" {
			t.Fatalf("id %q does not carry the date prefix", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Fatalf("ids should vary across calls")
	}
}

func TestProcessStampsSnapshot(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	n := fixedNormalizer(now)

	record := domain.DefaultRecord()
	record.PropertyAddress = "  123 Main St  "
	record.AgentName = " Alex Agent "
	record.SalePrice = "$600,000"
	record.WarrantyCost = "550.5"
	record.Clients = []domain.ClientInfo{{
		Name:  "  Jane Doe ",
		Email: " Jane.Doe@Example.COM ",
		Phone: "(215) 555-1234",
	}}

	snap := n.Process(record)

	if snap.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", snap.Status)
	}
	if snap.SubmissionDate != "2026-09-01T15:04:05Z" {
		t.Fatalf("submission date = %q", snap.SubmissionDate)
	}
	if !transactionIDPattern.MatchString(snap.TransactionID) {
		t.Fatalf("transaction id = %q", snap.TransactionID)
	}
	if snap.PropertyAddress != "123 Main St" {
		t.Fatalf("address = %q, want trimmed", snap.PropertyAddress)
	}
	if snap.AgentName != "Alex Agent" {
		t.Fatalf("agent name = %q, want trimmed", snap.AgentName)
	}
	if snap.SalePrice != "600000.00" {
		t.Fatalf("sale price = %q, want 2-decimal", snap.SalePrice)
	}
	if snap.WarrantyCost != "550.50" {
		t.Fatalf("warranty cost = %q, want 2-decimal", snap.WarrantyCost)
	}
	c := snap.Clients[0]
	if c.Name != "Jane Doe" || c.Email != "jane.doe@example.com" || c.Phone != "2155551234" {
		t.Fatalf("client not normalized: %+v", c)
	}
}

func TestProcessLeavesInputUntouched(t *testing.T) {
	n := fixedNormalizer(time.Now())
	record := domain.DefaultRecord()
	record.SalePrice = "$600,000"
	record.Clients = []domain.ClientInfo{{Email: "UPPER@EXAMPLE.COM"}}

	_ = n.Process(record)
	if record.SalePrice != "$600,000" || record.Clients[0].Email != "UPPER@EXAMPLE.COM" {
		t.Fatalf("Process mutated its input: %+v", record)
	}
}

func TestNormalizeCurrency(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  ", ""},
		{"600000", "600000.00"},
		{"$1,250,000.5", "1250000.50"},
		{"0", "0.00"},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := normalizeCurrency(tc.in); got != tc.want {
			t.Fatalf("normalizeCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
