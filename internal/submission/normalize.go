package submission

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tcintake/internal/validation"
	"tcintake/pkg/domain"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Normalizer turns a working record into the immutable snapshot sent to the
// backend: identifier, timestamp, pending status, canonical currency strings,
// and cleaned client contact data.
type Normalizer struct {
	now  func() time.Time
	rand io.Reader
}

// NewNormalizer returns a normalizer on the system clock and crypto/rand.
func NewNormalizer() Normalizer {
	return Normalizer{now: time.Now, rand: rand.Reader}
}

// Process builds the submission snapshot. The input record is not mutated.
func (n Normalizer) Process(record domain.TransactionRecord) domain.SubmissionRecord {
	out := record.Clone()

	out.PropertyAddress = strings.TrimSpace(out.PropertyAddress)
	out.AgentName = strings.TrimSpace(out.AgentName)

	out.SalePrice = normalizeCurrency(out.SalePrice)
	out.SellerAssist = normalizeCurrency(out.SellerAssist)
	out.TotalCommissionFixed = normalizeCurrency(out.TotalCommissionFixed)
	out.ListingAgentCommissionFixed = normalizeCurrency(out.ListingAgentCommissionFixed)
	out.BuyersAgentCommissionFixed = normalizeCurrency(out.BuyersAgentCommissionFixed)
	out.BuyerPaidCommission = normalizeCurrency(out.BuyerPaidCommission)
	out.WarrantyCost = normalizeCurrency(out.WarrantyCost)

	for i := range out.Clients {
		c := &out.Clients[i]
		c.Name = strings.TrimSpace(c.Name)
		c.Email = strings.ToLower(strings.TrimSpace(c.Email))
		c.Phone = digitsOnly(c.Phone)
	}

	now := n.clock()().UTC()
	return domain.SubmissionRecord{
		TransactionRecord: out,
		TransactionID:     n.TransactionID(now),
		SubmissionDate:    now.Format(time.RFC3339),
		Status:            domain.StatusPending,
	}
}

// TransactionID generates an identifier of the form TX-YYYYMMDD-XXXXXXXXX
// where X is an uppercase alphanumeric.
func (n Normalizer) TransactionID(t time.Time) string {
	buf := make([]byte, 9)
	src := n.rand
	if src == nil {
		src = rand.Reader
	}
	if _, err := io.ReadFull(src, buf); err != nil {
		// crypto/rand failing means the process is in serious trouble;
		// fall back to a clock-derived suffix rather than returning an
		// empty identifier.
		seed := t.UnixNano()
		for i := range buf {
			buf[i] = byte(seed >> (uint(i) * 7))
		}
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("TX-%s-%s", t.Format("20060102"), string(buf))
}

func (n Normalizer) clock() func() time.Time {
	if n.now != nil {
		return n.now
	}
	return time.Now
}

// normalizeCurrency renders a user-entered amount as a fixed two-decimal
// string. Empty or unparsable input yields an empty string.
func normalizeCurrency(value string) string {
	clean := validation.CleanNumeric(value)
	if strings.TrimSpace(clean) == "" {
		return ""
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
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
