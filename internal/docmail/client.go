// Package docmail delivers a rendered transaction document to the agent by
// email through the backend's email-pdf endpoint. Delivery is best effort;
// the submission pipeline's own success contract never depends on it.
package docmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Request is the email-pdf endpoint payload.
type Request struct {
	PDFBase64    string `json:"pdfBase64"`
	EmailAddress string `json:"emailAddress"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
}

// Sender delivers a document email.
type Sender interface {
	Send(ctx context.Context, req Request) error
}

// Client posts to the backend email-pdf endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// NewClient returns a sender posting to endpoint. A nil logger disables
// logging.
func NewClient(endpoint string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 60 * time.Second},
		log:      log,
	}
}

// Send posts the request, returning an error on any non-2xx reply.
func (c *Client) Send(ctx context.Context, req Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode email request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email endpoint returned status %d", resp.StatusCode)
	}
	c.log.Info("document email sent", zap.String("to", req.EmailAddress))
	return nil
}

// EncodePDF renders raw document bytes as the endpoint's base64 payload.
func EncodePDF(pdf []byte) string {
	return base64.StdEncoding.EncodeToString(pdf)
}

// Noop discards every send. Used when no email endpoint is configured.
type Noop struct{}

// Send discards the request.
func (Noop) Send(context.Context, Request) error { return nil }
