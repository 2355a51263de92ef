// Package gateway delivers completed lead profiles to the configured
// submission webhook.
package gateway

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/atlasdmc/leadbot/internal/lead"
	"github.com/atlasdmc/leadbot/internal/observability/metrics"
	"github.com/atlasdmc/leadbot/pkg/logging"
)

// Submitter is what the conversation engine needs from the gateway.
type Submitter interface {
	Submit(ctx context.Context, profile *lead.Profile, locale string) (string, error)
}

// Payload is the JSON body posted to the webhook: the full profile plus
// correlation metadata.
type Payload struct {
	lead.Profile
	ReferenceID string `json:"referenceId"`
	PageURL     string `json:"pageUrl"`
	Language    string `json:"language"`
	Timestamp   string `json:"timestamp"`
}

// WebhookGateway performs a single synchronous POST per submission attempt.
// No retries, no idempotency key: a visitor retrying after a transient
// failure may create a duplicate downstream record, which is acceptable for
// a lead form.
type WebhookGateway struct {
	endpoint string
	pageURL  string
	client   *http.Client
	logger   *logging.Logger
	metrics  *metrics.ChatMetrics
	now      func() time.Time
}

// Config holds gateway configuration.
type Config struct {
	Endpoint string
	PageURL  string
	Timeout  time.Duration
}

// New creates a webhook gateway. An empty endpoint is valid: submissions then
// succeed locally without an outbound call (no backend configured).
func New(cfg Config, m *metrics.ChatMetrics, logger *logging.Logger) *WebhookGateway {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookGateway{
		endpoint: cfg.Endpoint,
		pageURL:  cfg.PageURL,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// NewReferenceID composes a reference identifier from a timestamp and a short
// random suffix. Uniqueness is best-effort; the id exists so the visitor and
// the sales team can correlate the lead across channels.
func NewReferenceID(now time.Time) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// Fall back to sub-second time bits.
		nano := now.UnixNano()
		suffix = []byte{byte(nano), byte(nano >> 8), byte(nano >> 16)}
	}
	return fmt.Sprintf("AT-%s-%s", now.UTC().Format("20060102-150405"), hex.EncodeToString(suffix))
}

// Submit sends the profile and returns the reference id of this attempt. Each
// attempt gets a fresh id, so a retry after failure produces a distinct one.
func (g *WebhookGateway) Submit(ctx context.Context, profile *lead.Profile, locale string) (string, error) {
	now := g.now()
	refID := NewReferenceID(now)

	if g.endpoint == "" {
		// Deliberate: the widget stays usable without a backend. Logged so
		// operators can tell "no backend" apart from "backend rejected".
		g.logger.Info("gateway: no webhook configured, accepting lead locally",
			"reference_id", refID, "language", locale)
		g.metrics.ObserveSubmission("unconfigured", 0)
		return refID, nil
	}

	payload := Payload{
		Profile:     *profile,
		ReferenceID: refID,
		PageURL:     g.pageURL,
		Language:    locale,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gateway: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("gateway: webhook call failed", "error", err, "reference_id", refID)
		g.metrics.ObserveSubmission("network_error", time.Since(start).Seconds())
		return "", fmt.Errorf("gateway: webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Error("gateway: webhook rejected lead", "status", resp.StatusCode, "reference_id", refID)
		g.metrics.ObserveSubmission("rejected", time.Since(start).Seconds())
		return "", fmt.Errorf("gateway: webhook returned status %d", resp.StatusCode)
	}

	g.logger.Info("gateway: lead submitted", "reference_id", refID, "status", resp.StatusCode, "language", locale)
	g.metrics.ObserveSubmission("success", time.Since(start).Seconds())
	return refID, nil
}
