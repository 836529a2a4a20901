// Package leads hands trial-booking requests to the external intake service (CRM or
// form processor). Without a configured endpoint the client only acknowledges them.
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout    = 8 * time.Second
	idempotencyHeader = "Idempotency-Key"
	serviceName       = "leads"
	leadsPath         = "/leads"
)

// ErrEndpointStatus wraps non-2xx responses from the intake service.
var ErrEndpointStatus = errors.New("leads: intake endpoint rejected lead")

// Lead is a trial booking request exactly as the visitor typed it.
type Lead struct {
	Name        string
	Email       string
	Instrument  string
	Region      string
	Currency    string
	Message     string
	SubmittedAt time.Time
}

// Receipt acknowledges a lead.
type Receipt struct {
	Reference string
	Status    string // "received" locally, or whatever the intake service reports
	Forwarded bool
}

// Submitter is implemented by Client; handlers depend on this.
type Submitter interface {
	Submit(ctx context.Context, lead Lead) (Receipt, error)
}

// Recorder observes outbound calls; *observability.Metrics satisfies it.
type Recorder interface {
	ObserveExternal(service, endpoint string, status int, dur time.Duration)
}

// Client posts leads to the intake endpoint.
type Client struct {
	baseURL  string
	http     *http.Client
	recorder Recorder
	now      func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithRecorder reports outbound call metrics.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient constructs a client. When baseURL is empty the client acknowledges leads
// locally and forwards nothing.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Forwarding reports whether an intake endpoint is configured.
func (c *Client) Forwarding() bool { return c != nil && c.baseURL != "" }

// Submit forwards lead to the intake service.
func (c *Client) Submit(ctx context.Context, lead Lead) (Receipt, error) {
	lead = normalize(lead)
	if lead.SubmittedAt.IsZero() {
		lead.SubmittedAt = c.clock().UTC()
	}
	key := uuid.NewString()
	if !c.Forwarding() {
		return Receipt{Reference: key, Status: "received"}, nil
	}

	endpoint, err := url.JoinPath(c.baseURL, leadsPath)
	if err != nil {
		return Receipt{}, fmt.Errorf("leads: build endpoint: %w", err)
	}
	payload, err := json.Marshal(toPayload(lead))
	if err != nil {
		return Receipt{}, fmt.Errorf("leads: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Receipt{}, fmt.Errorf("leads: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(idempotencyHeader, key)

	start := c.clock()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(0, start)
		return Receipt{}, fmt.Errorf("leads: post: %w", err)
	}
	defer resp.Body.Close()
	c.observe(resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Receipt{}, fmt.Errorf("%w: status %d: %s", ErrEndpointStatus, resp.StatusCode, drainError(resp.Body))
	}

	var out receiptPayload
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
			return Receipt{}, fmt.Errorf("leads: decode response: %w", err)
		}
	}
	return Receipt{
		Reference: defaultString(out.Reference, key),
		Status:    defaultString(out.Status, "received"),
		Forwarded: true,
	}, nil
}

func (c *Client) observe(status int, start time.Time) {
	if c.recorder == nil {
		return
	}
	c.recorder.ObserveExternal(serviceName, leadsPath, status, c.clock().Sub(start))
}

func (c *Client) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

type leadPayload struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Instrument  string    `json:"instrument,omitempty"`
	Region      string    `json:"region"`
	Currency    string    `json:"currency,omitempty"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	Source      string    `json:"source"`
}

type receiptPayload struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

func toPayload(l Lead) leadPayload {
	return leadPayload{
		Name:        l.Name,
		Email:       l.Email,
		Instrument:  l.Instrument,
		Region:      l.Region,
		Currency:    l.Currency,
		Message:     l.Message,
		SubmittedAt: l.SubmittedAt,
		Source:      "website-trial-form",
	}
}

func normalize(l Lead) Lead {
	l.Name = strings.TrimSpace(l.Name)
	l.Email = strings.TrimSpace(l.Email)
	l.Instrument = strings.TrimSpace(l.Instrument)
	l.Region = strings.TrimSpace(l.Region)
	l.Currency = strings.TrimSpace(l.Currency)
	l.Message = strings.TrimSpace(l.Message)
	return l
}

func defaultString(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return strings.TrimSpace(val)
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
