// Package transport implements the JSON request layer shared by the profile
// drivers.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tournevent/seventeentrack/internal/telemetry"
	"github.com/tournevent/seventeentrack/pkg/track"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds a single request when the caller did not supply its
// own HTTP client. A caller-supplied client owns its own timeout.
const DefaultTimeout = 10 * time.Second

const tracerName = "github.com/tournevent/seventeentrack/pkg/track/transport"

// Client sends JSON requests against the upstream API. A zero-configured
// Client creates a scoped HTTP client per call with DefaultTimeout applied;
// a caller-supplied HTTP client is reused as-is and may be shared.
type Client struct {
	httpClient *http.Client
	metrics    *telemetry.Metrics
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient makes the transport reuse a caller-owned HTTP client. No
// additional timeout is imposed on it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMetrics records per-request metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTracer overrides the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// New creates a transport client.
func New(opts ...Option) *Client {
	c := &Client{
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

// Post sends a single JSON POST request and decodes the response body into
// out (which may be nil). Any connection failure, non-2xx status, or
// undecodable body surfaces as a *track.RequestError; no retries are
// attempted.
func (c *Client) Post(ctx context.Context, rawURL string, headers map[string]string, query url.Values, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "seventeentrack.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("url.full", rawURL),
		),
	)
	defer span.End()

	start := time.Now()
	status, err := c.post(ctx, rawURL, headers, query, body, out)
	c.record(rawURL, status, time.Since(start), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	return nil
}

func (c *Client) post(ctx context.Context, rawURL string, headers map[string]string, query url.Values, body, out any) (int, error) {
	httpClient := c.httpClient
	if httpClient == nil {
		// Scoped to this call; released when the call completes.
		httpClient = &http.Client{Timeout: DefaultTimeout}
		defer httpClient.CloseIdleConnections()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return 0, track.NewRequestError(rawURL, "failed to marshal request body").WithCause(err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bodyReader)
	if err != nil {
		return 0, track.NewRequestError(rawURL, "failed to create request").WithCause(err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, track.NewRequestError(rawURL, "request failed").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := fmt.Sprintf("unexpected status %s", resp.Status)
		if len(snippet) > 0 {
			msg = fmt.Sprintf("%s: %s", msg, snippet)
		}
		return resp.StatusCode, track.NewRequestError(rawURL, msg).WithStatusCode(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, track.NewRequestError(rawURL, "failed to decode response body").
				WithStatusCode(resp.StatusCode).
				WithCause(err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) record(rawURL string, status int, elapsed time.Duration, err error) {
	if c.metrics == nil {
		return
	}

	endpoint := rawURL
	if u, parseErr := url.Parse(rawURL); parseErr == nil {
		endpoint = u.Path
	}

	label := strconv.Itoa(status)
	if status == 0 {
		label = "error"
	}
	c.metrics.RecordRequest(endpoint, label, elapsed.Seconds())

	if err == nil {
		return
	}
	kind := "network"
	if status >= 400 {
		kind = "http_status"
	} else if status != 0 {
		kind = "decode"
	}
	c.metrics.RecordError(endpoint, kind)
}
