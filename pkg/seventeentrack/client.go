// Package seventeentrack is the entry point for the 17track.net client. It
// selects and lazily constructs the profile driver for the requested API
// generation.
package seventeentrack

import (
	"net/http"
	"sync"

	"github.com/tournevent/seventeentrack/internal/telemetry"
	"github.com/tournevent/seventeentrack/pkg/track"
	"github.com/tournevent/seventeentrack/pkg/track/legacy"
	"github.com/tournevent/seventeentrack/pkg/track/transport"
	v1 "github.com/tournevent/seventeentrack/pkg/track/v1"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Version selects the upstream API generation.
type Version int

const (
	// VersionLegacy is the deprecated session-based API generation.
	VersionLegacy Version = iota

	// VersionV1 is the token-based API generation.
	VersionV1
)

// String returns the generation identifier.
func (v Version) String() string {
	if v == VersionV1 {
		return "v1"
	}
	return "legacy"
}

// Client holds the configuration and hands out the profile driver for the
// selected API generation. Exactly one driver is constructed per Client
// lifetime, on first access.
type Client struct {
	version    Version
	httpClient *http.Client
	logger     *otelzap.Logger
	tracer     trace.Tracer
	metrics    *telemetry.Metrics
	useMock    bool

	profileOnce sync.Once
	profile     track.Profile
}

// Option configures a Client.
type Option func(*Client)

// WithVersion selects the API generation. The default is VersionLegacy.
func WithVersion(v Version) Option {
	return func(c *Client) {
		c.version = v
	}
}

// WithHTTPClient reuses a caller-owned HTTP client for every request. The
// caller keeps ownership: no per-call timeout is imposed on it and it may be
// shared across clients.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger *otelzap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracer attaches a tracer to the request layer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// WithMetrics records per-request metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithMock makes the profile driver use its mock API client instead of the
// network.
func WithMock(useMock bool) Option {
	return func(c *Client) {
		c.useMock = useMock
	}
}

// New creates a client for the selected API generation.
func New(opts ...Option) *Client {
	c := &Client{
		version: VersionLegacy,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = otelzap.New(zap.NewNop())
	}
	return c
}

// Profile returns the profile driver for the configured API generation,
// constructing it on first access and memoizing it for the lifetime of the
// Client.
func (c *Client) Profile() track.Profile {
	c.profileOnce.Do(func() {
		rtOpts := []transport.Option{}
		if c.httpClient != nil {
			rtOpts = append(rtOpts, transport.WithHTTPClient(c.httpClient))
		}
		if c.metrics != nil {
			rtOpts = append(rtOpts, transport.WithMetrics(c.metrics))
		}
		if c.tracer != nil {
			rtOpts = append(rtOpts, transport.WithTracer(c.tracer))
		}
		rt := transport.New(rtOpts...)

		switch c.version {
		case VersionV1:
			c.profile = v1.New(v1.Config{UseMock: c.useMock}, rt, c.logger, c.tracer)
		default:
			c.profile = legacy.New(legacy.Config{UseMock: c.useMock}, rt, c.logger, c.tracer)
		}
	})
	return c.profile
}

// Version returns the configured API generation.
func (c *Client) Version() Version {
	return c.version
}
