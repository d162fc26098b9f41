// Package v1 implements the profile driver for the token-based V1
// 17track.net API generation.
package v1

import (
	"context"
	"fmt"
	"strings"

	"github.com/tournevent/seventeentrack/pkg/track"
	"github.com/tournevent/seventeentrack/pkg/track/data"
	"github.com/tournevent/seventeentrack/pkg/track/transport"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const generationName = "v1"

// activeTrackingState restricts list requests to actively tracked numbers.
const activeTrackingState = 1

// Config holds V1 driver configuration.
type Config struct {
	BaseURL string // overrides the API base URL
	UseMock bool   // when true, uses the mock API client
}

// Client is the V1-generation profile driver. It implements the
// track.Profile interface and delegates API calls to the underlying
// APIClient (mock or HTTP).
//
// The API token is written once by Login and read thereafter; callers are
// responsible for sequencing Login before dependent calls.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
	apiToken  string
}

// New creates a new V1 profile driver. If cfg.UseMock is true, it uses a
// mock API client; otherwise it posts through the given transport.
func New(cfg Config, rt *transport.Client, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient
	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL:   cfg.BaseURL,
			Transport: rt,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new V1 profile driver with a custom API client.
// This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Name returns the API generation identifier.
func (c *Client) Name() string {
	return generationName
}

// Login stores the API token for use as a request header. It performs no
// network call and cannot fail.
func (c *Client) Login(ctx context.Context, creds track.Credentials) (bool, error) {
	c.apiToken = creds.APIToken
	return true, nil
}

// Packages lists the account's tracking numbers, then issues one batched
// detail request for all of them and builds a Package per accepted entry in
// upstream order.
func (c *Client) Packages(ctx context.Context, opts track.PackagesOptions) ([]track.Package, error) {
	trackList, err := c.getTrackList(ctx, opts.PackageState, opts.ShowArchived)
	if err != nil {
		return nil, err
	}

	queries := make(TrackInfoRequest, 0, len(trackList.Data.Accepted))
	for _, entry := range trackList.Data.Accepted {
		queries = append(queries, TrackQuery{Number: entry.Number, Carrier: entry.Carrier})
	}

	resp, err := c.apiClient.GetTrackInfo(ctx, c.apiToken, queries)
	if err != nil {
		c.logger.Error("V1 API error", zap.Error(err))
		return nil, err
	}

	packages := make([]track.Package, 0, len(resp.Data.Accepted))
	for _, entry := range resp.Data.Accepted {
		detail := entry.Track
		event := detail.LatestEvent

		packages = append(packages, track.NewPackage(track.PackageParams{
			TrackingNumber:         entry.Number,
			InternalID:             entry.Number,
			CarrierCode:            entry.Carrier,
			OriginCountryCode:      detail.OriginCountry,
			DestinationCountryCode: detail.DestinationCountry,
			StatusCode:             detail.State,
			InfoText:               event.Description,
			Location:               strings.TrimSpace(event.Location + " " + event.Detail),
			Timestamp:              event.Time,
			Timezone:               opts.Timezone,
			TrackingInfoLanguage:   detail.Language,
		}))
	}
	return packages, nil
}

// Summary counts the listed tracking numbers per resolved status name. All
// known status names start at zero and unmapped states accumulate under
// "Unknown"; no detail request is issued.
func (c *Client) Summary(ctx context.Context, showArchived bool) (track.Summary, error) {
	trackList, err := c.getTrackList(ctx, "", showArchived)
	if err != nil {
		return nil, err
	}

	summary := track.Summary{"Unknown": 0}
	for _, name := range data.StatusNames() {
		summary[name] = 0
	}
	for _, entry := range trackList.Data.Accepted {
		summary[data.Status(entry.State)]++
	}
	return summary, nil
}

// AddPackage is not supported by the V1 generation; registration requires a
// carrier.
func (c *Client) AddPackage(ctx context.Context, trackingNumber, friendlyName string) error {
	return fmt.Errorf("add package without carrier: %w", track.ErrNotSupported)
}

// AddPackageWithCarrier resolves the carrier name to its upstream key and
// posts a single-element registration batch. Any rejection fails the whole
// operation with the upstream-provided reason.
func (c *Client) AddPackageWithCarrier(ctx context.Context, trackingNumber, carrier, friendlyName string) error {
	carrierKey, ok := data.CarrierKey(carrier)
	if !ok {
		return fmt.Errorf("could not map carrier %q to a key: %w", carrier, track.ErrCarrierNotFound)
	}

	c.logger.Info("Registering package",
		zap.String("tracking_number", trackingNumber),
		zap.String("carrier", carrier),
	)

	resp, err := c.apiClient.Register(ctx, RegisterRequest{{
		Number:  trackingNumber,
		Carrier: carrierKey,
		Tag:     friendlyName,
	}})
	if err != nil {
		c.logger.Error("V1 API error", zap.Error(err))
		return err
	}
	return rejectionError(trackingNumber, resp.Data.Rejected)
}

// SetFriendlyName tags an already-tracked number. The id is the tracking
// number itself on this generation.
func (c *Client) SetFriendlyName(ctx context.Context, id, friendlyName string) error {
	req := &ChangeInfoRequest{Number: id}
	req.Items.Tag = friendlyName

	resp, err := c.apiClient.ChangeInfo(ctx, req)
	if err != nil {
		c.logger.Error("V1 API error", zap.Error(err))
		return err
	}
	return rejectionError(id, resp.Data.Rejected)
}

func (c *Client) getTrackList(ctx context.Context, packageState string, showArchived bool) (*TrackListResponse, error) {
	req := &TrackListRequest{PackageState: packageState}
	if !showArchived {
		state := activeTrackingState
		req.TrackingState = &state
	}

	resp, err := c.apiClient.GetTrackList(ctx, c.apiToken, req)
	if err != nil {
		c.logger.Error("V1 API error", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

// rejectionError converts a non-empty rejection list into an
// InvalidTrackingNumberError carrying the first rejection's reason.
func rejectionError(trackingNumber string, rejected []RejectedEntry) error {
	if len(rejected) == 0 {
		return nil
	}
	reason := rejected[0].Error.Message
	if reason == "" {
		reason = "Unknown"
	}
	return &track.InvalidTrackingNumberError{
		TrackingNumber: trackingNumber,
		Reason:         reason,
	}
}

// Ensure Client implements track.Profile
var _ track.Profile = (*Client)(nil)
