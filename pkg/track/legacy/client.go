// Package legacy implements the profile driver for the legacy,
// session-based 17track.net API generation.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tournevent/seventeentrack/pkg/track"
	"github.com/tournevent/seventeentrack/pkg/track/data"
	"github.com/tournevent/seventeentrack/pkg/track/transport"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const generationName = "legacy"

// The legacy list endpoint is paged; the client reads a single fixed-size
// page, matching the upstream web client.
const (
	listPage    = 1
	listPerPage = 40
)

// Config holds legacy driver configuration.
type Config struct {
	UserURL  string // overrides the sign-in endpoint
	BuyerURL string // overrides the order endpoint
	UseMock  bool   // when true, uses the mock API client
}

// Client is the legacy-generation profile driver. It implements the
// track.Profile interface and delegates API calls to the underlying
// APIClient (mock or HTTP).
//
// The account ID is written once by Login and read thereafter; callers are
// responsible for sequencing Login before dependent calls.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
	accountID string
}

// New creates a new legacy profile driver. If cfg.UseMock is true, it uses a
// mock API client; otherwise it posts through the given transport.
func New(cfg Config, rt *transport.Client, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient
	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			UserURL:   cfg.UserURL,
			BuyerURL:  cfg.BuyerURL,
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

// NewWithAPIClient creates a new legacy profile driver with a custom API
// client. This is useful for injecting mock clients in tests.
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

// AccountID returns the account identifier extracted from the last
// successful login, or empty when not authenticated.
func (c *Client) AccountID() string {
	return c.accountID
}

// Login posts credentials to the sign-in endpoint. A rejected login returns
// (false, nil); only transport failures produce an error.
func (c *Client) Login(ctx context.Context, creds track.Credentials) (bool, error) {
	c.logger.Info("Logging in to legacy profile",
		zap.String("email", creds.Email),
	)

	resp, err := c.apiClient.SignIn(ctx, &SignInRequest{
		Email:       creds.Email,
		Password:    creds.Password,
		CaptchaCode: "",
	})
	if err != nil {
		c.logger.Error("Legacy API error", zap.Error(err))
		return false, err
	}

	if resp.Code != 0 {
		c.logger.Info("Login rejected", zap.Int("code", resp.Code))
		return false, nil
	}

	c.accountID = resp.Json.GID
	return true, nil
}

// Packages returns the tracked packages in upstream order. Each row's
// embedded last-event fragment supplies the event fields when present.
func (c *Client) Packages(ctx context.Context, opts track.PackagesOptions) ([]track.Package, error) {
	resp, err := c.apiClient.GetTrackInfoList(ctx, &TrackInfoListRequest{
		IsArchived:   opts.ShowArchived,
		Item:         "",
		Page:         listPage,
		PerPage:      listPerPage,
		PackageState: opts.PackageState,
		Sequence:     "0",
	})
	if err != nil {
		c.logger.Error("Legacy API error", zap.Error(err))
		return nil, err
	}

	packages := make([]track.Package, 0, len(resp.Json))
	for _, row := range resp.Json {
		packages = append(packages, c.rowToPackage(row, opts.Timezone))
	}
	return packages, nil
}

// Summary folds the upstream per-status counts into resolved status names.
// Counts for raw codes resolving to the same name accumulate.
func (c *Client) Summary(ctx context.Context, showArchived bool) (track.Summary, error) {
	resp, err := c.apiClient.GetIndexData(ctx, &IndexDataRequest{IsArchived: showArchived})
	if err != nil {
		c.logger.Error("Legacy API error", zap.Error(err))
		return nil, err
	}

	summary := track.Summary{}
	for _, item := range resp.Json.EItem {
		summary[data.Status(item.State)] += item.Count
	}
	return summary, nil
}

// AddPackage registers a tracking number. When a friendly name is supplied,
// the driver re-fetches the list to learn the upstream-assigned internal ID
// and forwards it to SetFriendlyName.
func (c *Client) AddPackage(ctx context.Context, trackingNumber, friendlyName string) error {
	c.logger.Info("Adding package",
		zap.String("tracking_number", trackingNumber),
	)

	resp, err := c.apiClient.AddTrackNumbers(ctx, &AddTrackRequest{TrackNos: []string{trackingNumber}})
	if err != nil {
		c.logger.Error("Legacy API error", zap.Error(err))
		return err
	}
	if resp.Code != 0 {
		return track.NewRequestError(c.config.BuyerURL,
			fmt.Sprintf("non-zero status code in response: %d", resp.Code)).
			WithUpstreamCode(resp.Code)
	}

	if friendlyName == "" {
		return nil
	}

	packages, err := c.Packages(ctx, track.PackagesOptions{})
	if err != nil {
		return err
	}
	for _, pkg := range packages {
		if pkg.TrackingNumber == trackingNumber {
			c.logger.Debug("Found internal ID of recently added package",
				zap.String("internal_id", pkg.InternalID),
			)
			return c.SetFriendlyName(ctx, pkg.InternalID, friendlyName)
		}
	}
	return &track.InvalidTrackingNumberError{
		TrackingNumber: trackingNumber,
		Reason:         "recently added package not found by tracking number",
	}
}

// AddPackageWithCarrier is not supported by the legacy generation; the
// upstream detects the carrier itself.
func (c *Client) AddPackageWithCarrier(ctx context.Context, trackingNumber, carrier, friendlyName string) error {
	return fmt.Errorf("add package with carrier: %w", track.ErrNotSupported)
}

// SetFriendlyName assigns a remark to a package. The id is the internal
// track info ID, not the tracking number.
func (c *Client) SetFriendlyName(ctx context.Context, id, friendlyName string) error {
	resp, err := c.apiClient.SetTrackRemark(ctx, &SetRemarkRequest{
		TrackInfoID: id,
		Remark:      friendlyName,
	})
	if err != nil {
		c.logger.Error("Legacy API error", zap.Error(err))
		return err
	}
	if resp.Code != 0 {
		return track.NewRequestError(c.config.BuyerURL,
			fmt.Sprintf("non-zero status code in response: %d", resp.Code)).
			WithUpstreamCode(resp.Code)
	}
	return nil
}

// rowToPackage converts an upstream row into the normalized domain record.
// A malformed embedded event fragment is tolerated and treated as absent.
func (c *Client) rowToPackage(row TrackInfoRow, tz string) track.Package {
	var event lastEvent
	if row.LastEvent != "" {
		if err := json.Unmarshal([]byte(row.LastEvent), &event); err != nil {
			c.logger.Warn("Malformed last-event fragment",
				zap.String("tracking_number", row.TrackNo),
				zap.Error(err),
			)
			event = lastEvent{}
		}
	}

	return track.NewPackage(track.PackageParams{
		TrackingNumber:         row.TrackNo,
		InternalID:             row.TrackInfoID,
		FriendlyName:           row.Remark,
		OriginCountryCode:      row.FirstCountry,
		DestinationCountryCode: row.SecondCountry,
		PackageTypeCode:        row.TrackStateType,
		StatusCode:             row.PackageState,
		InfoText:               event.Description,
		Location:               strings.TrimSpace(event.Location + " " + event.Detail),
		Timestamp:              event.Time,
		Timezone:               tz,
	})
}

// Ensure Client implements track.Profile
var _ track.Profile = (*Client)(nil)
