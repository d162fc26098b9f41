package v1

import (
	"context"

	"github.com/tournevent/seventeentrack/pkg/track/transport"
)

// DefaultBaseURL is the production V1 API base.
const DefaultBaseURL = "https://api.17track.net/track/v1"

// HTTPAPIClient is the production implementation of APIClient using the
// shared JSON transport.
type HTTPAPIClient struct {
	baseURL string
	rt      *transport.Client
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	BaseURL   string // defaults to DefaultBaseURL
	Transport *transport.Client
}

// NewHTTPAPIClient creates a new HTTP-based API client for production use.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rt := cfg.Transport
	if rt == nil {
		rt = transport.New()
	}

	return &HTTPAPIClient{
		baseURL: baseURL,
		rt:      rt,
	}
}

// GetTrackList posts to the list endpoint with the account token header.
func (c *HTTPAPIClient) GetTrackList(ctx context.Context, token string, req *TrackListRequest) (*TrackListResponse, error) {
	var out TrackListResponse
	headers := map[string]string{TokenHeader: token}
	if err := c.rt.Post(ctx, c.baseURL+"/gettracklist", headers, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTrackInfo posts a batched detail request with the account token header.
func (c *HTTPAPIClient) GetTrackInfo(ctx context.Context, token string, req TrackInfoRequest) (*TrackInfoResponse, error) {
	var out TrackInfoResponse
	headers := map[string]string{TokenHeader: token}
	if err := c.rt.Post(ctx, c.baseURL+"/gettrackinfo", headers, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register posts a registration batch.
func (c *HTTPAPIClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.rt.Post(ctx, c.baseURL+"/register", nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeInfo posts a metadata update for a tracked number.
func (c *HTTPAPIClient) ChangeInfo(ctx context.Context, req *ChangeInfoRequest) (*ChangeInfoResponse, error) {
	var out ChangeInfoResponse
	if err := c.rt.Post(ctx, c.baseURL+"/changeinfo", nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ensure HTTPAPIClient implements APIClient interface
var _ APIClient = (*HTTPAPIClient)(nil)
