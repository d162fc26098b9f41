package legacy

import (
	"context"

	"github.com/tournevent/seventeentrack/pkg/track/transport"
)

// Production endpoints for the legacy API generation.
const (
	DefaultUserURL  = "https://user.17track.net/userapi/call"
	DefaultBuyerURL = "https://buyer.17track.net/orderapi/call"
)

// HTTPAPIClient is the production implementation of APIClient using the
// shared JSON transport.
type HTTPAPIClient struct {
	userURL  string
	buyerURL string
	rt       *transport.Client
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	UserURL   string // sign-in endpoint; defaults to DefaultUserURL
	BuyerURL  string // order endpoint; defaults to DefaultBuyerURL
	Transport *transport.Client
}

// NewHTTPAPIClient creates a new HTTP-based API client for production use.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	userURL := cfg.UserURL
	if userURL == "" {
		userURL = DefaultUserURL
	}
	buyerURL := cfg.BuyerURL
	if buyerURL == "" {
		buyerURL = DefaultBuyerURL
	}
	rt := cfg.Transport
	if rt == nil {
		rt = transport.New()
	}

	return &HTTPAPIClient{
		userURL:  userURL,
		buyerURL: buyerURL,
		rt:       rt,
	}
}

// SignIn posts credentials to the user endpoint.
func (c *HTTPAPIClient) SignIn(ctx context.Context, req *SignInRequest) (*SignInResponse, error) {
	var out SignInResponse
	if err := c.rt.Post(ctx, c.userURL, nil, nil, newEnvelope("Signin", req, true), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTrackInfoList posts a paged list request to the order endpoint.
func (c *HTTPAPIClient) GetTrackInfoList(ctx context.Context, req *TrackInfoListRequest) (*TrackInfoListResponse, error) {
	var out TrackInfoListResponse
	if err := c.rt.Post(ctx, c.buyerURL, nil, nil, newEnvelope("GetTrackInfoList", req, true), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetIndexData posts a summary request to the order endpoint.
func (c *HTTPAPIClient) GetIndexData(ctx context.Context, req *IndexDataRequest) (*IndexDataResponse, error) {
	var out IndexDataResponse
	if err := c.rt.Post(ctx, c.buyerURL, nil, nil, newEnvelope("GetIndexData", req, true), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddTrackNumbers posts a registration request to the order endpoint. The
// upstream does not accept a sourcetype field on this method.
func (c *HTTPAPIClient) AddTrackNumbers(ctx context.Context, req *AddTrackRequest) (*AddTrackResponse, error) {
	var out AddTrackResponse
	if err := c.rt.Post(ctx, c.buyerURL, nil, nil, newEnvelope("AddTrackNo", req, false), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetTrackRemark posts a remark request to the order endpoint.
func (c *HTTPAPIClient) SetTrackRemark(ctx context.Context, req *SetRemarkRequest) (*SetRemarkResponse, error) {
	var out SetRemarkResponse
	if err := c.rt.Post(ctx, c.buyerURL, nil, nil, newEnvelope("SetTrackRemark", req, false), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ensure HTTPAPIClient implements APIClient interface
var _ APIClient = (*HTTPAPIClient)(nil)
