package v1

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var errSimulated = errors.New("simulated API error")

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGetTrackList func(ctx context.Context, token string, req *TrackListRequest) (*TrackListResponse, error)
	OnGetTrackInfo func(ctx context.Context, token string, req TrackInfoRequest) (*TrackInfoResponse, error)
	OnRegister     func(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	OnChangeInfo   func(ctx context.Context, req *ChangeInfoRequest) (*ChangeInfoResponse, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

func (m *MockAPIClient) simulate() error {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}
	if m.SimulateErrors {
		return errSimulated
	}
	return nil
}

// GetTrackList returns a mock tracking list.
func (m *MockAPIClient) GetTrackList(ctx context.Context, token string, req *TrackListRequest) (*TrackListResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnGetTrackList != nil {
		return m.OnGetTrackList(ctx, token, req)
	}

	resp := &TrackListResponse{Code: 0}
	resp.Data.Accepted = []TrackListEntry{
		{Number: "RB123456789CN", Carrier: 3011, State: 10},
		{Number: "LX987654321NL", Carrier: 10051, State: 40},
	}
	return resp, nil
}

// GetTrackInfo returns mock tracking details for the queried numbers.
func (m *MockAPIClient) GetTrackInfo(ctx context.Context, token string, req TrackInfoRequest) (*TrackInfoResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnGetTrackInfo != nil {
		return m.OnGetTrackInfo(ctx, token, req)
	}

	resp := &TrackInfoResponse{Code: 0}
	for _, query := range req {
		entry := TrackInfoEntry{Number: query.Number, Carrier: query.Carrier}
		entry.Track = TrackDetail{
			OriginCountry:      301,
			DestinationCountry: 1803,
			State:              10,
			Language:           "en",
			LatestEvent: Event{
				Time:        time.Now().Add(-6 * time.Hour).Format("2006-01-02 15:04"),
				Location:    "Shenzhen",
				Description: "Departed from facility",
			},
		}
		resp.Data.Accepted = append(resp.Data.Accepted, entry)
	}
	return resp, nil
}

// Register acknowledges a mock registration batch.
func (m *MockAPIClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnRegister != nil {
		return m.OnRegister(ctx, req)
	}

	resp := &RegisterResponse{Code: 0}
	for _, item := range req {
		number := item.Number
		if number == "" {
			number = "mock-" + uuid.New().String()[:8]
		}
		resp.Data.Accepted = append(resp.Data.Accepted, TrackListEntry{
			Number:  number,
			Carrier: item.Carrier,
			Tag:     item.Tag,
		})
	}
	return resp, nil
}

// ChangeInfo acknowledges a mock metadata update.
func (m *MockAPIClient) ChangeInfo(ctx context.Context, req *ChangeInfoRequest) (*ChangeInfoResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnChangeInfo != nil {
		return m.OnChangeInfo(ctx, req)
	}
	return &ChangeInfoResponse{Code: 0}, nil
}

// Ensure MockAPIClient implements APIClient interface
var _ APIClient = (*MockAPIClient)(nil)
