package legacy

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

	OnSignIn           func(ctx context.Context, req *SignInRequest) (*SignInResponse, error)
	OnGetTrackInfoList func(ctx context.Context, req *TrackInfoListRequest) (*TrackInfoListResponse, error)
	OnGetIndexData     func(ctx context.Context, req *IndexDataRequest) (*IndexDataResponse, error)
	OnAddTrackNumbers  func(ctx context.Context, req *AddTrackRequest) (*AddTrackResponse, error)
	OnSetTrackRemark   func(ctx context.Context, req *SetRemarkRequest) (*SetRemarkResponse, error)
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

// SignIn returns a mock successful login.
func (m *MockAPIClient) SignIn(ctx context.Context, req *SignInRequest) (*SignInResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnSignIn != nil {
		return m.OnSignIn(ctx, req)
	}

	resp := &SignInResponse{Code: 0}
	resp.Json.GID = "mock-gid-" + uuid.New().String()[:8]
	resp.Json.Email = req.Email
	return resp, nil
}

// GetTrackInfoList returns a mock package page.
func (m *MockAPIClient) GetTrackInfoList(ctx context.Context, req *TrackInfoListRequest) (*TrackInfoListResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnGetTrackInfoList != nil {
		return m.OnGetTrackInfoList(ctx, req)
	}

	return &TrackInfoListResponse{
		Code: 0,
		Json: []TrackInfoRow{
			{
				TrackInfoID:  "trk-" + uuid.New().String()[:8],
				TrackNo:      "RB123456789CN",
				FirstCountry: 301,
				PackageState: 10,
				LastEvent:    `{"a":"2022-03-08 14:11","c":"Shenzhen","d":"","z":"Departed from facility"}`,
				CreateTime:   time.Now().Format("2006-01-02 15:04:05"),
			},
			{
				TrackInfoID:  "trk-" + uuid.New().String()[:8],
				TrackNo:      "LX987654321NL",
				FirstCountry: 1009,
				PackageState: 40,
				LastEvent:    `{"a":"2022-03-01 09:30","c":"Amsterdam","d":"","z":"Delivered"}`,
				CreateTime:   time.Now().Format("2006-01-02 15:04:05"),
			},
		},
	}, nil
}

// GetIndexData returns mock per-status counts.
func (m *MockAPIClient) GetIndexData(ctx context.Context, req *IndexDataRequest) (*IndexDataResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnGetIndexData != nil {
		return m.OnGetIndexData(ctx, req)
	}

	resp := &IndexDataResponse{Code: 0}
	resp.Json.EItem = []StateCount{
		{State: 0, Count: 0},
		{State: 10, Count: 1},
		{State: 20, Count: 0},
		{State: 30, Count: 0},
		{State: 35, Count: 0},
		{State: 40, Count: 1},
		{State: 50, Count: 0},
	}
	return resp, nil
}

// AddTrackNumbers acknowledges a mock registration.
func (m *MockAPIClient) AddTrackNumbers(ctx context.Context, req *AddTrackRequest) (*AddTrackResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnAddTrackNumbers != nil {
		return m.OnAddTrackNumbers(ctx, req)
	}
	return &AddTrackResponse{Code: 0}, nil
}

// SetTrackRemark acknowledges a mock remark change.
func (m *MockAPIClient) SetTrackRemark(ctx context.Context, req *SetRemarkRequest) (*SetRemarkResponse, error) {
	if err := m.simulate(); err != nil {
		return nil, err
	}
	if m.OnSetTrackRemark != nil {
		return m.OnSetTrackRemark(ctx, req)
	}
	return &SetRemarkResponse{Code: 0}, nil
}

// Ensure MockAPIClient implements APIClient interface
var _ APIClient = (*MockAPIClient)(nil)
