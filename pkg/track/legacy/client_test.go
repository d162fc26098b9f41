package legacy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/seventeentrack/pkg/track"
	"github.com/tournevent/seventeentrack/pkg/track/legacy"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestClient(mockClient *legacy.MockAPIClient) *legacy.Client {
	logger := otelzap.New(zap.NewNop())
	return legacy.NewWithAPIClient(
		legacy.Config{},
		mockClient,
		logger,
		nil,
	)
}

func TestClient_Login_Success(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnSignIn = func(ctx context.Context, req *legacy.SignInRequest) (*legacy.SignInResponse, error) {
		assert.Equal(t, "person@company.com", req.Email)
		assert.Equal(t, "12345", req.Password)
		assert.Empty(t, req.CaptchaCode)

		resp := &legacy.SignInResponse{Code: 0}
		resp.Json.GID = "1234567890987654321"
		return resp, nil
	}

	client := newTestClient(mockAPI)

	ok, err := client.Login(context.Background(), track.Credentials{
		Email:    "person@company.com",
		Password: "12345",
	})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1234567890987654321", client.AccountID())
}

func TestClient_Login_Rejected(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnSignIn = func(ctx context.Context, req *legacy.SignInRequest) (*legacy.SignInResponse, error) {
		return &legacy.SignInResponse{Code: -6, Message: "You haven't logged in for a long time."}, nil
	}

	client := newTestClient(mockAPI)

	ok, err := client.Login(context.Background(), track.Credentials{
		Email:    "person@company.com",
		Password: "wrong",
	})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, client.AccountID())
}

func TestClient_Packages(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnGetTrackInfoList = func(ctx context.Context, req *legacy.TrackInfoListRequest) (*legacy.TrackInfoListResponse, error) {
		assert.Equal(t, 1, req.Page)
		assert.Equal(t, 40, req.PerPage)
		assert.Equal(t, "0", req.Sequence)
		assert.False(t, req.IsArchived)

		return &legacy.TrackInfoListResponse{
			Code: 0,
			Json: []legacy.TrackInfoRow{
				{
					TrackInfoID:   "9876",
					TrackNo:       "1234567890987654321",
					FirstCountry:  301,
					SecondCountry: 1803,
					Remark:        "birthday present",
					PackageState:  10,
					LastEvent:     `{"a":"2018-04-23 12:02","b":null,"c":"Paris","d":"","z":"Arrival at Destination Post"}`,
				},
				{
					TrackInfoID:  "9877",
					TrackNo:      "RB123456789CN",
					PackageState: 40,
					LastEvent:    "",
				},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	packages, err := client.Packages(context.Background(), track.PackagesOptions{})

	require.NoError(t, err)
	require.Len(t, packages, 2)

	first := packages[0]
	assert.Equal(t, "1234567890987654321", first.TrackingNumber)
	assert.Equal(t, "9876", first.InternalID)
	assert.Equal(t, "birthday present", first.FriendlyName)
	assert.Equal(t, "China", first.OriginCountry)
	assert.Equal(t, "United States", first.DestinationCountry)
	assert.Equal(t, "In Transit", first.Status)
	assert.Equal(t, "Paris", first.Location)
	assert.Equal(t, "Arrival at Destination Post", first.InfoText)

	// No embedded event: location empty, timestamp normalized to epoch.
	second := packages[1]
	assert.Equal(t, "Delivered", second.Status)
	assert.Empty(t, second.Location)
	assert.Equal(t, int64(0), second.Timestamp.Unix())
}

func TestClient_Packages_MalformedEventTolerated(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnGetTrackInfoList = func(ctx context.Context, req *legacy.TrackInfoListRequest) (*legacy.TrackInfoListResponse, error) {
		return &legacy.TrackInfoListResponse{
			Code: 0,
			Json: []legacy.TrackInfoRow{
				{TrackNo: "RB123456789CN", LastEvent: "{not json"},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	packages, err := client.Packages(context.Background(), track.PackagesOptions{})

	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Empty(t, packages[0].InfoText)
	assert.Equal(t, int64(0), packages[0].Timestamp.Unix())
}

func TestClient_Summary(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnGetIndexData = func(ctx context.Context, req *legacy.IndexDataRequest) (*legacy.IndexDataResponse, error) {
		resp := &legacy.IndexDataResponse{Code: 0}
		resp.Json.EItem = []legacy.StateCount{
			{State: 10, Count: 6},
			{State: 0, Count: 2},
			{State: 20, Count: 0},
			{State: 30, Count: 0},
			{State: 35, Count: 0},
			{State: 40, Count: 0},
			{State: 50, Count: 0},
		}
		return resp, nil
	}

	client := newTestClient(mockAPI)

	summary, err := client.Summary(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, track.Summary{
		"In Transit":            6,
		"Not Found":             2,
		"Expired":               0,
		"Ready to be Picked Up": 0,
		"Undelivered":           0,
		"Delivered":             0,
		"Returned":              0,
	}, summary)
}

func TestClient_Summary_AccumulatesRepeatedNames(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnGetIndexData = func(ctx context.Context, req *legacy.IndexDataRequest) (*legacy.IndexDataResponse, error) {
		// Two unmapped states both resolve to "Unknown" and must sum.
		resp := &legacy.IndexDataResponse{Code: 0}
		resp.Json.EItem = []legacy.StateCount{
			{State: 77, Count: 2},
			{State: 99, Count: 3},
		}
		return resp, nil
	}

	client := newTestClient(mockAPI)

	summary, err := client.Summary(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, 5, summary["Unknown"])
}

func TestClient_AddPackage_NonZeroCode(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnAddTrackNumbers = func(ctx context.Context, req *legacy.AddTrackRequest) (*legacy.AddTrackResponse, error) {
		return &legacy.AddTrackResponse{Code: -18}, nil
	}

	client := newTestClient(mockAPI)

	err := client.AddPackage(context.Background(), "1234567890987654321", "")

	var reqErr *track.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, -18, reqErr.UpstreamCode)
}

func TestClient_AddPackage_WithFriendlyName(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnAddTrackNumbers = func(ctx context.Context, req *legacy.AddTrackRequest) (*legacy.AddTrackResponse, error) {
		assert.Equal(t, []string{"1234567890987654321"}, req.TrackNos)
		return &legacy.AddTrackResponse{Code: 0}, nil
	}
	mockAPI.OnGetTrackInfoList = func(ctx context.Context, req *legacy.TrackInfoListRequest) (*legacy.TrackInfoListResponse, error) {
		return &legacy.TrackInfoListResponse{
			Code: 0,
			Json: []legacy.TrackInfoRow{
				{TrackInfoID: "internal-42", TrackNo: "1234567890987654321"},
			},
		}, nil
	}

	var remarked *legacy.SetRemarkRequest
	mockAPI.OnSetTrackRemark = func(ctx context.Context, req *legacy.SetRemarkRequest) (*legacy.SetRemarkResponse, error) {
		remarked = req
		return &legacy.SetRemarkResponse{Code: 0}, nil
	}

	client := newTestClient(mockAPI)

	err := client.AddPackage(context.Background(), "1234567890987654321", "birthday present")

	require.NoError(t, err)
	require.NotNil(t, remarked)
	assert.Equal(t, "internal-42", remarked.TrackInfoID)
	assert.Equal(t, "birthday present", remarked.Remark)
}

func TestClient_AddPackage_NotFoundAfterAdd(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnAddTrackNumbers = func(ctx context.Context, req *legacy.AddTrackRequest) (*legacy.AddTrackResponse, error) {
		return &legacy.AddTrackResponse{Code: 0}, nil
	}
	mockAPI.OnGetTrackInfoList = func(ctx context.Context, req *legacy.TrackInfoListRequest) (*legacy.TrackInfoListResponse, error) {
		return &legacy.TrackInfoListResponse{Code: 0, Json: []legacy.TrackInfoRow{}}, nil
	}

	client := newTestClient(mockAPI)

	err := client.AddPackage(context.Background(), "1234567890987654321", "birthday present")

	var invalidErr *track.InvalidTrackingNumberError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "1234567890987654321", invalidErr.TrackingNumber)
}

func TestClient_AddPackageWithCarrier_NotSupported(t *testing.T) {
	client := newTestClient(legacy.NewMockAPIClient())

	err := client.AddPackageWithCarrier(context.Background(), "RB123456789CN", "FedEx", "")

	assert.ErrorIs(t, err, track.ErrNotSupported)
}

func TestClient_SetFriendlyName_NonZeroCode(t *testing.T) {
	mockAPI := legacy.NewMockAPIClient()
	mockAPI.OnSetTrackRemark = func(ctx context.Context, req *legacy.SetRemarkRequest) (*legacy.SetRemarkResponse, error) {
		return &legacy.SetRemarkResponse{Code: -1}, nil
	}

	client := newTestClient(mockAPI)

	err := client.SetFriendlyName(context.Background(), "internal-42", "gift")

	var reqErr *track.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, -1, reqErr.UpstreamCode)
}

func TestClient_Name(t *testing.T) {
	client := newTestClient(legacy.NewMockAPIClient())
	assert.Equal(t, "legacy", client.Name())
}
