package legacy

import (
	"context"
)

// APIClient defines the interface for legacy-generation API operations.
// This abstraction allows for mock implementations during testing and the
// real HTTP implementation in production.
type APIClient interface {
	// SignIn authenticates against the user endpoint.
	SignIn(ctx context.Context, req *SignInRequest) (*SignInResponse, error)

	// GetTrackInfoList fetches a page of tracked packages.
	GetTrackInfoList(ctx context.Context, req *TrackInfoListRequest) (*TrackInfoListResponse, error)

	// GetIndexData fetches per-status package counts.
	GetIndexData(ctx context.Context, req *IndexDataRequest) (*IndexDataResponse, error)

	// AddTrackNumbers registers tracking numbers.
	AddTrackNumbers(ctx context.Context, req *AddTrackRequest) (*AddTrackResponse, error)

	// SetTrackRemark assigns a remark to a package by its internal ID.
	SetTrackRemark(ctx context.Context, req *SetRemarkRequest) (*SetRemarkResponse, error)
}

// ============================================================================
// API Request/Response Types (match the legacy 17track.net envelope format)
// ============================================================================

// envelope is the request wrapper every legacy call is posted in. SourceType
// is a pointer because only some methods carry the field on the wire.
type envelope struct {
	Version    string `json:"version"`
	Method     string `json:"method"`
	Param      any    `json:"param"`
	SourceType *int   `json:"sourcetype,omitempty"`
}

const envelopeVersion = "1.0"

func newEnvelope(method string, param any, withSourceType bool) *envelope {
	env := &envelope{
		Version: envelopeVersion,
		Method:  method,
		Param:   param,
	}
	if withSourceType {
		sourceType := 0
		env.SourceType = &sourceType
	}
	return env
}

// SignInRequest carries login credentials.
// Method "Signin" against the user endpoint.
type SignInRequest struct {
	Email       string `json:"Email"`
	Password    string `json:"Password"`
	CaptchaCode string `json:"CaptchaCode"`
}

// SignInResponse is the login response envelope. A zero Code means success.
type SignInResponse struct {
	Code    int    `json:"Code"`
	Message string `json:"Message,omitempty"`
	Json    struct {
		GID      string `json:"gid"`
		Nickname string `json:"FNickname,omitempty"`
		Email    string `json:"FEmail,omitempty"`
	} `json:"Json"`
}

// TrackInfoListRequest is the paged list request.
// Method "GetTrackInfoList" against the order endpoint.
type TrackInfoListRequest struct {
	IsArchived   bool   `json:"IsArchived"`
	Item         string `json:"Item"`
	Page         int    `json:"Page"`
	PerPage      int    `json:"PerPage"`
	PackageState string `json:"PackageState"`
	Sequence     string `json:"Sequence"`
}

// TrackInfoListResponse holds one page of tracked packages.
type TrackInfoListResponse struct {
	Code int            `json:"Code"`
	Json []TrackInfoRow `json:"Json"`
}

// TrackInfoRow is a single tracked package as the legacy API reports it.
// FLastEvent is a JSON fragment string describing the latest event; it may
// be empty.
type TrackInfoRow struct {
	TrackInfoID    string `json:"FTrackInfoId"`
	TrackNo        string `json:"FTrackNo"`
	FirstCountry   int    `json:"FFirstCountry"`
	SecondCountry  int    `json:"FSecondCountry"`
	FirstCarrier   int    `json:"FFirstCarrier"`
	SecondCarrier  int    `json:"FSecondCarrier"`
	Remark         string `json:"FRemark"`
	LastEvent      string `json:"FLastEvent"`
	TrackStateType int    `json:"FTrackStateType"`
	PackageState   int    `json:"FPackageState"`
	IsArchived     bool   `json:"FIsArchived"`
	CreateTime     string `json:"FCreateTime"`
}

// lastEvent is the decoded FLastEvent fragment. The upstream uses
// single-letter keys.
type lastEvent struct {
	Time        string `json:"a"`
	Location    string `json:"c"`
	Detail      string `json:"d"`
	Description string `json:"z"`
}

// IndexDataRequest is the summary request.
// Method "GetIndexData" against the order endpoint.
type IndexDataRequest struct {
	IsArchived bool `json:"IsArchived"`
}

// IndexDataResponse holds the per-status counts under Json.eitem.
type IndexDataResponse struct {
	Code int `json:"Code"`
	Json struct {
		EItem []StateCount `json:"eitem"`
	} `json:"Json"`
}

// StateCount is one per-status count entry.
type StateCount struct {
	State int `json:"e"`
	Count int `json:"ec"`
}

// AddTrackRequest registers tracking numbers.
// Method "AddTrackNo" against the order endpoint.
type AddTrackRequest struct {
	TrackNos []string `json:"TrackNos"`
}

// AddTrackResponse is the registration response envelope.
type AddTrackResponse struct {
	Code    int    `json:"Code"`
	Message string `json:"Message,omitempty"`
}

// SetRemarkRequest assigns a remark to a package, addressed by the internal
// track info ID rather than the tracking number.
// Method "SetTrackRemark" against the order endpoint.
type SetRemarkRequest struct {
	TrackInfoID string `json:"TrackInfoId"`
	Remark      string `json:"Remark"`
}

// SetRemarkResponse is the remark response envelope.
type SetRemarkResponse struct {
	Code    int    `json:"Code"`
	Message string `json:"Message,omitempty"`
}
