package v1

import (
	"context"
)

// APIClient defines the interface for V1 API operations. The list and
// detail calls authenticate with the account token header; registration and
// change-info calls are posted without it, matching the upstream contract.
type APIClient interface {
	// GetTrackList fetches the accepted tracking numbers for the account.
	GetTrackList(ctx context.Context, token string, req *TrackListRequest) (*TrackListResponse, error)

	// GetTrackInfo fetches tracking details for a batch of numbers.
	GetTrackInfo(ctx context.Context, token string, req TrackInfoRequest) (*TrackInfoResponse, error)

	// Register adds a batch of tracking numbers to the account.
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)

	// ChangeInfo updates the metadata of a tracked number.
	ChangeInfo(ctx context.Context, req *ChangeInfoRequest) (*ChangeInfoResponse, error)
}

// TokenHeader is the V1 authentication header name.
const TokenHeader = "17token"

// ============================================================================
// API Request/Response Types (match the 17track.net /track/v1 endpoints)
// ============================================================================

// TrackListRequest filters the account's tracking list.
// POST /track/v1/gettracklist
type TrackListRequest struct {
	PackageState string `json:"package_state"`
	// TrackingState 1 restricts the list to actively tracked numbers; nil
	// omits the filter and includes archived entries.
	TrackingState *int `json:"tracking_state,omitempty"`
}

// TrackListResponse partitions the request into accepted and rejected
// entries.
type TrackListResponse struct {
	Code int `json:"code"`
	Data struct {
		Accepted []TrackListEntry `json:"accepted"`
		Rejected []RejectedEntry  `json:"rejected"`
	} `json:"data"`
}

// TrackListEntry is one accepted tracking number. The upstream uses
// single-letter keys for carrier and state.
type TrackListEntry struct {
	Number  string `json:"number"`
	Carrier int    `json:"w1"`
	State   int    `json:"e"`
	Tag     string `json:"tag,omitempty"`
}

// TrackInfoRequest is the batched detail request body: one query per
// tracking number.
// POST /track/v1/gettrackinfo
type TrackInfoRequest []TrackQuery

// TrackQuery addresses one tracking number.
type TrackQuery struct {
	Number  string `json:"number"`
	Carrier int    `json:"carrier"`
}

// TrackInfoResponse holds per-number tracking details.
type TrackInfoResponse struct {
	Code int `json:"code"`
	Data struct {
		Accepted []TrackInfoEntry `json:"accepted"`
		Rejected []RejectedEntry  `json:"rejected"`
	} `json:"data"`
}

// TrackInfoEntry is the detail record for one accepted number.
type TrackInfoEntry struct {
	Number  string      `json:"number"`
	Carrier int         `json:"w1"`
	Track   TrackDetail `json:"track"`
}

// TrackDetail carries the tracking state of a package. The upstream uses
// single-letter keys: b/c are origin/destination country codes, e is the
// package state, z0 the latest event.
type TrackDetail struct {
	OriginCountry      int    `json:"b"`
	DestinationCountry int    `json:"c"`
	State              int    `json:"e"`
	Language           string `json:"ln1"`
	LatestEvent        Event  `json:"z0"`
}

// Event is a single tracking event.
type Event struct {
	Time        string `json:"a"`
	Location    string `json:"c"`
	Detail      string `json:"d"`
	Description string `json:"z"`
}

// RegisterRequest is the registration batch body: one item per number.
// POST /track/v1/register
type RegisterRequest []RegisterItem

// RegisterItem registers one tracking number under a carrier key.
type RegisterItem struct {
	Number  string `json:"number"`
	Carrier int    `json:"carrier"`
	Tag     string `json:"tag,omitempty"`
}

// RegisterResponse partitions the batch into accepted and rejected items.
type RegisterResponse struct {
	Code int `json:"code"`
	Data struct {
		Accepted []TrackListEntry `json:"accepted"`
		Rejected []RejectedEntry  `json:"rejected"`
	} `json:"data"`
}

// RejectedEntry is one refused item with the upstream's machine reason.
type RejectedEntry struct {
	Number string `json:"number"`
	Error  struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ChangeInfoRequest updates the metadata of a tracked number.
// POST /track/v1/changeinfo
type ChangeInfoRequest struct {
	Number string `json:"number"`
	Items  struct {
		Tag string `json:"tag"`
	} `json:"items"`
}

// ChangeInfoResponse reports rejections the same way registration does.
type ChangeInfoResponse struct {
	Code int `json:"code"`
	Data struct {
		Rejected []RejectedEntry `json:"rejected"`
	} `json:"data"`
}
