package track

import (
	"time"

	"github.com/tournevent/seventeentrack/pkg/track/data"
)

// Timestamp layouts used by both API generations, tried in order.
const (
	layoutMinute = "2006-01-02 15:04"
	layoutSecond = "2006-01-02 15:04:05"
)

// Package is the normalized record for a tracked package. It is built once
// per response row by NewPackage and never mutated afterwards.
type Package struct {
	// TrackingNumber is the carrier-assigned shipment identifier.
	TrackingNumber string

	// InternalID is the account-scoped identifier assigned by the upstream
	// service. The legacy generation needs it to address rename requests.
	InternalID string

	// FriendlyName is the user-assigned label, if any.
	FriendlyName string

	// Carrier, OriginCountry, DestinationCountry, PackageType and Status
	// are display names resolved from the raw upstream codes. Unknown
	// codes resolve to "Unknown".
	Carrier            string
	OriginCountry      string
	DestinationCountry string
	PackageType        string
	Status             string

	// InfoText is the free-text description of the latest tracking event.
	InfoText string

	// Location is the last known location, joined from the event
	// sub-fields.
	Location string

	// Timestamp is the instant of the latest tracking event in UTC. An
	// absent or unparsable upstream value normalizes to the Unix epoch.
	Timestamp time.Time

	// Timezone is the source timezone label the upstream timestamp was
	// parsed in.
	Timezone string

	// TrackingInfoLanguage is the language of the upstream tracking info.
	TrackingInfoLanguage string
}

// PackageParams carries the raw per-package fields extracted from an
// upstream response row.
type PackageParams struct {
	TrackingNumber         string
	InternalID             string
	FriendlyName           string
	CarrierCode            int
	OriginCountryCode      int
	DestinationCountryCode int
	PackageTypeCode        int
	StatusCode             int
	InfoText               string
	Location               string
	Timestamp              string
	Timezone               string
	TrackingInfoLanguage   string
}

// NewPackage builds a Package from raw upstream fields, resolving every code
// to its display name and normalizing the event timestamp to UTC. It never
// fails: unknown codes resolve to "Unknown" and unparsable timestamps to the
// epoch.
func NewPackage(p PackageParams) Package {
	tz := p.Timezone
	if tz == "" {
		tz = "UTC"
	}
	lang := p.TrackingInfoLanguage
	if lang == "" {
		lang = "Unknown"
	}

	return Package{
		TrackingNumber:       p.TrackingNumber,
		InternalID:           p.InternalID,
		FriendlyName:         p.FriendlyName,
		Carrier:              data.Carrier(p.CarrierCode),
		OriginCountry:        data.Country(p.OriginCountryCode),
		DestinationCountry:   data.Country(p.DestinationCountryCode),
		PackageType:          data.PackageType(p.PackageTypeCode),
		Status:               data.Status(p.StatusCode),
		InfoText:             p.InfoText,
		Location:             p.Location,
		Timestamp:            parseEventTime(p.Timestamp, tz),
		Timezone:             tz,
		TrackingInfoLanguage: lang,
	}
}

// parseEventTime parses an upstream event timestamp in the given source
// timezone and converts it to UTC. Unresolvable timezone labels fall back to
// UTC; unparsable timestamps normalize to the epoch.
func parseEventTime(value, tz string) time.Time {
	loc := time.UTC
	if tz != "UTC" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	for _, layout := range []string{layoutMinute, layoutSecond} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC()
		}
	}
	return time.Unix(0, 0).UTC()
}
