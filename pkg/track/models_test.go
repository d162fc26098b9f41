package track_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/seventeentrack/pkg/track"
)

func TestNewPackage_TimestampUTC(t *testing.T) {
	pkg := track.NewPackage(track.PackageParams{
		TrackingNumber: "1234567890987654321",
		Timestamp:      "2018-04-23 12:02",
		Timezone:       "UTC",
	})

	expected := time.Date(2018, 4, 23, 12, 2, 0, 0, time.UTC)
	assert.True(t, pkg.Timestamp.Equal(expected), "got %s", pkg.Timestamp)
}

func TestNewPackage_TimestampSourceTimezone(t *testing.T) {
	pkg := track.NewPackage(track.PackageParams{
		TrackingNumber: "1234567890987654321",
		Timestamp:      "2018-04-23 12:02",
		Timezone:       "Asia/Jakarta",
	})

	// Asia/Jakarta is UTC+7, so the instant is seven hours earlier in UTC.
	expected := time.Date(2018, 4, 23, 5, 2, 0, 0, time.UTC)
	assert.True(t, pkg.Timestamp.Equal(expected), "got %s", pkg.Timestamp)
	assert.Equal(t, "Asia/Jakarta", pkg.Timezone)
}

func TestNewPackage_TimestampWithSeconds(t *testing.T) {
	pkg := track.NewPackage(track.PackageParams{
		TrackingNumber: "1234567890987654321",
		Timestamp:      "2018-04-23 12:02:45",
		Timezone:       "UTC",
	})

	expected := time.Date(2018, 4, 23, 12, 2, 45, 0, time.UTC)
	assert.True(t, pkg.Timestamp.Equal(expected), "got %s", pkg.Timestamp)
}

func TestNewPackage_UnparsableTimestampIsEpoch(t *testing.T) {
	for _, value := range []string{"", "not a date", "2018/04/23"} {
		pkg := track.NewPackage(track.PackageParams{
			TrackingNumber: "1234567890987654321",
			Timestamp:      value,
		})
		assert.True(t, pkg.Timestamp.Equal(time.Unix(0, 0)), "input %q got %s", value, pkg.Timestamp)
	}
}

func TestNewPackage_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	pkg := track.NewPackage(track.PackageParams{
		TrackingNumber: "1234567890987654321",
		Timestamp:      "2018-04-23 12:02",
		Timezone:       "Nowhere/Atlantis",
	})

	expected := time.Date(2018, 4, 23, 12, 2, 0, 0, time.UTC)
	assert.True(t, pkg.Timestamp.Equal(expected), "got %s", pkg.Timestamp)
}

func TestNewPackage_CodeResolution(t *testing.T) {
	pkg := track.NewPackage(track.PackageParams{
		TrackingNumber:         "RB123456789CN",
		CarrierCode:            100003,
		OriginCountryCode:      301,
		DestinationCountryCode: 1803,
		PackageTypeCode:        2,
		StatusCode:             10,
	})

	assert.Equal(t, "FedEx", pkg.Carrier)
	assert.Equal(t, "China", pkg.OriginCountry)
	assert.Equal(t, "United States", pkg.DestinationCountry)
	assert.Equal(t, "Registered Parcel", pkg.PackageType)
	assert.Equal(t, "In Transit", pkg.Status)
}

func TestNewPackage_UnknownCodesResolveToUnknown(t *testing.T) {
	pkg := track.NewPackage(track.PackageParams{
		TrackingNumber:         "RB123456789CN",
		CarrierCode:            424242,
		OriginCountryCode:      424242,
		DestinationCountryCode: 424242,
		PackageTypeCode:        99,
		StatusCode:             999,
	})

	assert.Equal(t, "Unknown", pkg.Carrier)
	assert.Equal(t, "Unknown", pkg.OriginCountry)
	assert.Equal(t, "Unknown", pkg.DestinationCountry)
	assert.Equal(t, "Unknown", pkg.PackageType)
	assert.Equal(t, "Unknown", pkg.Status)
}

func TestNewPackage_Defaults(t *testing.T) {
	pkg := track.NewPackage(track.PackageParams{TrackingNumber: "RB123456789CN"})

	require.Equal(t, "RB123456789CN", pkg.TrackingNumber)
	assert.Equal(t, "UTC", pkg.Timezone)
	assert.Equal(t, "Unknown", pkg.TrackingInfoLanguage)
	assert.Equal(t, "Not Found", pkg.Status)
}
