// Package track defines the domain model shared by the 17track.net
// profile drivers.
package track

import (
	"context"
)

// Credentials holds the authentication material for a profile. The legacy
// API generation authenticates with Email and Password over the wire; the
// V1 generation only needs APIToken, which is attached to subsequent
// requests as a header.
type Credentials struct {
	Email    string
	Password string
	APIToken string
}

// PackagesOptions controls a package list request.
type PackagesOptions struct {
	// PackageState filters by raw upstream state. Empty means all states.
	PackageState string

	// ShowArchived includes archived packages in the result.
	ShowArchived bool

	// Timezone is the IANA label the upstream timestamps are expressed in.
	// Empty means UTC.
	Timezone string
}

// Summary maps a resolved status name to the number of packages in that
// status.
type Summary map[string]int

// Profile defines the operations supported by a 17track.net account profile.
// Both API generations implement it; operations a generation does not
// support return ErrNotSupported.
type Profile interface {
	// Login authenticates the profile. A false return with a nil error
	// means the upstream rejected the credentials; rejection is not
	// exceptional.
	Login(ctx context.Context, creds Credentials) (bool, error)

	// Packages returns the tracked packages in upstream order.
	Packages(ctx context.Context, opts PackagesOptions) ([]Package, error)

	// Summary returns per-status package counts.
	Summary(ctx context.Context, showArchived bool) (Summary, error)

	// AddPackage registers a tracking number, letting the upstream detect
	// the carrier. Not supported by the V1 generation.
	AddPackage(ctx context.Context, trackingNumber, friendlyName string) error

	// AddPackageWithCarrier registers a tracking number under a named
	// carrier. Not supported by the legacy generation.
	AddPackageWithCarrier(ctx context.Context, trackingNumber, carrier, friendlyName string) error

	// SetFriendlyName labels an already-tracked package. The legacy
	// generation addresses packages by internal ID, the V1 generation by
	// tracking number.
	SetFriendlyName(ctx context.Context, id, friendlyName string) error
}
