// Package id generates the ULID identifiers used as partition keys for
// users, scooters, orders, reviews and bookings.
package id

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID. IDs sort by creation time, so listings read
// back in roughly chronological order without a separate sort key.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// NewLower returns a lowercase ULID for S3 object keys, which are kept
// lowercase throughout the media layer.
func NewLower() string {
	return strings.ToLower(New())
}
