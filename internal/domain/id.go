// Package domain contains the core data types for the shop API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, mapper, service, handler).
package domain

import "strconv"

// ID identifies a persisted record. It is a distinct type so identifiers are
// never mixed up with counts or other integers.
// The zero value means "not yet persisted"; the store assigns IDs starting at 1.
type ID int64

// IsZero reports whether the ID has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

// String returns the decimal form used in resource URLs.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
