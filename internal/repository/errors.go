// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios.
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every per-entity not-found error.  Handlers
// should translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrVenueNotFound is returned when a venue id has no matching row.
var ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)

// ErrArtistNotFound is returned when an artist id has no matching row.
var ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)
