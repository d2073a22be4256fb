// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors. For example, ErrNotFound indicates
// that no row matched the caller's identifier, which handlers translate
// into an HTTP 404 response.
package repository

import "errors"

// ErrNotFound is returned when a lookup or update targets a booking id
// that does not exist (including an UPDATE that affected zero rows).
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
