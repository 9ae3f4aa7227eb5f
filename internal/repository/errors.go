// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrClientNotFound signals that a referenced client record
// does not exist; the progress handler translates it into an HTTP 404
// because progress tracking never creates clients implicitly.
package repository

import "errors"

// ErrClientNotFound is returned when a lookup by email matches no
// client row. The appointments handler reacts by creating the client;
// the progress handler translates it into an HTTP 404 response.
var ErrClientNotFound = errors.New("client not found")
