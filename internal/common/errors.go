// Package common defines shared constants and sentinel errors used across
// the server and client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrorNotFound is returned by the client when the server reports that a
	// member does not exist. Repositories and services never return it; they
	// report absence with a boolean.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Transport-level errors.
	ErrorInvalidID = errors.New("invalid member id")

	// Bootstrap errors.
	ErrorUnknownStorageDriver = errors.New("unknown storage driver")
)
