package problems

import "errors"

// The service maps every failure into one of these sentinels so the HTTP
// layer can pick a status without inspecting provider or store internals.
// Wrapped detail stays available for logs via errors.Unwrap.
var (
	// ErrInvalidParameter marks malformed or missing request fields.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound marks an unknown session id.
	ErrNotFound = errors.New("problem session not found")

	// ErrGeneration marks an AI provider failure or empty response.
	ErrGeneration = errors.New("generation failed")

	// ErrParse marks AI output that is not the expected JSON.
	ErrParse = errors.New("response parse failed")

	// ErrPersistence marks a storage backend failure.
	ErrPersistence = errors.New("persistence failed")
)
