package domain

import "errors"

var (
	// ErrEmbeddingUnavailable marks a failed or timed-out embedding call.
	// Surfaced to the caller, never retried internally.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")

	// ErrPersistence marks an I/O fault reading or writing a collection.
	// A missing collection is not an error and never produces this.
	ErrPersistence = errors.New("persistence error")
)
