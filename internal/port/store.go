package port

import "studyrag/internal/domain"

// VectorStore persists embedding records grouped into named collections.
//
// No coordination between concurrent writers to the same collection is
// provided: appends against a file-backed store are whole-file rewrites and
// race last-writer-wins. Add file locking here if concurrent ingestion is
// ever required.
type VectorStore interface {
	// Load reads the persisted records for a collection, in insertion order.
	// A missing collection yields an empty slice, not an error. Malformed
	// persisted data is recovered as an empty collection (logged, not
	// raised); only genuine I/O faults wrap domain.ErrPersistence.
	Load(collectionID string) ([]domain.EmbeddingRecord, error)

	// Append adds records to the end of a collection, creating it if needed.
	Append(collectionID string, records ...domain.EmbeddingRecord) error

	// Rebuild replaces the collection wholesale, all-or-nothing.
	Rebuild(collectionID string, records []domain.EmbeddingRecord) error
}
