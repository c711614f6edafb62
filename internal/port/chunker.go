package port

import "studyrag/internal/domain"

// Chunker splits raw document text into overlapping windows. Pure over its
// inputs; empty input yields no chunks.
type Chunker interface {
	Chunk(sourceID, text string) []domain.Chunk
}
