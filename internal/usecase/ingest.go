package usecase

import (
	"fmt"

	"studyrag/internal/domain"
	"studyrag/internal/port"
)

const embedBatchSize = 32

// ProgressFunc reports embedding progress during long ingestions.
type ProgressFunc func(done, total int)

// IngestUseCase turns raw text into persisted embedding records:
// chunk, embed, append. Embedding failures surface to the caller before
// anything is written, so a failed ingest leaves the collection unchanged.
type IngestUseCase struct {
	chunker  port.Chunker
	embedder port.Embedder
	store    port.VectorStore
}

func NewIngestUseCase(chunker port.Chunker, embedder port.Embedder, store port.VectorStore) *IngestUseCase {
	return &IngestUseCase{chunker: chunker, embedder: embedder, store: store}
}

// IngestResult reports what a single ingestion produced.
type IngestResult struct {
	ChunksCreated int
}

// Ingest chunks the text, embeds every chunk, and appends the records to
// the collection. Extraction-layer placeholder text gets no special
// treatment; it is ingested like any other text and just scores low at
// search time.
func (u *IngestUseCase) Ingest(collectionID, sourceID, text string) (*IngestResult, error) {
	chunks := u.chunker.Chunk(sourceID, text)
	if len(chunks) == 0 {
		return &IngestResult{}, nil
	}

	records, err := u.embedChunks(chunks, nil)
	if err != nil {
		return nil, err
	}

	if err := u.store.Append(collectionID, records...); err != nil {
		return nil, err
	}

	return &IngestResult{ChunksCreated: len(records)}, nil
}

// RebuildResult reports what a bulk rebuild produced.
type RebuildResult struct {
	Documents     int
	ChunksCreated int
}

// Rebuild replaces a collection from scratch. All chunks are embedded
// before the single store call, so a mid-way embedding failure leaves the
// previous collection intact (rebuild is all-or-nothing).
func (u *IngestUseCase) Rebuild(collectionID string, docs []domain.SourceDocument, progress ProgressFunc) (*RebuildResult, error) {
	var chunks []domain.Chunk
	for _, doc := range docs {
		chunks = append(chunks, u.chunker.Chunk(doc.ID, doc.Text)...)
	}

	records, err := u.embedChunks(chunks, progress)
	if err != nil {
		return nil, err
	}

	if err := u.store.Rebuild(collectionID, records); err != nil {
		return nil, err
	}

	return &RebuildResult{Documents: len(docs), ChunksCreated: len(records)}, nil
}

func (u *IngestUseCase) embedChunks(chunks []domain.Chunk, progress ProgressFunc) ([]domain.EmbeddingRecord, error) {
	records := make([]domain.EmbeddingRecord, 0, len(chunks))

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		vectors, err := u.embedder.Embed(texts)
		if err != nil {
			return nil, err
		}
		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("%w: got %d vectors for %d chunks", domain.ErrEmbeddingUnavailable, len(vectors), len(batch))
		}

		for i, chunk := range batch {
			records = append(records, domain.EmbeddingRecord{
				Text:      chunk.Text,
				Embedding: vectors[i],
				Metadata:  map[string]string{"source": chunk.SourceID},
			})
		}

		if progress != nil {
			progress(end, len(chunks))
		}
	}

	return records, nil
}
