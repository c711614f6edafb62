package domain

// Chunk is a bounded substring of a source document, the unit of retrieval
// granularity.
type Chunk struct {
	SourceID string
	Text     string
}

// EmbeddingRecord is a persisted unit of retrievable knowledge: a chunk's
// text, its embedding vector, and auxiliary metadata (at minimum the source
// document identifier under the "source" key).
type EmbeddingRecord struct {
	Text      string            `json:"text"`
	Embedding []float32         `json:"embedding"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ScoredRecord pairs a record with its similarity score against a query.
type ScoredRecord struct {
	Record EmbeddingRecord
	Score  float64
}

// SourceDocument is a raw text artifact handed to ingestion. The text may be
// an extraction-layer placeholder string; that is still valid input and just
// becomes a low-value chunk.
type SourceDocument struct {
	ID   string
	Text string
}
