package usecase

import (
	"fmt"
	"math"
	"sort"

	"studyrag/internal/domain"
	"studyrag/internal/port"
)

// SearchUseCase answers queries by brute-force cosine scan over a loaded
// collection. O(n·D) per query, which is the intended operating point for a
// single session's worth of notes; keep it a linear scan rather than an
// approximate index.
type SearchUseCase struct {
	embedder port.Embedder
	store    port.VectorStore
}

func NewSearchUseCase(embedder port.Embedder, store port.VectorStore) *SearchUseCase {
	return &SearchUseCase{embedder: embedder, store: store}
}

// Search embeds the query and returns up to topK records in descending
// score order. Ties keep insertion order. An empty collection yields an
// empty result, not an error.
func (u *SearchUseCase) Search(collectionID, query string, topK int) ([]domain.ScoredRecord, error) {
	if topK <= 0 {
		topK = 1
	}

	records, err := u.store.Load(collectionID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	vectors, err := u.embedder.Embed([]string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("%w: empty query embedding", domain.ErrEmbeddingUnavailable)
	}
	queryVec := vectors[0]

	scored := make([]domain.ScoredRecord, len(records))
	for i, record := range records {
		scored[i] = domain.ScoredRecord{
			Record: record,
			Score:  cosineSimilarity(queryVec, record.Embedding),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored, nil
}

// cosineSimilarity computes dot(a,b) / (|a|*|b|). A zero-norm vector (or a
// dimension mismatch) makes the similarity undefined; such comparisons
// score -Inf so they sort behind every defined score and are never
// selected.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.Inf(-1)
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return math.Inf(-1)
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
