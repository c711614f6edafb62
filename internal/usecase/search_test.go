package usecase

import (
	"errors"
	"math"
	"testing"

	"studyrag/internal/adapter/store"
	"studyrag/internal/domain"
)

// fakeEmbedder returns canned vectors per text, so tests control scores
// exactly.
type fakeEmbedder struct {
	vectors map[string][]float32
	dim     int
	err     error
}

func (f *fakeEmbedder) Embed(texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := f.vectors[text]; ok {
			out[i] = v
		} else {
			out[i] = make([]float32, f.dim)
		}
	}
	return out, nil
}

func (f *fakeEmbedder) Dimension() int    { return f.dim }
func (f *fakeEmbedder) ModelName() string { return "fake" }

func seedCollection(t *testing.T, s *store.FileStore, id string, records []domain.EmbeddingRecord) {
	t.Helper()
	if err := s.Rebuild(id, records); err != nil {
		t.Fatal(err)
	}
}

func TestSearchRanksByCosineSimilarity(t *testing.T) {
	st := store.NewFileStore(t.TempDir())
	seedCollection(t, st, "notes", []domain.EmbeddingRecord{
		{Text: "exact", Embedding: []float32{1, 0}},
		{Text: "orthogonal", Embedding: []float32{0, 1}},
		{Text: "close", Embedding: []float32{0.9, 0.1}},
	})

	emb := &fakeEmbedder{dim: 2, vectors: map[string][]float32{"q": {1, 0}}}
	searchUC := NewSearchUseCase(emb, st)

	results, err := searchUC.Search("notes", "q", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Record.Text != "exact" {
		t.Errorf("expected 'exact' first, got %q", results[0].Record.Text)
	}
	if math.Abs(results[0].Score-1.0) > 1e-9 {
		t.Errorf("expected score 1.0, got %f", results[0].Score)
	}

	results, err = searchUC.Search("notes", "q", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Record.Text != "exact" || results[1].Record.Text != "close" {
		t.Errorf("expected [exact, close], got [%s, %s]", results[0].Record.Text, results[1].Record.Text)
	}
	if results[0].Score < results[1].Score {
		t.Errorf("scores not descending: %f < %f", results[0].Score, results[1].Score)
	}
}

func TestSearchEmptyCollection(t *testing.T) {
	st := store.NewFileStore(t.TempDir())
	emb := &fakeEmbedder{dim: 2}
	searchUC := NewSearchUseCase(emb, st)

	results, err := searchUC.Search("nothing-here", "q", 3)
	if err != nil {
		t.Fatalf("expected no error on empty collection, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result, got %d", len(results))
	}
}

func TestSearchZeroNormNeverSelected(t *testing.T) {
	st := store.NewFileStore(t.TempDir())
	seedCollection(t, st, "notes", []domain.EmbeddingRecord{
		{Text: "zero", Embedding: []float32{0, 0}},
		{Text: "negative", Embedding: []float32{-1, 0}},
		{Text: "positive", Embedding: []float32{1, 0}},
	})

	emb := &fakeEmbedder{dim: 2, vectors: map[string][]float32{"q": {1, 0}}}
	searchUC := NewSearchUseCase(emb, st)

	results, err := searchUC.Search("notes", "q", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Even a -1.0 similarity outranks the undefined zero-norm comparison.
	if results[2].Record.Text != "zero" {
		t.Errorf("expected zero-norm record last, got %q", results[2].Record.Text)
	}
	if !math.IsInf(results[2].Score, -1) {
		t.Errorf("expected -Inf score for zero-norm record, got %f", results[2].Score)
	}
}

func TestSearchTiesKeepInsertionOrder(t *testing.T) {
	st := store.NewFileStore(t.TempDir())
	seedCollection(t, st, "notes", []domain.EmbeddingRecord{
		{Text: "first", Embedding: []float32{2, 0}},
		{Text: "second", Embedding: []float32{1, 0}}, // same direction, same cosine
	})

	emb := &fakeEmbedder{dim: 2, vectors: map[string][]float32{"q": {1, 0}}}
	searchUC := NewSearchUseCase(emb, st)

	results, err := searchUC.Search("notes", "q", 2)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Record.Text != "first" || results[1].Record.Text != "second" {
		t.Errorf("tie not broken by insertion order: [%s, %s]", results[0].Record.Text, results[1].Record.Text)
	}
}

func TestSearchEmbeddingFailure(t *testing.T) {
	st := store.NewFileStore(t.TempDir())
	seedCollection(t, st, "notes", []domain.EmbeddingRecord{
		{Text: "a", Embedding: []float32{1, 0}},
	})

	emb := &fakeEmbedder{dim: 2, err: domain.ErrEmbeddingUnavailable}
	searchUC := NewSearchUseCase(emb, st)

	_, err := searchUC.Search("notes", "q", 1)
	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Errorf("expected ErrEmbeddingUnavailable, got %v", err)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"magnitude invariant", []float32{3, 0}, []float32{0.5, 0}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if got := cosineSimilarity([]float32{0, 0}, []float32{1, 0}); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf for zero-norm vector, got %f", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf for dimension mismatch, got %f", got)
	}
}
