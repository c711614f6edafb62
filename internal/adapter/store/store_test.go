package store

import (
	"fmt"
	"reflect"
	"testing"

	"studyrag/internal/domain"
	"studyrag/internal/port"
)

// Both backends implement the same contract; run the shared suite against
// each.
func testRecords(n int) []domain.EmbeddingRecord {
	records := make([]domain.EmbeddingRecord, n)
	for i := range records {
		records[i] = domain.EmbeddingRecord{
			Text:      fmt.Sprintf("chunk %d", i),
			Embedding: []float32{float32(i), 0.1, -2.5, 3.25},
			Metadata:  map[string]string{"source": fmt.Sprintf("doc%d.txt", i%2)},
		}
	}
	return records
}

func runStoreContract(t *testing.T, s port.VectorStore) {
	t.Helper()

	t.Run("MissingCollectionIsEmpty", func(t *testing.T) {
		records, err := s.Load("does-not-exist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected empty collection, got %d records", len(records))
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		want := testRecords(3)
		if err := s.Rebuild("roundtrip", want); err != nil {
			t.Fatal(err)
		}

		got, err := s.Load("roundtrip")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("AppendKeepsOrder", func(t *testing.T) {
		want := testRecords(5)
		for _, r := range want {
			if err := s.Append("appended", r); err != nil {
				t.Fatal(err)
			}
		}

		got, err := s.Load("appended")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %d records in call order, got %+v", len(want), got)
		}
	})

	t.Run("RebuildIsIdempotent", func(t *testing.T) {
		records := testRecords(4)
		if err := s.Rebuild("rebuilt", records); err != nil {
			t.Fatal(err)
		}
		first, err := s.Load("rebuilt")
		if err != nil {
			t.Fatal(err)
		}

		if err := s.Rebuild("rebuilt", records); err != nil {
			t.Fatal(err)
		}
		second, err := s.Load("rebuilt")
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Errorf("rebuild not idempotent:\nfirst  %+v\nsecond %+v", first, second)
		}
	})

	t.Run("RebuildReplacesWholesale", func(t *testing.T) {
		if err := s.Rebuild("replaced", testRecords(5)); err != nil {
			t.Fatal(err)
		}
		want := testRecords(2)
		if err := s.Rebuild("replaced", want); err != nil {
			t.Fatal(err)
		}

		got, err := s.Load("replaced")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected rebuild to replace collection, got %+v", got)
		}
	})

	t.Run("RebuildToEmpty", func(t *testing.T) {
		if err := s.Rebuild("emptied", testRecords(3)); err != nil {
			t.Fatal(err)
		}
		if err := s.Rebuild("emptied", nil); err != nil {
			t.Fatal(err)
		}

		records, err := s.Load("emptied")
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 0 {
			t.Errorf("expected empty collection after empty rebuild, got %d", len(records))
		}
	})

	t.Run("CollectionsAreIndependent", func(t *testing.T) {
		if err := s.Rebuild("cs101", testRecords(3)); err != nil {
			t.Fatal(err)
		}
		if err := s.Rebuild("bio202", testRecords(1)); err != nil {
			t.Fatal(err)
		}

		a, err := s.Load("cs101")
		if err != nil {
			t.Fatal(err)
		}
		b, err := s.Load("bio202")
		if err != nil {
			t.Fatal(err)
		}
		if len(a) != 3 || len(b) != 1 {
			t.Errorf("collections bled into each other: %d and %d records", len(a), len(b))
		}
	})
}
