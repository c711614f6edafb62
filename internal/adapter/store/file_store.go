package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"studyrag/internal/domain"
)

const collectionFile = "vs.json"

// FileStore keeps one JSON file per collection under a base directory.
// Every append re-persists the whole collection: the full rewrite keeps the
// JSON structure intact at the cost of O(n) per append, which is fine at
// the one-session-of-notes scale this serves. Concurrent writers to the
// same collection race last-writer-wins; there is no file locking.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(collectionID string) string {
	return filepath.Join(s.dir, collectionID, collectionFile)
}

// Load reads a collection. Missing files yield an empty collection, and so
// does malformed JSON: one bad write must not permanently brick a
// collection, so corruption is logged and recovered as empty.
func (s *FileStore) Load(collectionID string) ([]domain.EmbeddingRecord, error) {
	data, err := os.ReadFile(s.path(collectionID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading collection %s: %v", domain.ErrPersistence, collectionID, err)
	}

	var records []domain.EmbeddingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("collection %s is malformed, treating as empty: %v", collectionID, err)
		return nil, nil
	}

	return records, nil
}

func (s *FileStore) Append(collectionID string, records ...domain.EmbeddingRecord) error {
	existing, err := s.Load(collectionID)
	if err != nil {
		return err
	}
	return s.writeAll(collectionID, append(existing, records...))
}

func (s *FileStore) Rebuild(collectionID string, records []domain.EmbeddingRecord) error {
	return s.writeAll(collectionID, records)
}

// writeAll persists via temp-file-and-rename so a failed write never leaves
// a half-written collection behind.
func (s *FileStore) writeAll(collectionID string, records []domain.EmbeddingRecord) error {
	if records == nil {
		records = []domain.EmbeddingRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding collection %s: %v", domain.ErrPersistence, collectionID, err)
	}

	target := s.path(collectionID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w: creating collection dir: %v", domain.ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), collectionFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", domain.ErrPersistence, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: writing collection %s: %v", domain.ErrPersistence, collectionID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: closing collection %s: %v", domain.ErrPersistence, collectionID, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replacing collection %s: %v", domain.ErrPersistence, collectionID, err)
	}

	return nil
}
