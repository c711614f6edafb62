package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"go.etcd.io/bbolt"

	"studyrag/internal/domain"
)

// BoltStore keeps all collections in one bbolt database, one bucket per
// collection. Records are keyed by bucket sequence number, so iteration
// order is insertion order. Append and Rebuild each run in a single
// transaction, which makes Rebuild all-or-nothing.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: opening store: %v", domain.ErrPersistence, err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Load(collectionID string) ([]domain.EmbeddingRecord, error) {
	var records []domain.EmbeddingRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collectionID))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var record domain.EmbeddingRecord
			if err := json.Unmarshal(v, &record); err != nil {
				log.Printf("collection %s: skipping malformed record: %v", collectionID, err)
				return nil
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: reading collection %s: %v", domain.ErrPersistence, collectionID, err)
	}

	return records, nil
}

func (s *BoltStore) Append(collectionID string, records ...domain.EmbeddingRecord) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collectionID))
		if err != nil {
			return err
		}
		return putRecords(b, records)
	})
	if err != nil {
		return fmt.Errorf("%w: appending to collection %s: %v", domain.ErrPersistence, collectionID, err)
	}
	return nil
}

func (s *BoltStore) Rebuild(collectionID string, records []domain.EmbeddingRecord) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(collectionID)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket([]byte(collectionID))
		if err != nil {
			return err
		}
		return putRecords(b, records)
	})
	if err != nil {
		return fmt.Errorf("%w: rebuilding collection %s: %v", domain.ErrPersistence, collectionID, err)
	}
	return nil
}

func putRecords(b *bbolt.Bucket, records []domain.EmbeddingRecord) error {
	for _, record := range records {
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		if err := b.Put(sequenceKey(seq), data); err != nil {
			return err
		}
	}
	return nil
}

// sequenceKey encodes big-endian so byte order matches numeric order.
func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
