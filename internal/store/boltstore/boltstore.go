package boltstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todos.db"

var (
	bucketName = []byte("tuido")
	recordsKey = []byte("records")
)

// Store keeps the serialized list as a single value in a bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at path. It fails after a second if
// another process holds the file lock.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultFileName
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Path() string { return s.db.Path() }

// Load returns the stored bytes, or nothing when none were saved yet.
func (s *Store) Load() ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		if v := b.Get(recordsKey); v != nil {
			// v is only valid inside the transaction
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read bolt db: %w", err)
	}
	return out, nil
}

func (s *Store) Save(data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put(recordsKey, data)
	})
	if err != nil {
		return fmt.Errorf("write bolt db: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
