// Package history keeps a ledger of packaged builds so a flashed device can
// be traced back to the exact revision and context that produced it.
//
// Records are keyed by a SHA256 hash of the binary content plus the build
// context, stored as JSON in a BoltDB bucket under the project's .aerobuild
// directory. Recording is advisory: a ledger failure never fails the build.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.etcd.io/bbolt"
)

const (
	// DefaultDir is the ledger directory name inside the project root
	DefaultDir = ".aerobuild"

	// bucketName is the BoltDB bucket name for build records
	bucketName = "builds"
)

// Ledger stores build records in BoltDB
type Ledger struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the ledger under dir
func Open(dir string) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create ledger bucket: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}

	return nil
}

// Record stores a build record, overwriting any record with the same hash
func (l *Ledger) Record(rec Record) error {
	return l.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		return b.Put([]byte(rec.Hash), data)
	})
}

// Get retrieves a record by hash
// Returns nil if no record exists
func (l *Ledger) Get(hash string) (*Record, error) {
	var rec Record
	found := false

	err := l.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		data := b.Get([]byte(hash))
		if data == nil {
			return nil
		}

		found = true

		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &rec, nil
}

// List returns all records, newest first
func (l *Ledger) List() ([]Record, error) {
	var records []Record

	err := l.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		return b.ForEach(func(_, data []byte) error {
			var rec Record
			if err := json.Unmarshal(data, &rec); err != nil {
				return err
			}

			records = append(records, rec)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})

	return records, nil
}

// Clear removes all build records
func (l *Ledger) Clear() error {
	err := l.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket([]byte(bucketName))
	})
	if err != nil {
		return err
	}

	return l.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucket([]byte(bucketName))
		return err
	})
}

// Count returns the number of stored records
func (l *Ledger) Count() (int, error) {
	var count int

	err := l.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		count = b.Stats().KeyN

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}
