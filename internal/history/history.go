// Package history keeps the lines entered in the REPL in a bbolt file so they
// survive between sessions.
package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("history")

// ErrClosed is returned by a Store used after Close.
var ErrClosed = errors.New("history closed")

// Store is an append-only list of source lines.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the history file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init history %s: %w", path, err)
	}
	return &Store{db}, nil
}

// Append records one line. Empty lines are ignored.
func (s *Store) Append(line string) error {
	if s.db == nil {
		return ErrClosed
	}
	if line == "" {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(itob(seq), []byte(line))
	})
}

// Last returns up to n of the most recent lines, oldest first. A
// non-positive n returns every line.
func (s *Store) Last(n int) ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var lines []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketName).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if n > 0 && len(lines) == n {
				break
			}
			lines = append(lines, string(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// itob encodes a sequence number so keys sort in insertion order.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
