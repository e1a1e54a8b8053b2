package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/boltdb/bolt"
	"github.com/cespare/xxhash/v2"

	"harshagw/docstats/internal/document"
)

var (
	bucketSnapshots = []byte("snapshots")
	bucketPaths     = []byte("paths")
)

// Key derives the cache key of a document from its lines.
func Key(lines []string) string {
	h := xxhash.New()
	for _, line := range lines {
		h.WriteString(line)
		h.Write([]byte{'\n'})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Cache persists analysed document snapshots in BoltDB, keyed by content hash.
// A second bucket remembers which key a file path last resolved to.
type Cache struct {
	db *bolt.DB
}

// Open opens or creates a cache in dir.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, "docstats.db")
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, err
	}

	// Initialize buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSnapshots, bucketPaths} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db}, nil
}

// Put stores a snapshot under key, replacing any previous one.
func (c *Cache) Put(key string, s document.Snapshot) error {
	data := EncodeSnapshot(s)
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put([]byte(key), data)
	})
}

// Get loads the snapshot stored under key.
func (c *Cache) Get(key string) (document.Snapshot, bool, error) {
	var (
		snap  document.Snapshot
		found bool
	)
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSnapshots).Get([]byte(key))
		if data == nil {
			return nil
		}
		found = true
		var err error
		snap, err = DecodeSnapshot(data)
		return err
	})
	if err != nil {
		return document.Snapshot{}, false, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return snap, found, nil
}

// Delete removes the snapshot stored under key and any path pointing to it.
func (c *Cache) Delete(key string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketSnapshots).Delete([]byte(key)); err != nil {
			return err
		}

		paths := tx.Bucket(bucketPaths)
		var stale [][]byte
		err := paths.ForEach(func(k, v []byte) error {
			if string(v) == key {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := paths.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Keys returns every stored snapshot key in sorted order.
func (c *Cache) Keys() ([]string, error) {
	var keys []string
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSnapshots).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// SetPath records that path currently resolves to key.
func (c *Cache) SetPath(path, key string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPaths).Put([]byte(path), []byte(key))
	})
}

// PathKey returns the key path last resolved to.
func (c *Cache) PathKey(path string) (string, bool, error) {
	var key string
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketPaths).Get([]byte(path)); v != nil {
			key = string(v)
		}
		return nil
	})
	return key, key != "", err
}

// Paths returns every recorded path with its key, formatted as "path -> key".
func (c *Cache) Paths() ([]string, error) {
	var entries []string
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPaths).ForEach(func(k, v []byte) error {
			entries = append(entries, strings.Join([]string{string(k), string(v)}, " -> "))
			return nil
		})
	})
	return entries, err
}

func (c *Cache) Close() error {
	return c.db.Close()
}
