// Stringwise - String Analysis and Public Data API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stringwise

package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/stringwise/internal/logging"
)

// SummaryKey is where the rendered country summary image lives.
const SummaryKey = "countries/summary.png"

const blobKeyPrefix = "blob:"

// ErrNotFound is returned when no blob is stored under a key.
var ErrNotFound = errors.New("blob not found")

// Blob is a stored artifact.
type Blob struct {
	Data        []byte    `json:"data"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is a BadgerDB-backed blob store.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at path. An empty path keeps everything in memory.
func Open(path string) (*Store, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o750); err != nil {
			return nil, fmt.Errorf("create blob store directory: %w", err)
		}
		opts = badger.DefaultOptions(path)
		opts.SyncWrites = true
		// Summary images are tiny.
		opts.ValueLogFileSize = 16 << 20
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for blobs: %w", err)
	}

	logging.Info().
		Str("path", path).
		Bool("in_memory", path == "").
		Msg("Blob store opened")
	return &Store{db: db}, nil
}

// Put stores data under key, replacing any previous blob.
func (s *Store) Put(ctx context.Context, key string, blob *Blob) error {
	if key == "" {
		return errors.New("blob key cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if blob.CreatedAt.IsZero() {
		blob.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshal blob: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(blobKeyPrefix+key), data); err != nil {
			return fmt.Errorf("set blob: %w", err)
		}
		return nil
	})
}

// Get returns the blob stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (*Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var blob Blob
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobKeyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get blob: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &blob)
		})
	})
	if err != nil {
		return nil, err
	}
	return &blob, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(blobKeyPrefix + key))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete blob: %w", err)
		}
		return nil
	})
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
