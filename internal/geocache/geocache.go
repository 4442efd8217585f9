// Package geocache is a SQLite-backed store for raw localidades responses,
// so repeat lookups of the same state or city list skip the network.
package geocache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS lookup_cache (
	cache_key    TEXT PRIMARY KEY,
	payload_json BLOB NOT NULL,
	fetched_at   INTEGER NOT NULL
);
`

// Store provides SQLite-backed persistence for lookup payloads.
type Store struct {
	sqlDB *sql.DB
	ttl   time.Duration
	now   func() time.Time
}

// Open opens (creating if needed) the cache database at path.
// Entries older than ttl are treated as misses.
func Open(path string, ttl time.Duration) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, ttl: ttl, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get loads a payload by key. Expired entries report ok=false.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s == nil || s.sqlDB == nil {
		return nil, false, fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, fmt.Errorf("cache key is required")
	}

	var payload []byte
	var fetchedAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload_json, fetched_at FROM lookup_cache WHERE cache_key = ?`,
		key,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cache entry: %w", err)
	}

	if s.now().Sub(time.UnixMilli(fetchedAt)) > s.ttl {
		return nil, false, nil
	}
	return payload, true, nil
}

// Put upserts a payload by key, stamping it with the current time.
func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("cache key is required")
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO lookup_cache (cache_key, payload_json, fetched_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
			payload_json = excluded.payload_json,
			fetched_at = excluded.fetched_at`,
		key, payload, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// Purge deletes every entry older than the TTL and returns how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	cutoff := s.now().Add(-s.ttl).UnixMilli()
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM lookup_cache WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	return n, nil
}
