package repository

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

const dedupSchema = `
CREATE TABLE IF NOT EXISTS seen_files (
	content_hash  TEXT PRIMARY KEY,
	source_path   TEXT NOT NULL,
	first_seen_at TEXT NOT NULL
);
`

// DedupStore remembers content hashes across ingest runs so the same
// document is never queued twice, even when the database of record is
// unreachable at ingest time.
type DedupStore interface {
	Seen(ctx context.Context, hash []byte) (bool, error)
	Mark(ctx context.Context, hash []byte, sourcePath string) error
	Close() error
}

type sqliteDedupStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewDedupStore opens (or creates) the local dedup database.
func NewDedupStore(dbPath string, logger *slog.Logger) (DedupStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open dedup db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(dedupSchema); err != nil {
		return nil, fmt.Errorf("migrate dedup db: %w", err)
	}
	return &sqliteDedupStore{db: db, logger: logger}, nil
}

func (s *sqliteDedupStore) Seen(ctx context.Context, hash []byte) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM seen_files WHERE content_hash = ?", hex.EncodeToString(hash)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		s.logger.Error("dedup lookup failed", "error", err)
		return false, err
	}
	return true, nil
}

func (s *sqliteDedupStore) Mark(ctx context.Context, hash []byte, sourcePath string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO seen_files (content_hash, source_path, first_seen_at) VALUES (?, ?, ?)",
		hex.EncodeToString(hash), sourcePath, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.logger.Error("dedup mark failed", "error", err)
	}
	return err
}

func (s *sqliteDedupStore) Close() error {
	return s.db.Close()
}
