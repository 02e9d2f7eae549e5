package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/rare-disease-dx/internal/domain"
)

// SQLiteStore keeps the slot as one row of the session_snapshots table.
// Several slots may share a database file.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

// NewSQLiteStore opens dbPath, migrates the schema and returns a store for slot.
func NewSQLiteStore(ctx context.Context, dbPath, slot string, logger *logrus.Logger) (*SQLiteStore, error) {
	if slot == "" {
		return nil, domain.NewValidationError("slot", "must not be empty", slot)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := migrateDatabase(ctx, dbPath, logger); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	return newSQLiteStore(db, slot), nil
}

func newSQLiteStore(db *sql.DB, slot string) *SQLiteStore {
	return &SQLiteStore{db: db, slot: slot}
}

// migrateDatabase runs migrations on a dedicated handle, since the runner
// closes the handle it is given.
func migrateDatabase(ctx context.Context, dbPath string, logger *logrus.Logger) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	runner, err := NewMigrationRunner(db, logger)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}
	defer runner.Close()

	if err := runner.Up(ctx); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Put(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_snapshots (slot, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, s.slot, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM session_snapshots WHERE slot = ?",
		s.slot,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSnapshotAbsent
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return payload, nil
}

func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session_snapshots WHERE slot = ?", s.slot); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
