// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package store persists runs, answers and bag rules in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore is a SQLite-backed store for puzzle runs.
type SQLiteStore struct {
	db *sql.DB
}

// StoreConfig holds configuration for creating a SQLiteStore.
type StoreConfig struct {
	// Path is the file path for file-based SQLite.
	// If empty, a private in-memory database is used.
	Path string

	// InitSchema controls whether to run schema initialization.
	// It is always done for in-memory databases.
	InitSchema bool
}

// NewSQLiteStore creates a new in-memory SQLite store with schema loaded.
func NewSQLiteStore() (*SQLiteStore, error) {
	return NewSQLiteStoreWithConfig(StoreConfig{InitSchema: true})
}

// NewSQLiteStoreWithConfig creates a SQLite store based on the provided configuration.
// For file-based mode (Path is set), the database file MUST already exist.
// Use InitDatabase to create and initialize a new database file.
func NewSQLiteStoreWithConfig(cfg StoreConfig) (*SQLiteStore, error) {
	var dsn string
	if cfg.Path == "" {
		// every connection to ":memory:" gets its own database,
		// so the pool is limited to one connection below.
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	} else {
		// SQLite would create a missing file, which we don't want
		if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
			return nil, fmt.Errorf("database file does not exist: %s (run init-db command to create it)", cfg.Path)
		}
		dsn = fileDSN(cfg.Path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.Path == "" {
		db.SetMaxOpenConns(1)
	}

	if cfg.InitSchema || cfg.Path == "" {
		if _, err := db.Exec(schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec schema: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// InitDatabase creates a new SQLite database file and initializes the schema.
// Returns an error if the file already exists.
func InitDatabase(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database file already exists: %s", path)
	}

	db, err := sql.Open("sqlite", fileDSN(path))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("exec schema: %w", err)
	}

	return nil
}

// fileDSN applies the pragmas per-connection so the pool always has them.
// modernc.org/sqlite supports repeated _pragma=... parameters.
func fileDSN(path string) string {
	return fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
		path,
	)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// TableStats returns row counts for all tables.
func (s *SQLiteStore) TableStats(ctx context.Context) (map[string]int64, error) {
	tables := []string{
		"runs",
		"answers",
		"bag_rules",
		"bag_contents",
	}

	stats := make(map[string]int64, len(tables))
	for _, table := range tables {
		var count int64
		query := `SELECT COUNT(*) ` + `FROM ` + table
		if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		stats[table] = count
	}

	return stats, nil
}
