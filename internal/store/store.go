// Package store is the persistence layer: GORM over SQLite (default) or
// Postgres, selected by the DATABASE_URL scheme.
package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialect identifies the configured database backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Store wraps the database handle and remembers enough about the backend to
// support the file-copy backup.
type Store struct {
	db         *gorm.DB
	dialect    Dialect
	sqlitePath string
}

// Open connects to the database described by url.
//
//	sqlite://data/app.db        SQLite file
//	sqlite://:memory:           in-memory SQLite (tests)
//	postgres://user:pw@host/db  Postgres DSN, passed through as-is
//
// A bare path with no scheme is treated as a SQLite file.
func Open(url string) (*Store, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		db, err := gorm.Open(postgres.Open(url), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return &Store{db: db, dialect: DialectPostgres}, nil
	default:
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return nil, fmt.Errorf("empty sqlite path in %q", url)
		}
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
		}
		abs := path
		if path != ":memory:" {
			if a, err := filepath.Abs(path); err == nil {
				abs = a
			}
		}
		return &Store{db: db, dialect: DialectSQLite, sqlitePath: abs}, nil
	}
}

// DB exposes the underlying handle for migrations.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Dialect returns the configured backend.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// SQLitePath returns the database file path, empty for non-SQLite backends
// and for in-memory databases.
func (s *Store) SQLitePath() string {
	if s.sqlitePath == ":memory:" {
		return ""
	}
	return s.sqlitePath
}
