// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records conversions in a SQLite database and indexes
// slide text for full-text search.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/deckhtml/internal/convert"
	"github.com/pdiddy/deckhtml/pkg/types"
)

const (
	dbFile = "catalog.db"

	// DefaultMaxResults limits Search and History when no limit is given.
	DefaultMaxResults = 20

	// timeLayout has a fixed width so stored timestamps sort as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrNoDirectory is returned by Open when no catalog directory is set.
var ErrNoDirectory = errors.New("catalog directory not set")

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	path       string
	maxResults int
	now        func() time.Time
}

// Open opens or creates dir/catalog.db and its schema.
func Open(cfg types.CatalogConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, ErrNoDirectory
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	s := &Store{
		db:         db,
		path:       dbPath,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			output TEXT NOT NULL,
			format TEXT,
			title TEXT,
			slides INTEGER,
			shapes INTEGER,
			bytes INTEGER,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_converted_at ON conversions(converted_at)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS slide_text USING fts4(
			conversion_id, slide, title, body,
			notindexed=conversion_id, notindexed=slide
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a successful conversion and indexes its slide text. Rows
// from earlier conversions of the same source are replaced.
func (s *Store) Record(ctx context.Context, res convert.Result, doc *types.Document) error {
	source := absPath(res.Input)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM slide_text WHERE conversion_id IN (SELECT id FROM conversions WHERE source = ?)`, source,
	); err != nil {
		return fmt.Errorf("deleting old slide text: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM conversions WHERE source = ?`, source); err != nil {
		return fmt.Errorf("deleting old conversions: %w", err)
	}

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO conversions (id, source, output, format, title, slides, shapes, bytes, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, source, absPath(res.Output), res.Format.String(), res.Title,
		res.Slides, res.Shapes, res.Bytes, s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion: %w", err)
	}

	if doc != nil {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO slide_text (conversion_id, slide, title, body) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		for i := range doc.Slides {
			sl := &doc.Slides[i]
			if _, err := stmt.ExecContext(ctx, id, sl.Number, slideTitle(sl), slideBody(sl)); err != nil {
				return fmt.Errorf("indexing slide %d: %w", sl.Number, err)
			}
		}
	}

	return tx.Commit()
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
