// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyQuery is returned by Search for a blank query.
var ErrEmptyQuery = errors.New("empty search query")

// Conversion is one recorded conversion.
type Conversion struct {
	ID          string    `json:"id" yaml:"id"`
	Source      string    `json:"source" yaml:"source"`
	Output      string    `json:"output" yaml:"output"`
	Format      string    `json:"format" yaml:"format"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`
	Slides      int       `json:"slides" yaml:"slides"`
	Shapes      int       `json:"shapes" yaml:"shapes"`
	Bytes       int64     `json:"bytes" yaml:"bytes"`
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`

	// SlideTitles is filled by Export only.
	SlideTitles []string `json:"slide_titles,omitempty" yaml:"slide_titles,omitempty"`
}

// Hit is one slide matching a search.
type Hit struct {
	ConversionID string
	Source       string
	Output       string
	Slide        int
	SlideTitle   string

	// Snippet is matching text with terms wrapped in [ and ].
	Snippet string
}

func (s *Store) limit(n int) int {
	if n <= 0 {
		return s.maxResults
	}
	return n
}

// Search runs an FTS4 query over slide titles, text and notes. Newer
// conversions come first, then slides in order.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.source, c.output, slide_text.slide, slide_text.title,
			snippet(slide_text, '[', ']', '...', -1, 12)
		FROM slide_text
		JOIN conversions c ON c.id = slide_text.conversion_id
		WHERE slide_text MATCH ?
		ORDER BY c.converted_at DESC, CAST(slide_text.slide AS INTEGER)
		LIMIT ?`,
		query, s.limit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ConversionID, &h.Source, &h.Output, &h.Slide, &h.SlideTitle, &h.Snippet); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// History lists recorded conversions, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, output, format, title, slides, shapes, bytes, converted_at
		FROM conversions
		ORDER BY converted_at DESC, rowid DESC
		LIMIT ?`,
		s.limit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConversion(rows *sql.Rows) (Conversion, error) {
	var (
		c      Conversion
		format sql.NullString
		title  sql.NullString
		at     string
	)
	if err := rows.Scan(&c.ID, &c.Source, &c.Output, &format, &title,
		&c.Slides, &c.Shapes, &c.Bytes, &at); err != nil {
		return Conversion{}, fmt.Errorf("scanning row: %w", err)
	}
	c.Format = format.String
	c.Title = title.String

	t, err := time.Parse(timeLayout, at)
	if err != nil {
		return Conversion{}, fmt.Errorf("parsing converted_at %q: %w", at, err)
	}
	c.ConvertedAt = t
	return c, nil
}

func (s *Store) slideTitles(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title FROM slide_text WHERE conversion_id = ? ORDER BY CAST(slide AS INTEGER)`, id)
	if err != nil {
		return nil, fmt.Errorf("querying slide titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}
