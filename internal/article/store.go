// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mackney/gazette-engine/pkg/types"
)

// Columns is the canonical column set of the articles store, in write
// order. Migration reorders drifted files to match.
var Columns = []string{
	"article_id", "title", "slug", "body", "summary",
	"publication_date", "last_updated", "author",
	"author_persona", "author_style", "category",
	"status", "story_status", "seriousness",
}

// Store is the append-only tabular articles store. A write normally
// appends one row; when the on-disk header has drifted from the canonical
// column set, the store backs the file up, migrates it, and then appends.
type Store struct {
	path string
}

// NewStore creates a store over the given CSV path. The file need not
// exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file location.
func (s *Store) Path() string { return s.path }

// Append writes one record. Progress lines (including migration notices)
// go to w.
func (s *Store) Append(record map[string]string, w io.Writer) error {
	rows, header, err := s.readAll()
	if os.IsNotExist(err) || (err == nil && len(header) == 0) {
		return s.writeFresh([]map[string]string{record})
	}
	if err != nil {
		return err
	}

	if !sameColumns(header, Columns) {
		fmt.Fprintf(w, "store structure changed, backing up to %s.bak and migrating\n", filepath.Base(s.path))
		if err := s.backupTo(s.path + ".bak"); err != nil {
			return err
		}
		// Old rows keep their values under the surviving columns; columns
		// they never had come back empty.
		if err := s.writeFresh(append(rows, record)); err != nil {
			return err
		}
		return nil
	}

	return s.appendRow(record)
}

// Backup copies the store file to <path>.bak, overwriting any previous
// backup. A missing store file is not an error.
func (s *Store) Backup() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return s.backupTo(s.path + ".bak")
}

// Load returns every record keyed by column name, in file order.
func (s *Store) Load() ([]map[string]string, error) {
	rows, _, err := s.readAll()
	if os.IsNotExist(err) {
		return nil, nil
	}
	return rows, err
}

// Prune keeps only the limit newest records by last_updated, rewriting the
// file. A non-positive limit or an under-limit store is a no-op.
func (s *Store) Prune(limit int, w io.Writer) error {
	if limit <= 0 {
		return nil
	}
	rows, _, err := s.readAll()
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(rows) <= limit {
		return nil
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return parseUpdated(rows[i]["last_updated"]).After(parseUpdated(rows[j]["last_updated"]))
	})
	rows = rows[:limit]

	if err := s.writeFresh(rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "pruned articles store to the %d most recent records\n", limit)
	return nil
}

func parseUpdated(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// readAll returns the records and the raw header. A missing file surfaces
// as os.IsNotExist on the returned error.
func (s *Store) readAll() ([]map[string]string, []string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing articles store %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

// writeFresh rewrites the whole store in canonical column order via a temp
// file and rename, so a crash never leaves a half-written store.
func (s *Store) writeFresh(rows []map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(Columns)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(rowValues(row))
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing articles store: %w", writeErr)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing articles store: %w", err)
	}
	return nil
}

func (s *Store) appendRow(record map[string]string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening articles store for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rowValues(record)); err != nil {
		return fmt.Errorf("appending article: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("appending article: %w", err)
	}
	return nil
}

func (s *Store) backupTo(dest string) error {
	src, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening store for backup: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copying store to backup: %w", err)
	}
	return nil
}

// Record flattens an article into the store's column map.
func Record(a types.Article) map[string]string {
	return map[string]string{
		"article_id":       a.ArticleID,
		"title":            a.Title,
		"slug":             a.Slug,
		"body":             a.Body,
		"summary":          a.Summary,
		"publication_date": a.PublicationDate,
		"last_updated":     a.LastUpdated,
		"author":           a.Author,
		"author_persona":   a.AuthorPersona,
		"author_style":     a.AuthorStyle,
		"category":         a.Category,
		"status":           a.Status,
		"story_status":     a.StoryStatus,
		"seriousness":      a.Seriousness,
	}
}

// FromRecord rebuilds an article from a store row. Unknown columns are
// ignored; missing ones come back empty.
func FromRecord(row map[string]string) types.Article {
	return types.Article{
		ArticleID:       row["article_id"],
		Title:           row["title"],
		Slug:            row["slug"],
		Body:            row["body"],
		Summary:         row["summary"],
		PublicationDate: row["publication_date"],
		LastUpdated:     row["last_updated"],
		Author:          row["author"],
		AuthorPersona:   row["author_persona"],
		AuthorStyle:     row["author_style"],
		Category:        row["category"],
		Status:          row["status"],
		StoryStatus:     row["story_status"],
		Seriousness:     row["seriousness"],
	}
}

func rowValues(row map[string]string) []string {
	values := make([]string, len(Columns))
	for i, col := range Columns {
		values[i] = row[col]
	}
	return values
}

func sameColumns(header, want []string) bool {
	if len(header) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}
	for _, c := range want {
		if !seen[c] {
			return false
		}
	}
	return true
}
