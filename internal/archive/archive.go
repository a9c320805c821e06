// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive maintains a SQLite full-text index over the articles
// store. The CSV file stays the source of truth; the index is rebuilt
// from it and serves read-side search only.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mackney/gazette-engine/internal/article"
	"github.com/mackney/gazette-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "gazette.db"
)

// Store manages the article index SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the index database at dataDir/index/gazette.db,
// creating the schema when absent.
func NewStore(dataDir string, maxResults int) (*Store, error) {
	dbDir := filepath.Join(dataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			article_id TEXT NOT NULL UNIQUE,
			title TEXT,
			slug TEXT,
			body TEXT,
			summary TEXT,
			publication_date TEXT,
			last_updated TEXT,
			author TEXT,
			category TEXT,
			status TEXT,
			story_status TEXT,
			seriousness TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_author ON articles(author)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='articles_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE articles_fts USING fts5(title, body, summary, content=articles, content_rowid=rowid)`,
			`CREATE TRIGGER articles_ai AFTER INSERT ON articles BEGIN
				INSERT INTO articles_fts(rowid, title, body, summary) VALUES (new.rowid, new.title, new.body, new.summary);
			END`,
			`CREATE TRIGGER articles_ad AFTER DELETE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, body, summary) VALUES('delete', old.rowid, old.title, old.body, old.summary);
			END`,
			`CREATE TRIGGER articles_au AFTER UPDATE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, body, summary) VALUES('delete', old.rowid, old.title, old.body, old.summary);
				INSERT INTO articles_fts(rowid, title, body, summary) VALUES (new.rowid, new.title, new.body, new.summary);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				if strings.Contains(err.Error(), "no such module: fts5") {
					return fmt.Errorf("creating FTS infrastructure: %w (rebuild with -tags sqlite_fts5)", err)
				}
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IndexSummary holds counts from one indexing run.
type IndexSummary struct {
	Indexed int
	Updated int
}

// Index ingests the articles CSV into the database. Records are upserted
// by article_id, so re-running over the same file changes nothing.
func (s *Store) Index(ctx context.Context, csvPath string, w io.Writer) (IndexSummary, error) {
	rows, err := article.NewStore(csvPath).Load()
	if err != nil {
		return IndexSummary{}, fmt.Errorf("loading articles store: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (article_id, title, slug, body, summary,
			publication_date, last_updated, author, category, status,
			story_status, seriousness)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(article_id) DO UPDATE SET
			title=excluded.title, slug=excluded.slug, body=excluded.body,
			summary=excluded.summary, publication_date=excluded.publication_date,
			last_updated=excluded.last_updated, author=excluded.author,
			category=excluded.category, status=excluded.status,
			story_status=excluded.story_status, seriousness=excluded.seriousness`)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	var summary IndexSummary
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		a := article.FromRecord(row)
		if a.ArticleID == "" {
			continue
		}

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM articles WHERE article_id = ?`, a.ArticleID,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking article %s: %w", a.ArticleID, err)
		}

		if _, err := stmt.ExecContext(ctx,
			a.ArticleID, a.Title, a.Slug, a.Body, a.Summary,
			a.PublicationDate, a.LastUpdated, a.Author, a.Category,
			a.Status, a.StoryStatus, a.Seriousness,
		); err != nil {
			return summary, fmt.Errorf("indexing article %s: %w", a.ArticleID, err)
		}

		if exists > 0 {
			summary.Updated++
		} else {
			summary.Indexed++
			fmt.Fprintf(w, "indexing %s (%s)\n", a.ArticleID, a.Title)
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing index: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d\n", summary.Indexed, summary.Updated)
	return summary, nil
}

// QueryOptions holds parameters for article index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title, body, summary.
	Query string

	// Category filters by article category.
	Category string

	// Author filters by author name.
	Author string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Search queries the index. Full-text queries return results ranked by
// relevance; structured-only queries come back newest first.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.Article, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT a.article_id, a.title, a.slug, a.body, a.summary,
				a.publication_date, a.last_updated, a.author, a.category,
				a.status, a.story_status, a.seriousness
			FROM articles_fts
			JOIN articles a ON a.rowid = articles_fts.rowid
			WHERE articles_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT a.article_id, a.title, a.slug, a.body, a.summary,
				a.publication_date, a.last_updated, a.author, a.category,
				a.status, a.story_status, a.seriousness
			FROM articles a
			WHERE 1=1`)
	}

	if opts.Category != "" {
		qb.WriteString(` AND a.category = ?`)
		args = append(args, opts.Category)
	}
	if opts.Author != "" {
		qb.WriteString(` AND a.author = ?`)
		args = append(args, opts.Author)
	}

	if useFTS {
		qb.WriteString(` ORDER BY articles_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.last_updated DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying article index: %w", err)
	}
	defer rows.Close()

	var results []types.Article
	for rows.Next() {
		var a types.Article
		if err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Slug, &a.Body, &a.Summary,
			&a.PublicationDate, &a.LastUpdated, &a.Author, &a.Category,
			&a.Status, &a.StoryStatus, &a.Seriousness,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, a)
	}

	return results, rows.Err()
}
