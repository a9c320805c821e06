// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mackney/gazette-engine/internal/article"
	"github.com/mackney/gazette-engine/pkg/types"
)

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	store, err := NewStore(tmpDir, 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func writeArticles(t *testing.T, tmpDir string, articles ...types.Article) string {
	t.Helper()
	path := filepath.Join(tmpDir, "articles.csv")
	csvStore := article.NewStore(path)
	for _, a := range articles {
		if err := csvStore.Append(article.Record(a), io.Discard); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func sampleArticles() []types.Article {
	return []types.Article{
		{
			ArticleID:       "ART-20260301090000",
			Title:           "Harvest Festival Draws Record Crowd",
			Slug:            "harvest-festival-draws-record-crowd",
			Body:            "The annual harvest festival on Mill Street brought hundreds of visitors.",
			Summary:         "Festival attendance breaks records.",
			PublicationDate: "2026-03-01",
			LastUpdated:     "2026-03-01 09:00:00",
			Author:          "June Harper",
			Category:        "Community",
			Status:          "Draft",
			StoryStatus:     "Ongoing",
			Seriousness:     "Light",
		},
		{
			ArticleID:       "ART-20260302100000",
			Title:           "Council Debates Road Repairs",
			Slug:            "council-debates-road-repairs",
			Body:            "Potholes on Harbor Road dominated the council meeting agenda.",
			Summary:         "Road repair budget contested.",
			PublicationDate: "2026-03-02",
			LastUpdated:     "2026-03-02 10:00:00",
			Author:          "Tom Weller",
			Category:        "Local News",
			Status:          "Draft",
			StoryStatus:     "Ongoing",
			Seriousness:     "Serious",
		},
	}
}

func TestIndexAndSearch(t *testing.T) {
	store, tmpDir := testSetup(t)
	csvPath := writeArticles(t, tmpDir, sampleArticles()...)

	summary, err := store.Index(context.Background(), csvPath, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 2 {
		t.Fatalf("Indexed = %d, want 2", summary.Indexed)
	}

	// Search by body text.
	results, err := store.Search(context.Background(), QueryOptions{Query: "potholes"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ArticleID != "ART-20260302100000" {
		t.Errorf("ArticleID = %s, want ART-20260302100000", results[0].ArticleID)
	}

	// Search by title text.
	results, err = store.Search(context.Background(), QueryOptions{Query: "harvest"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Category != "Community" {
		t.Fatalf("harvest search results = %+v", results)
	}
}

func TestIndexIdempotent(t *testing.T) {
	store, tmpDir := testSetup(t)
	csvPath := writeArticles(t, tmpDir, sampleArticles()...)

	if _, err := store.Index(context.Background(), csvPath, io.Discard); err != nil {
		t.Fatal(err)
	}
	summary, err := store.Index(context.Background(), csvPath, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	if summary.Indexed != 0 || summary.Updated != 2 {
		t.Errorf("second run: indexed %d updated %d, want 0 and 2", summary.Indexed, summary.Updated)
	}

	results, err := store.Search(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("got %d indexed articles after re-run, want 2", len(results))
	}
}

func TestSearchFilters(t *testing.T) {
	store, tmpDir := testSetup(t)
	csvPath := writeArticles(t, tmpDir, sampleArticles()...)
	if _, err := store.Index(context.Background(), csvPath, io.Discard); err != nil {
		t.Fatal(err)
	}

	results, err := store.Search(context.Background(), QueryOptions{Category: "Local News"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Author != "Tom Weller" {
		t.Fatalf("category filter results = %+v", results)
	}

	results, err = store.Search(context.Background(), QueryOptions{Author: "June Harper"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Category != "Community" {
		t.Fatalf("author filter results = %+v", results)
	}

	// Structured-only queries come back newest first.
	results, err = store.Search(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || results[0].ArticleID != "ART-20260302100000" {
		t.Fatalf("unfiltered results = %+v", results)
	}
}

func TestSearchMaxResults(t *testing.T) {
	store, tmpDir := testSetup(t)
	csvPath := writeArticles(t, tmpDir, sampleArticles()...)
	if _, err := store.Index(context.Background(), csvPath, io.Discard); err != nil {
		t.Fatal(err)
	}

	results, err := store.Search(context.Background(), QueryOptions{MaxResults: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results with MaxResults 1", len(results))
	}
}

func TestIndexMissingStore(t *testing.T) {
	store, tmpDir := testSetup(t)

	summary, err := store.Index(context.Background(), filepath.Join(tmpDir, "missing.csv"), io.Discard)
	if err != nil {
		t.Fatalf("missing store should index nothing, got error %v", err)
	}
	if summary.Indexed != 0 || summary.Updated != 0 {
		t.Errorf("summary = %+v, want zeros", summary)
	}
}

func TestNewStoreCreatesDatabaseFile(t *testing.T) {
	_, tmpDir := testSetup(t)

	if _, err := os.Stat(filepath.Join(tmpDir, indexDir, dbFile)); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
}
