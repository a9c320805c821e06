// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mackney/gazette-engine/internal/archive"
	"github.com/mackney/gazette-engine/internal/pipeline"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Maintain and search the article index",
	Long: `Archive maintains a SQLite full-text index over the articles store.
The CSV store stays the source of truth; index rebuilds from it and search
serves read-only queries.`,
}

// --- index subcommand ---

var archiveIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest the articles store into the index",
	Long: `Index upserts every record of the articles store into the SQLite
database. Re-running over an unchanged store changes nothing.`,
	RunE: runArchiveIndex,
}

func runArchiveIndex(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")

	store, err := archive.NewStore(dataDir, 0)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Index(cmd.Context(), pipeline.ArticlesPath(dataDir), os.Stdout)
	return err
}

// --- search subcommand ---

var archiveSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed articles",
	Long: `Search queries the article index with FTS5 full-text search over
title, body, and summary, optionally filtered by category and author.
Full-text results are ranked by relevance; filter-only queries come back
newest first.`,
	RunE: runArchiveSearch,
}

func runArchiveSearch(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	category, _ := cmd.Flags().GetString("category")
	author, _ := cmd.Flags().GetString("author")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	query := strings.Join(args, " ")
	if query == "" && category == "" && author == "" {
		return fmt.Errorf("query or filter required: provide search terms, --category, or --author")
	}

	store, err := archive.NewStore(dataDir, 0)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(cmd.Context(), archive.QueryOptions{
		Query:      query,
		Category:   category,
		Author:     author,
		MaxResults: limit,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-12s  %-40s  %-14s  %s\n",
		"ID", "Category", "Title", "Author", "Updated")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, a := range results {
		title := a.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-12s  %-40s  %-14s  %s\n",
			a.ArticleID, a.Category, title, a.Author, a.LastUpdated)
	}
	return nil
}

func init() {
	archiveIndexCmd.Flags().String("data-dir", "data", "data directory holding articles.csv and the index")

	archiveSearchCmd.Flags().String("data-dir", "data", "data directory holding the index")
	archiveSearchCmd.Flags().String("category", "", "filter by article category")
	archiveSearchCmd.Flags().String("author", "", "filter by author name")
	archiveSearchCmd.Flags().Int("limit", 0, "maximum results (0 uses the store default)")
	archiveSearchCmd.Flags().Bool("json", false, "emit results as JSON")

	archiveCmd.AddCommand(archiveIndexCmd)
	archiveCmd.AddCommand(archiveSearchCmd)
	rootCmd.AddCommand(archiveCmd)
}
