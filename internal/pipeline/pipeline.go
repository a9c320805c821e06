// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the generators, the synthesizer, and the stores
// into the two batch operations the CLI exposes: initializing a town with
// its resident cohort, and producing a daily batch of articles.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/mackney/gazette-engine/internal/article"
	"github.com/mackney/gazette-engine/internal/catalog"
	"github.com/mackney/gazette-engine/internal/people"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/internal/town"
	"github.com/mackney/gazette-engine/pkg/types"
)

const (
	townFile     = "town_data.json"
	peopleFile   = "people_data.csv"
	articlesFile = "articles.csv"
)

// TownPath returns the town dataset location under dataDir.
func TownPath(dataDir string) string { return filepath.Join(dataDir, townFile) }

// PeoplePath returns the resident dataset location under dataDir.
func PeoplePath(dataDir string) string { return filepath.Join(dataDir, peopleFile) }

// ArticlesPath returns the articles store location under dataDir.
func ArticlesPath(dataDir string) string { return filepath.Join(dataDir, articlesFile) }

// Clock supplies timestamps for article records. Tests pin it.
var Clock = time.Now

// InitTown generates a town and its resident cohort and persists both.
// The town is written before resident generation begins, so a cohort
// failure never leaves the data directory without a town.
func InitTown(cfg types.TownInitConfig, cat *catalog.Catalog, w io.Writer) (*types.Town, int, error) {
	r := rng.New(cfg.Town.Seed)

	locale := cfg.Town.Locale
	if locale == "" {
		locale = "en_US"
	}

	fmt.Fprintf(w, "generating %s town (locale %s)\n", cfg.Town.Size, locale)

	generator := town.New(cat, locale, r)
	t, err := generator.Generate(cfg.Town.Name, cfg.Town.Size)
	if err != nil {
		return nil, 0, fmt.Errorf("generating town: %w", err)
	}
	t.Newspaper = cfg.Newspaper

	townPath := TownPath(cfg.DataDir)
	if err := town.SaveJSON(t, townPath); err != nil {
		return nil, 0, fmt.Errorf("saving town: %w", err)
	}
	fmt.Fprintf(w, "town %s (population %d) written to %s\n", t.Name, t.Population, townPath)

	count := int(float64(t.Population) * cfg.Population.ScaleFactor)
	if count < cfg.Population.MinPeople {
		count = cfg.Population.MinPeople
	}

	fmt.Fprintf(w, "generating %d residents\n", count)

	peopleGen := people.New(cat, locale, r)
	peopleGen.AnchorTown(t)
	cohort, err := peopleGen.GenerateDataset(count)
	if err != nil {
		return nil, 0, fmt.Errorf("generating residents: %w", err)
	}

	peoplePath := PeoplePath(cfg.DataDir)
	if err := people.SaveCSV(cohort, peoplePath); err != nil {
		return nil, 0, fmt.Errorf("saving residents: %w", err)
	}
	fmt.Fprintf(w, "%d residents written to %s\n", len(cohort), peoplePath)

	return t, len(cohort), nil
}

// RunDaily produces the configured number of articles. Each article is
// sampled, synthesized, and appended independently; a synthesis failure
// downgrades that article to the placeholder draft, and a store failure
// skips the article without aborting the batch.
func RunDaily(ctx context.Context, cfg types.DailyConfig, cat *catalog.Catalog, synth article.Synthesizer, w io.Writer) ([]types.Article, error) {
	count := cfg.Articles.Count
	if count <= 0 {
		return nil, fmt.Errorf("%w: article count must be positive, got %d", types.ErrInvalidArgument, count)
	}

	store := article.NewStore(ArticlesPath(cfg.DataDir))

	if cfg.Articles.SaveOptions.BackupBeforeSave {
		if err := store.Backup(); err != nil {
			return nil, fmt.Errorf("backing up articles store: %w", err)
		}
		fmt.Fprintf(w, "backed up articles store to %s.bak\n", store.Path())
	}

	// Missing datasets degrade the corresponding seed family rather than
	// failing the batch.
	townData, err := article.LoadTown(TownPath(cfg.DataDir))
	if err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
	residents, err := article.LoadPeople(PeoplePath(cfg.DataDir))
	if err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}

	sampler := article.NewSampler(cat, rng.New(cfg.Seed))

	var generated []types.Article
	var last time.Time
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return generated, ctx.Err()
		default:
		}

		fmt.Fprintf(w, "\n=== generating article %d of %d ===\n", i+1, count)

		// IDs derive from wall-clock seconds, so two articles in the same
		// second would collide. Nudge the stamp forward instead of sleeping.
		now := Clock()
		if !now.After(last) {
			now = last.Add(time.Second)
		}
		last = now

		a, err := generateOne(ctx, sampler, synth, townData, residents, now, w)
		if err != nil {
			fmt.Fprintf(w, "error generating article %d: %v\n", i+1, err)
			continue
		}

		if err := store.Append(article.Record(a), w); err != nil {
			fmt.Fprintf(w, "error saving article %d: %v\n", i+1, err)
			continue
		}

		fmt.Fprintf(w, "created article %s\n", a.ArticleID)
		generated = append(generated, a)
	}

	fmt.Fprintf(w, "\ngenerated %d of %d articles\n", len(generated), count)

	if limit := cfg.Articles.SaveOptions.ArticleLimit; limit > 0 {
		if err := store.Prune(limit, w); err != nil {
			fmt.Fprintf(w, "error pruning articles store: %v\n", err)
		}
	}

	return generated, nil
}

// generateOne samples a seed and synthesizes its draft. Synthesis failure
// is recovered with the placeholder draft so the record still lands.
func generateOne(ctx context.Context, sampler *article.Sampler, synth article.Synthesizer, townData *types.Town, residents []types.Person, now time.Time, w io.Writer) (types.Article, error) {
	seed, err := sampler.NewSeed(townData, residents, w)
	if err != nil {
		return types.Article{}, fmt.Errorf("sampling seed: %w", err)
	}

	draft, err := synth.Synthesize(ctx, seed)
	if err != nil {
		fmt.Fprintf(w, "synthesis failed, using placeholder: %v\n", err)
		draft = article.PlaceholderDraft(seed.Category)
	}

	return article.Compose(seed, draft, now), nil
}
