// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package article samples story seeds from the town and resident datasets,
// synthesizes prose for them, and persists the results in the append-only
// articles store.
package article

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mackney/gazette-engine/internal/catalog"
	"github.com/mackney/gazette-engine/internal/people"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/internal/town"
	"github.com/mackney/gazette-engine/pkg/types"
)

// ErrDataSourceUnavailable marks a town or people dataset that could not be
// read. Callers degrade the corresponding seed family to empty instead of
// failing the batch.
var ErrDataSourceUnavailable = errors.New("data source unavailable")

// specialistBias is the probability of drawing from the category's
// specialist authors when any exist.
const specialistBias = 0.7

// LoadTown reads the town dataset for seed sampling. Absence is reported
// through ErrDataSourceUnavailable so callers can continue without town
// context.
func LoadTown(path string) (*types.Town, error) {
	t, err := town.LoadJSON(path)
	if err != nil {
		return nil, fmt.Errorf("%w: town data: %v", ErrDataSourceUnavailable, err)
	}
	return t, nil
}

// LoadPeople reads the resident dataset for seed sampling. Absence is
// reported through ErrDataSourceUnavailable so callers can continue without
// resident context.
func LoadPeople(path string) ([]types.Person, error) {
	p, err := people.LoadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("%w: people data: %v", ErrDataSourceUnavailable, err)
	}
	return p, nil
}

// Sampler draws article seeds from the editorial tables and the available
// datasets.
type Sampler struct {
	cat *catalog.Catalog
	rng *rng.Context
}

// NewSampler creates a seed sampler sharing the given randomness context.
func NewSampler(cat *catalog.Catalog, r *rng.Context) *Sampler {
	return &Sampler{cat: cat, rng: r}
}

// NewSeed samples one article seed. A nil town or empty people slice leaves
// the corresponding family empty; every other draw follows the configured
// gates and caps. Progress lines go to w.
func (s *Sampler) NewSeed(townData *types.Town, residents []types.Person, w io.Writer) (types.ArticleSeed, error) {
	arts := s.cat.Articles

	category := rng.Pick(s.rng, arts.Categories)
	author := s.pickAuthor(category)
	tone, err := s.pickTone()
	if err != nil {
		return types.ArticleSeed{}, err
	}

	seed := types.ArticleSeed{
		Category:    category,
		Author:      author,
		Seriousness: tone,
	}

	fmt.Fprintf(w, "category: %s\n", category)
	fmt.Fprintf(w, "author: %s (%s)\n", author.Name, author.WritingStyle)
	fmt.Fprintf(w, "tone: %s\n", tone)

	if townData != nil && s.rng.Bernoulli(arts.Seed.TownData.InclusionProbability) {
		s.sampleTownFeatures(townData, &seed, w)
	}

	if len(residents) > 0 && s.rng.Bernoulli(arts.Seed.PeopleData.InclusionProbability) {
		if err := s.samplePeople(residents, &seed, w); err != nil {
			return types.ArticleSeed{}, err
		}
	}

	return seed, nil
}

// pickAuthor biases toward authors who list the category as a specialty.
// Without specialists the draw is uniform over all authors.
func (s *Sampler) pickAuthor(category string) types.Author {
	authors := s.cat.Articles.Authors

	var specialists []types.Author
	for _, a := range authors {
		for _, sp := range a.Specialties {
			if sp == category {
				specialists = append(specialists, a)
				break
			}
		}
	}

	if len(specialists) == 0 {
		return rng.Pick(s.rng, authors)
	}
	if s.rng.Bernoulli(specialistBias) {
		return rng.Pick(s.rng, specialists)
	}
	return rng.Pick(s.rng, authors)
}

func (s *Sampler) pickTone() (string, error) {
	tones := s.cat.Articles.Tones
	names := make([]string, len(tones))
	weights := make([]float64, len(tones))
	for i, t := range tones {
		names[i] = t.Name
		weights[i] = t.Weight
	}
	tone, err := rng.WeightedPick(s.rng, names, weights)
	if err != nil {
		return "", fmt.Errorf("sampling tone: %w", err)
	}
	return tone, nil
}

// sampleTownFeatures runs the per-family gates. Each family passes its own
// Bernoulli gate, then contributes up to max_count entries sampled without
// replacement.
func (s *Sampler) sampleTownFeatures(t *types.Town, seed *types.ArticleSeed, w io.Writer) {
	gates := s.cat.Articles.Seed.TownData.FeatureWeights

	seed.TownName = t.Name
	seed.TownPopulation = t.Population
	fmt.Fprintf(w, "town context: %s (population %d)\n", t.Name, t.Population)

	if s.rng.Bernoulli(gates.Streets.Probability) {
		seed.TownFeatures.Streets = rng.Sample(s.rng, t.Streets, gates.Streets.MaxCount)
		fmt.Fprintf(w, "  streets: %d\n", len(seed.TownFeatures.Streets))
	}
	if s.rng.Bernoulli(gates.Landmarks.Probability) {
		seed.TownFeatures.Landmarks = rng.Sample(s.rng, t.Landmarks, gates.Landmarks.MaxCount)
		fmt.Fprintf(w, "  landmarks: %d\n", len(seed.TownFeatures.Landmarks))
	}
	if s.rng.Bernoulli(gates.Businesses.Probability) {
		seed.TownFeatures.Businesses = rng.Sample(s.rng, t.Businesses, gates.Businesses.MaxCount)
		fmt.Fprintf(w, "  businesses: %d\n", len(seed.TownFeatures.Businesses))
	}
	if s.rng.Bernoulli(gates.Events.Probability) {
		seed.TownFeatures.Events = rng.Sample(s.rng, t.Events, gates.Events.MaxCount)
		fmt.Fprintf(w, "  events: %d\n", len(seed.TownFeatures.Events))
	}
}

// samplePeople draws a target headcount, narrows the cohort to a weighted
// age band, and samples without replacement from whoever remains. An empty
// filter result contributes nobody rather than widening the band.
func (s *Sampler) samplePeople(residents []types.Person, seed *types.ArticleSeed, w io.Writer) error {
	cfg := s.cat.Articles.Seed.PeopleData

	target := s.rng.IntBetween(cfg.MinPeoplePerArticle, cfg.MaxPeoplePerArticle)

	filtered := residents
	if len(cfg.AgeBands) > 0 {
		names := make([]string, len(cfg.AgeBands))
		weights := make([]float64, len(cfg.AgeBands))
		for i, b := range cfg.AgeBands {
			names[i] = b.Name
			weights[i] = b.Weight
		}
		band, err := rng.WeightedPick(s.rng, names, weights)
		if err != nil {
			return fmt.Errorf("sampling age band: %w", err)
		}
		fmt.Fprintf(w, "resident age band: %s\n", band)

		lo, hi, ok := parseAgeBand(band)
		if ok {
			filtered = nil
			for _, p := range residents {
				if p.Age >= lo && p.Age <= hi {
					filtered = append(filtered, p)
				}
			}
		}
	}

	if len(filtered) == 0 {
		fmt.Fprintln(w, "no residents matched the age band")
		return nil
	}

	seed.People = rng.Sample(s.rng, filtered, target)
	fmt.Fprintf(w, "residents sampled: %d of target %d\n", len(seed.People), target)
	return nil
}

// parseAgeBand understands "A-B" (inclusive) and "A+" band labels.
func parseAgeBand(band string) (lo, hi int, ok bool) {
	if strings.HasSuffix(band, "+") {
		n, err := strconv.Atoi(strings.TrimSuffix(band, "+"))
		if err != nil {
			return 0, 0, false
		}
		return n, int(^uint(0) >> 1), true
	}
	low, high, found := strings.Cut(band, "-")
	if !found {
		return 0, 0, false
	}
	l, err1 := strconv.Atoi(low)
	h, err2 := strconv.Atoi(high)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return l, h, true
}

// Compose assembles the final record from a seed and a synthesized draft.
// The ID derives from the timestamp so records created within the same
// batch stay distinguishable by their wall-clock second.
func Compose(seed types.ArticleSeed, draft types.Draft, now time.Time) types.Article {
	return types.Article{
		ArticleID:       "ART-" + now.Format("20060102150405"),
		Title:           draft.Title,
		Slug:            Slugify(draft.Title),
		Body:            draft.Body,
		Summary:         draft.Summary,
		PublicationDate: now.Format("2006-01-02"),
		LastUpdated:     now.Format("2006-01-02 15:04:05"),
		Author:          seed.Author.Name,
		AuthorPersona:   seed.Author.Persona,
		AuthorStyle:     seed.Author.WritingStyle,
		Category:        seed.Category,
		Status:          "Draft",
		StoryStatus:     "Ongoing",
		Seriousness:     seed.Seriousness,
	}
}

// Slugify lowercases a title and collapses everything outside [a-z0-9]
// into single dashes.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
