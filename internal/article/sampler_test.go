// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mackney/gazette-engine/internal/catalog"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/pkg/types"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

func testTown() *types.Town {
	return &types.Town{
		Name:       "Parp",
		Population: 4200,
		Streets: []types.Street{
			{Name: "Elm Lane", Type: types.StreetResidential},
			{Name: "Harbor Road", Type: types.StreetCommercial},
			{Name: "Mill Street", Type: types.StreetMixed},
			{Name: "Station Way", Type: types.StreetIndustrial},
		},
		Landmarks: []types.Landmark{
			{Name: "Old Town Hall", Type: "Historic Building", Street: "Mill Street"},
			{Name: "St. Agnes's Church", Type: "Church", Street: "Elm Lane"},
		},
		Businesses: []types.Business{
			{Name: "The Rusty Spoon", Type: "Restaurant/Café", Street: "Harbor Road"},
			{Name: "Harbor Books", Type: "Retail Store", Street: "Harbor Road"},
			{Name: "Mill Garage", Type: "Auto Repair Shop", Street: "Mill Street"},
		},
		Events: []types.Event{
			{Name: "Parp Summer Festival", Type: "Festival", Street: "Mill Street", Date: "2026-07-12"},
		},
	}
}

func testResidents(ages ...int) []types.Person {
	residents := make([]types.Person, len(ages))
	for i, age := range ages {
		residents[i] = types.Person{ID: string(rune('a' + i)), FirstName: "Res", LastName: "Ident", Age: age}
	}
	return residents
}

func TestNewSeedAlwaysHasEditorialFields(t *testing.T) {
	s := NewSampler(testCatalog(t), rng.New(17))
	for i := 0; i < 50; i++ {
		seed, err := s.NewSeed(testTown(), testResidents(25, 44, 63, 80), io.Discard)
		require.NoError(t, err)
		assert.NotEmpty(t, seed.Category)
		assert.NotEmpty(t, seed.Author.Name)
		assert.NotEmpty(t, seed.Seriousness)
	}
}

func TestNewSeedRespectsFamilyCaps(t *testing.T) {
	cat := testCatalog(t)
	gates := &cat.Articles.Seed.TownData
	gates.InclusionProbability = 1
	gates.FeatureWeights.Streets.Probability = 1
	gates.FeatureWeights.Landmarks.Probability = 1
	gates.FeatureWeights.Businesses.Probability = 1
	gates.FeatureWeights.Events.Probability = 1

	s := NewSampler(cat, rng.New(3))
	town := testTown()

	for i := 0; i < 30; i++ {
		seed, err := s.NewSeed(town, nil, io.Discard)
		require.NoError(t, err)

		assert.True(t, seed.HasTownContext())
		assert.Equal(t, "Parp", seed.TownName)
		assert.LessOrEqual(t, len(seed.TownFeatures.Streets), gates.FeatureWeights.Streets.MaxCount)
		assert.LessOrEqual(t, len(seed.TownFeatures.Landmarks), gates.FeatureWeights.Landmarks.MaxCount)
		assert.LessOrEqual(t, len(seed.TownFeatures.Businesses), gates.FeatureWeights.Businesses.MaxCount)
		assert.LessOrEqual(t, len(seed.TownFeatures.Events), gates.FeatureWeights.Events.MaxCount)
		// The event family has a single candidate; a passed gate samples it.
		assert.Len(t, seed.TownFeatures.Events, 1)
	}
}

func TestNewSeedDegradesWithoutSources(t *testing.T) {
	cat := testCatalog(t)
	cat.Articles.Seed.TownData.InclusionProbability = 1
	cat.Articles.Seed.PeopleData.InclusionProbability = 1

	s := NewSampler(cat, rng.New(5))
	seed, err := s.NewSeed(nil, nil, io.Discard)
	require.NoError(t, err)

	assert.False(t, seed.HasTownContext())
	assert.Empty(t, seed.TownName)
	assert.Empty(t, seed.People)
}

func TestSamplePeopleFiltersByAgeBand(t *testing.T) {
	cat := testCatalog(t)
	ppl := &cat.Articles.Seed.PeopleData
	ppl.InclusionProbability = 1
	ppl.MinPeoplePerArticle = 2
	ppl.MaxPeoplePerArticle = 2
	ppl.AgeBands = []catalog.WeightedOption{{Name: "71+", Weight: 1}}

	cat.Articles.Seed.TownData.InclusionProbability = 0

	s := NewSampler(cat, rng.New(8))
	residents := testResidents(22, 35, 71, 74, 90, 68)

	for i := 0; i < 20; i++ {
		seed, err := s.NewSeed(nil, residents, io.Discard)
		require.NoError(t, err)
		require.Len(t, seed.People, 2)
		for _, p := range seed.People {
			assert.GreaterOrEqual(t, p.Age, 71)
		}
	}
}

func TestSamplePeopleEmptyFilterMeansNobody(t *testing.T) {
	cat := testCatalog(t)
	cat.Articles.Seed.TownData.InclusionProbability = 0
	ppl := &cat.Articles.Seed.PeopleData
	ppl.InclusionProbability = 1
	ppl.AgeBands = []catalog.WeightedOption{{Name: "71+", Weight: 1}}

	s := NewSampler(cat, rng.New(8))
	seed, err := s.NewSeed(nil, testResidents(20, 30, 40), io.Discard)
	require.NoError(t, err)
	assert.Empty(t, seed.People)
}

func TestPickAuthorPrefersSpecialists(t *testing.T) {
	cat := testCatalog(t)
	cat.Articles.Authors = []types.Author{
		{Name: "Specialist", Specialties: []string{"Local News"}},
		{Name: "Generalist A"},
		{Name: "Generalist B"},
		{Name: "Generalist C"},
	}

	s := NewSampler(cat, rng.New(12))
	picked := 0
	const draws = 1000
	for i := 0; i < draws; i++ {
		if s.pickAuthor("Local News").Name == "Specialist" {
			picked++
		}
	}

	// Expected rate is 0.7 + 0.3/4 = 0.775; anything clearly above uniform
	// confirms the bias without flaking.
	assert.Greater(t, picked, draws/2)
}

func TestPickAuthorUniformWithoutSpecialists(t *testing.T) {
	cat := testCatalog(t)
	cat.Articles.Authors = []types.Author{
		{Name: "A"}, {Name: "B"},
	}
	s := NewSampler(cat, rng.New(2))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[s.pickAuthor("Obituaries").Name] = true
	}
	assert.Len(t, seen, 2)
}

func TestParseAgeBand(t *testing.T) {
	cases := []struct {
		band   string
		lo, hi int
		ok     bool
	}{
		{"18-30", 18, 30, true},
		{"31-50", 31, 50, true},
		{"71+", 71, int(^uint(0) >> 1), true},
		{"everyone", 0, 0, false},
		{"x-y", 0, 0, false},
	}
	for _, tc := range cases {
		lo, hi, ok := parseAgeBand(tc.band)
		assert.Equal(t, tc.ok, ok, tc.band)
		if tc.ok {
			assert.Equal(t, tc.lo, lo, tc.band)
			assert.Equal(t, tc.hi, hi, tc.band)
		}
	}
}

func TestCompose(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	seed := types.ArticleSeed{
		Category:    "Local News",
		Author:      types.Author{Name: "June Harper", Persona: "Veteran reporter", WritingStyle: "Dry"},
		Seriousness: "Serious",
	}

	a := Compose(seed, PlaceholderDraft(seed.Category), now)

	assert.Equal(t, "ART-20260314092653", a.ArticleID)
	assert.Equal(t, "Placeholder Title for Local News Article", a.Title)
	assert.Equal(t, "placeholder-title-for-local-news-article", a.Slug)
	assert.Equal(t, "2026-03-14", a.PublicationDate)
	assert.Equal(t, "2026-03-14 09:26:53", a.LastUpdated)
	assert.Equal(t, "June Harper", a.Author)
	assert.Equal(t, "Draft", a.Status)
	assert.Equal(t, "Ongoing", a.StoryStatus)
	assert.Equal(t, "Serious", a.Seriousness)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Placeholder Title for Sports Article": "placeholder-title-for-sports-article",
		"Mayor's Race Heats Up!":               "mayor-s-race-heats-up",
		"  Spaced   Out  ":                     "spaced-out",
		"":                                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}
