package town

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mackney/gazette-engine/internal/catalog"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/pkg/types"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g := New(testCatalog(t), "en_GB", rng.New(seed))
	g.Clock = fixedClock
	return g
}

func TestGenerateUnknownTier(t *testing.T) {
	g := newTestGenerator(t, 1)
	_, err := g.Generate("Parp", "gigantic")
	if !errors.Is(err, catalog.ErrInvalidConfiguration) {
		t.Fatalf("unknown tier err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestGenerateCountsWithinTier(t *testing.T) {
	g := newTestGenerator(t, 7)
	town, err := g.Generate("Parp", "medium")
	if err != nil {
		t.Fatal(err)
	}

	tier, err := testCatalog(t).Tier("medium")
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name  string
		count int
		r     catalog.Range
	}{
		{"population", town.Population, tier.Population},
		{"streets", len(town.Streets), tier.Streets},
		{"businesses", len(town.Businesses), tier.Businesses},
		{"landmarks", len(town.Landmarks), tier.Landmarks},
		{"parks", len(town.Parks), tier.Parks},
		{"schools", len(town.Schools), tier.Schools},
		{"services", len(town.Services), tier.Services},
		{"events", len(town.Events), tier.Events},
	}
	for _, c := range checks {
		if c.count < c.r.Min || c.count > c.r.Max {
			t.Errorf("%s = %d, want within [%d,%d]", c.name, c.count, c.r.Min, c.r.Max)
		}
	}

	if town.Country != "United Kingdom" {
		t.Errorf("Country = %q, want United Kingdom", town.Country)
	}
	if town.SizeCategory != "medium" {
		t.Errorf("SizeCategory = %q", town.SizeCategory)
	}
}

func TestStreetReferentialConsistency(t *testing.T) {
	g := newTestGenerator(t, 99)
	town, err := g.Generate("Parp", "large")
	if err != nil {
		t.Fatal(err)
	}

	known := make(map[string]bool)
	for _, s := range town.Streets {
		known[s.Name] = true
	}

	for _, b := range town.Businesses {
		if !known[b.Street] {
			t.Errorf("business %q anchored to unknown street %q", b.Name, b.Street)
		}
	}
	for _, l := range town.Landmarks {
		if !known[l.Street] {
			t.Errorf("landmark %q anchored to unknown street %q", l.Name, l.Street)
		}
	}
	for _, s := range town.Schools {
		if !known[s.Street] {
			t.Errorf("school %q anchored to unknown street %q", s.Name, s.Street)
		}
	}
	for _, s := range town.Services {
		if !known[s.Street] {
			t.Errorf("service %q anchored to unknown street %q", s.Name, s.Street)
		}
	}
	for _, e := range town.Events {
		if !known[e.Street] {
			t.Errorf("event %q anchored to unknown street %q", e.Name, e.Street)
		}
	}
}

func TestGenerateDeterministicReplay(t *testing.T) {
	first, err := newTestGenerator(t, 42).Generate("Parp", "medium")
	if err != nil {
		t.Fatal(err)
	}
	second, err := newTestGenerator(t, 42).Generate("Parp", "medium")
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Streets) != len(second.Streets) {
		t.Errorf("street counts diverged: %d vs %d", len(first.Streets), len(second.Streets))
	}
	if len(first.Businesses) != len(second.Businesses) {
		t.Errorf("business counts diverged: %d vs %d", len(first.Businesses), len(second.Businesses))
	}
	if first.Streets[0].Name != second.Streets[0].Name {
		t.Errorf("first street diverged: %q vs %q", first.Streets[0].Name, second.Streets[0].Name)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("same seed did not replay a byte-identical town document")
	}
}

func TestSaveAndLoadJSON(t *testing.T) {
	g := newTestGenerator(t, 5)
	townData, err := g.Generate("", "small")
	if err != nil {
		t.Fatal(err)
	}
	if townData.Name == "" {
		t.Fatal("empty town name should have been synthesized")
	}

	path := filepath.Join(t.TempDir(), "data", "town_data.json")
	if err := SaveJSON(townData, path); err != nil {
		t.Fatal(err)
	}

	// No stray temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file was not cleaned up by rename")
	}

	loaded, err := LoadJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != townData.Name || len(loaded.Streets) != len(townData.Streets) {
		t.Error("loaded town does not match saved town")
	}
}

func TestNewspaperRoundTrip(t *testing.T) {
	g := newTestGenerator(t, 5)
	townData, err := g.Generate("Parp", "small")
	if err != nil {
		t.Fatal(err)
	}
	townData.Newspaper = &types.Newspaper{
		Name:                 "The Parp Gazette",
		Tagline:              "All the news that fits",
		FoundedYear:          1893,
		PublicationFrequency: "Daily",
	}

	path := filepath.Join(t.TempDir(), "town_data.json")
	if err := SaveJSON(townData, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Newspaper == nil || loaded.Newspaper.Name != "The Parp Gazette" {
		t.Error("newspaper metadata did not survive the round trip")
	}
}
