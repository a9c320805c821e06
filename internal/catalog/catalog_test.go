package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded defaults: %v", err)
	}

	for _, tier := range []string{"small", "medium", "large"} {
		if _, err := c.Tier(tier); err != nil {
			t.Errorf("Tier(%q): %v", tier, err)
		}
	}
	if _, err := c.Tier("gigantic"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Tier(gigantic) err = %v, want ErrInvalidConfiguration", err)
	}

	if got := c.Country("en_GB"); got != "United Kingdom" {
		t.Errorf("Country(en_GB) = %q", got)
	}
	if got := c.Country("xx_XX"); got != "Unknown" {
		t.Errorf("Country(xx_XX) = %q, want Unknown", got)
	}

	if len(c.StreetSuffixes("fr_FR")) == 0 {
		t.Error("StreetSuffixes should fall back to en_US for unpatterned locales")
	}

	if len(c.Demographics.Education.Levels) != 8 {
		t.Errorf("education levels = %d, want 8", len(c.Demographics.Education.Levels))
	}
	if len(c.Temperaments.Catalog) != 12 {
		t.Errorf("temperament catalog = %d, want 12", len(c.Temperaments.Catalog))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load of missing file should error")
	}
}

// dropSection re-marshals the default catalog with one top-level section
// removed, so each required section can be exercised independently.
func dropSection(t *testing.T, section string) string {
	t.Helper()

	var doc map[string]any
	if err := yaml.Unmarshal(defaultCatalog, &doc); err != nil {
		t.Fatal(err)
	}
	delete(doc, section)

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFailsFastOnMissingSection(t *testing.T) {
	sections := []string{
		"town_sizes", "street_patterns", "business_types", "landmark_types",
		"park_types", "school_types", "service_types", "event_types",
		"country_mapping", "name_components", "demographics", "temperaments",
		"articles",
	}
	for _, section := range sections {
		t.Run(section, func(t *testing.T) {
			path := dropSection(t, section)
			_, err := Load(path)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("Load without %s err = %v, want ErrInvalidConfiguration", section, err)
			}
		})
	}
}

func TestValidateRejectsZeroBusinessWeights(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	for i := range c.BusinessTypes {
		c.BusinessTypes[i].Weight = 0
	}
	if err := c.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("all-zero business weights err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestValidateRejectsUnknownTemperamentAdjustment(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	c.Temperaments.Adjustments.Age["Grumpy"] = []Adjustment{{When: "<30", Delta: 0.5}}
	err = c.Validate()
	if !errors.Is(err, ErrInvalidConfiguration) || !strings.Contains(err.Error(), "Grumpy") {
		t.Fatalf("unknown temperament adjustment err = %v", err)
	}
}

func TestValidateRejectsOpenFinalBracketViolation(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	last := len(c.Demographics.Employment.Brackets) - 1
	c.Demographics.Employment.Brackets[last].MaxAge = 80
	if err := c.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("closed final bracket err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestSelectBracket(t *testing.T) {
	brackets := []WeightBracket{
		{MaxAge: 25, Weights: []float64{1}},
		{MaxAge: 40, Weights: []float64{2}},
		{MaxAge: 0, Weights: []float64{3}},
	}
	tests := []struct {
		age  int
		want float64
	}{
		{18, 1}, {24, 1}, {25, 2}, {39, 2}, {40, 3}, {99, 3},
	}
	for _, tt := range tests {
		got := SelectBracket(brackets, tt.age)
		if got.Weights[0] != tt.want {
			t.Errorf("SelectBracket(age=%d) picked weights %v, want leading %g", tt.age, got.Weights, tt.want)
		}
	}
}

func TestAgeWeightFor(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	age := c.Demographics.Age
	if got := age.WeightFor(40); got != 3 {
		t.Errorf("WeightFor(40) = %g, want 3 (working age)", got)
	}
	if got := age.WeightFor(20); got != 2 {
		t.Errorf("WeightFor(20) = %g, want 2", got)
	}
	if got := age.WeightFor(90); got != 1 {
		t.Errorf("WeightFor(90) = %g, want 1", got)
	}
}
