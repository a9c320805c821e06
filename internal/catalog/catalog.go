// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads and validates the weighted-table configuration that
// drives every generator: town size tiers, infrastructure type tables,
// street-naming components, demographic weight vectors, the temperament
// catalog, and article sampling parameters.
//
// The catalog is validated in a single pass at load time. A missing or
// malformed section fails fast with ErrInvalidConfiguration before any
// generation starts; generators never consult defaults at draw time.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/mackney/gazette-engine/pkg/types"
)

// ErrInvalidConfiguration indicates a missing or malformed catalog section.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Range is an inclusive [Min, Max] integer range for count draws.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r Range) valid() bool { return r.Min > 0 && r.Max >= r.Min }

// SizeTier maps a named town size to the count ranges for every
// infrastructure family.
type SizeTier struct {
	Population Range `yaml:"population"`
	Streets    Range `yaml:"streets"`
	Businesses Range `yaml:"businesses"`
	Landmarks  Range `yaml:"landmarks"`
	Parks      Range `yaml:"parks"`
	Schools    Range `yaml:"schools"`
	Services   Range `yaml:"services"`
	Events     Range `yaml:"events"`
}

// WeightedType pairs a subtype name with its draw weight. Tables are lists,
// not maps, so option order (and therefore the draw sequence under a fixed
// seed) is stable.
type WeightedType struct {
	Type   string  `yaml:"type"`
	Weight float64 `yaml:"weight"`
}

// NameComponents holds the word banks used by the naming templates.
type NameComponents struct {
	TreeNames           []string `yaml:"tree_names"`
	StreetPrefixes      []string `yaml:"street_prefixes"`
	DirectionalPrefixes []string `yaml:"directional_prefixes"`
	OrdinalPrefixes     []string `yaml:"ordinal_prefixes"`
	ParkPrefixes        []string `yaml:"park_prefixes"`

	BusinessAdjectives struct {
		Descriptive   []string `yaml:"descriptive"`
		LocationBased []string `yaml:"location_based"`
		SizeBased     []string `yaml:"size_based"`
		SpeedBased    []string `yaml:"speed_based"`
	} `yaml:"business_adjectives"`

	BusinessNouns struct {
		Restaurant []string `yaml:"restaurant"`
		Retail     []string `yaml:"retail"`
		Gas        []string `yaml:"gas"`
	} `yaml:"business_nouns"`

	FacilityTypes                []string `yaml:"facility_types"`
	HistoricalSignificanceLevels []string `yaml:"historical_significance_levels"`
	ClimateTypes                 []string `yaml:"climate_types"`
}

// AgeBand assigns one weight to an inclusive age interval.
type AgeBand struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// WeightBracket selects a weight vector by age. Brackets are evaluated in
// order; the first bracket whose MaxAge exceeds the age wins, and a zero
// MaxAge marks the open-ended final bracket. A vector shorter than the
// option list restricts the draw to the leading options (younger residents
// draw only from the lower education levels, for example).
type WeightBracket struct {
	MaxAge  int       `yaml:"max_age"`
	Weights []float64 `yaml:"weights"`
}

// SelectBracket returns the bracket covering age.
func SelectBracket(brackets []WeightBracket, age int) WeightBracket {
	for _, b := range brackets {
		if b.MaxAge > 0 && age < b.MaxAge {
			return b
		}
	}
	return brackets[len(brackets)-1]
}

// AgeConfig bounds the sampled age and shapes its distribution.
type AgeConfig struct {
	Min   int       `yaml:"min"`
	Max   int       `yaml:"max"`
	Bands []AgeBand `yaml:"bands"`
}

// WeightFor returns the distribution weight for one age. Validation
// guarantees every age in range is covered by a band.
func (a AgeConfig) WeightFor(age int) float64 {
	for _, b := range a.Bands {
		if age >= b.From && age <= b.To {
			return b.Weight
		}
	}
	return 1
}

// EducationConfig holds the ordered level list, the per-age-bracket weight
// vectors, and the base income each level anchors.
type EducationConfig struct {
	Levels     []string        `yaml:"levels"`
	Brackets   []WeightBracket `yaml:"brackets"`
	BaseIncome map[string]int  `yaml:"base_income"`
}

// EmploymentConfig holds the ordered status list and age-bracket vectors.
type EmploymentConfig struct {
	Statuses []string        `yaml:"statuses"`
	Brackets []WeightBracket `yaml:"brackets"`
}

// MaritalConfig holds the ordered status list and age-bracket vectors.
type MaritalConfig struct {
	Statuses []string        `yaml:"statuses"`
	Brackets []WeightBracket `yaml:"brackets"`
}

// IncomeConfig holds the branch constants of the income model.
type IncomeConfig struct {
	Minimum       int `yaml:"minimum"`
	UnemployedMax int `yaml:"unemployed_max"`
	RetiredMin    int `yaml:"retired_min"`
	RetiredMax    int `yaml:"retired_max"`
	PartTimeMin   int `yaml:"part_time_min"`
	PartTimeMax   int `yaml:"part_time_max"`

	PeakStart    int `yaml:"peak_start"`
	PeakEnd      int `yaml:"peak_end"`
	WorkingStart int `yaml:"working_start"`
	WorkingEnd   int `yaml:"working_end"`

	PeakMultiplier    float64 `yaml:"peak_multiplier"`
	NormalMultiplier  float64 `yaml:"normal_multiplier"`
	ReducedMultiplier float64 `yaml:"reduced_multiplier"`

	JitterMin float64 `yaml:"jitter_min"`
	JitterMax float64 `yaml:"jitter_max"`
}

// HouseholdBracket is an age-banded weighted choice among small household
// sizes.
type HouseholdBracket struct {
	MaxAge  int       `yaml:"max_age"`
	Options []int     `yaml:"options"`
	Weights []float64 `yaml:"weights"`
}

// Demographics groups all resident sampling tables.
type Demographics struct {
	Age        AgeConfig          `yaml:"age"`
	Education  EducationConfig    `yaml:"education"`
	Employment EmploymentConfig   `yaml:"employment"`
	Marital    MaritalConfig      `yaml:"marital"`
	Income     IncomeConfig       `yaml:"income"`
	Household  []HouseholdBracket `yaml:"household"`
}

// Adjustment is one conditional weight delta for temperament scoring. When
// is a symbolic condition: "<30", ">60", or "25-45" against age;
// "has_degree" or "advanced_degree" against education; any other string is
// a "|"-separated substring match against the relevant field.
type Adjustment struct {
	When  string  `yaml:"when"`
	Delta float64 `yaml:"delta"`
}

// TemperamentConfig holds the temperament catalog and the adjustment tables
// keyed by temperament name.
type TemperamentConfig struct {
	Catalog     []types.Temperament `yaml:"catalog"`
	Adjustments struct {
		Age        map[string][]Adjustment `yaml:"age"`
		Education  map[string][]Adjustment `yaml:"education"`
		Employment map[string][]Adjustment `yaml:"employment"`
	} `yaml:"adjustments"`
}

// FamilyGate is the independent Bernoulli gate and count cap for one town
// feature family.
type FamilyGate struct {
	Probability float64 `yaml:"probability"`
	MaxCount    int     `yaml:"max_count"`
}

// WeightedOption pairs a name with a draw weight (tone levels, age bands).
type WeightedOption struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// ArticleSeedConfig controls seed sampling: which town families and how many
// residents can appear in one article.
type ArticleSeedConfig struct {
	TownData struct {
		InclusionProbability float64 `yaml:"inclusion_probability"`
		FeatureWeights       struct {
			Streets    FamilyGate `yaml:"streets"`
			Landmarks  FamilyGate `yaml:"landmarks"`
			Businesses FamilyGate `yaml:"businesses"`
			Events     FamilyGate `yaml:"events"`
		} `yaml:"feature_weights"`
	} `yaml:"town_data"`

	PeopleData struct {
		InclusionProbability float64          `yaml:"inclusion_probability"`
		MinPeoplePerArticle  int              `yaml:"min_people_per_article"`
		MaxPeoplePerArticle  int              `yaml:"max_people_per_article"`
		AgeBands             []WeightedOption `yaml:"age_bands"`
	} `yaml:"people_data"`
}

// ArticlesConfig holds the editorial tables: categories, authors, tones,
// and the seed sampling parameters.
type ArticlesConfig struct {
	Categories []string          `yaml:"categories"`
	Authors    []types.Author    `yaml:"authors"`
	Tones      []WeightedOption  `yaml:"tones"`
	Seed       ArticleSeedConfig `yaml:"article_seed"`
}

// Catalog is the complete validated configuration.
type Catalog struct {
	TownSizes      map[string]SizeTier `yaml:"town_sizes"`
	StreetPatterns map[string][]string `yaml:"street_patterns"`
	BusinessTypes  []WeightedType      `yaml:"business_types"`
	LandmarkTypes  []string            `yaml:"landmark_types"`
	ParkTypes      []string            `yaml:"park_types"`
	SchoolTypes    []string            `yaml:"school_types"`
	ServiceTypes   []string            `yaml:"service_types"`
	EventTypes     []string            `yaml:"event_types"`
	CountryMapping map[string]string   `yaml:"country_mapping"`
	NameComponents NameComponents      `yaml:"name_components"`
	Demographics   Demographics        `yaml:"demographics"`
	Temperaments   TemperamentConfig   `yaml:"temperaments"`
	Articles       ArticlesConfig      `yaml:"articles"`
}

// Load reads and validates a catalog. An empty path loads the embedded
// defaults.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
		data = b
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: parsing catalog: %v", ErrInvalidConfiguration, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Tier returns the size tier for name. Unknown tiers are configuration
// errors so no partial town state is ever produced.
func (c *Catalog) Tier(name string) (SizeTier, error) {
	tier, ok := c.TownSizes[name]
	if !ok {
		return SizeTier{}, fmt.Errorf("%w: unknown size tier %q", ErrInvalidConfiguration, name)
	}
	return tier, nil
}

// StreetSuffixes returns the street suffix list for a locale, falling back
// to en_US when the locale has no pattern set.
func (c *Catalog) StreetSuffixes(locale string) []string {
	if p, ok := c.StreetPatterns[locale]; ok {
		return p
	}
	return c.StreetPatterns["en_US"]
}

// Country returns the country name for a locale, or "Unknown".
func (c *Catalog) Country(locale string) string {
	if country, ok := c.CountryMapping[locale]; ok {
		return country
	}
	return "Unknown"
}

// Validate checks every required section in one pass.
func (c *Catalog) Validate() error {
	for _, tier := range []string{"small", "medium", "large"} {
		t, ok := c.TownSizes[tier]
		if !ok {
			return fmt.Errorf("%w: town_sizes missing tier %q", ErrInvalidConfiguration, tier)
		}
		for name, r := range map[string]Range{
			"population": t.Population, "streets": t.Streets, "businesses": t.Businesses,
			"landmarks": t.Landmarks, "parks": t.Parks, "schools": t.Schools,
			"services": t.Services, "events": t.Events,
		} {
			if !r.valid() {
				return fmt.Errorf("%w: town_sizes.%s.%s range [%d,%d] is invalid", ErrInvalidConfiguration, tier, name, r.Min, r.Max)
			}
		}
	}

	if len(c.StreetPatterns["en_US"]) == 0 {
		return fmt.Errorf("%w: street_patterns must include en_US as the fallback locale", ErrInvalidConfiguration)
	}

	if len(c.BusinessTypes) == 0 {
		return fmt.Errorf("%w: business_types is empty", ErrInvalidConfiguration)
	}
	var totalWeight float64
	for _, bt := range c.BusinessTypes {
		if bt.Weight < 0 {
			return fmt.Errorf("%w: business type %q has negative weight", ErrInvalidConfiguration, bt.Type)
		}
		totalWeight += bt.Weight
	}
	if totalWeight == 0 {
		return fmt.Errorf("%w: business_types weights are all zero", ErrInvalidConfiguration)
	}

	for name, list := range map[string][]string{
		"landmark_types": c.LandmarkTypes, "park_types": c.ParkTypes,
		"school_types": c.SchoolTypes, "service_types": c.ServiceTypes,
		"event_types": c.EventTypes,
	} {
		if len(list) == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfiguration, name)
		}
	}

	if len(c.CountryMapping) == 0 {
		return fmt.Errorf("%w: country_mapping is empty", ErrInvalidConfiguration)
	}
	if err := c.NameComponents.validate(); err != nil {
		return err
	}
	if err := c.Demographics.validate(); err != nil {
		return err
	}
	if err := c.Temperaments.validate(); err != nil {
		return err
	}
	return c.Articles.validate()
}

func (n *NameComponents) validate() error {
	for name, list := range map[string][]string{
		"tree_names":                     n.TreeNames,
		"street_prefixes":                n.StreetPrefixes,
		"directional_prefixes":           n.DirectionalPrefixes,
		"ordinal_prefixes":               n.OrdinalPrefixes,
		"park_prefixes":                  n.ParkPrefixes,
		"business_adjectives.descriptive": n.BusinessAdjectives.Descriptive,
		"business_adjectives.location_based": n.BusinessAdjectives.LocationBased,
		"business_adjectives.size_based":  n.BusinessAdjectives.SizeBased,
		"business_adjectives.speed_based": n.BusinessAdjectives.SpeedBased,
		"business_nouns.restaurant":       n.BusinessNouns.Restaurant,
		"business_nouns.retail":           n.BusinessNouns.Retail,
		"business_nouns.gas":              n.BusinessNouns.Gas,
		"facility_types":                  n.FacilityTypes,
		"historical_significance_levels":  n.HistoricalSignificanceLevels,
		"climate_types":                   n.ClimateTypes,
	} {
		if len(list) == 0 {
			return fmt.Errorf("%w: name_components.%s is empty", ErrInvalidConfiguration, name)
		}
	}
	return nil
}

func (d *Demographics) validate() error {
	if d.Age.Min <= 0 || d.Age.Max < d.Age.Min {
		return fmt.Errorf("%w: demographics.age range [%d,%d] is invalid", ErrInvalidConfiguration, d.Age.Min, d.Age.Max)
	}
	if len(d.Age.Bands) == 0 {
		return fmt.Errorf("%w: demographics.age.bands is empty", ErrInvalidConfiguration)
	}
	for age := d.Age.Min; age <= d.Age.Max; age++ {
		covered := false
		for _, b := range d.Age.Bands {
			if age >= b.From && age <= b.To {
				covered = true
				break
			}
		}
		if !covered {
			return fmt.Errorf("%w: demographics.age.bands do not cover age %d", ErrInvalidConfiguration, age)
		}
	}

	if err := validateBrackets("education", d.Education.Brackets, len(d.Education.Levels)); err != nil {
		return err
	}
	if err := validateBrackets("employment", d.Employment.Brackets, len(d.Employment.Statuses)); err != nil {
		return err
	}
	if err := validateBrackets("marital", d.Marital.Brackets, len(d.Marital.Statuses)); err != nil {
		return err
	}

	for _, level := range d.Education.Levels {
		if _, ok := d.Education.BaseIncome[level]; !ok {
			return fmt.Errorf("%w: demographics.education.base_income missing level %q", ErrInvalidConfiguration, level)
		}
	}

	inc := d.Income
	if inc.JitterMin <= 0 || inc.JitterMax < inc.JitterMin {
		return fmt.Errorf("%w: demographics.income jitter bounds [%g,%g] are invalid", ErrInvalidConfiguration, inc.JitterMin, inc.JitterMax)
	}
	if inc.PeakMultiplier <= 0 || inc.NormalMultiplier <= 0 || inc.ReducedMultiplier <= 0 {
		return fmt.Errorf("%w: demographics.income multipliers must be positive", ErrInvalidConfiguration)
	}

	if len(d.Household) == 0 {
		return fmt.Errorf("%w: demographics.household is empty", ErrInvalidConfiguration)
	}
	for i, hb := range d.Household {
		if len(hb.Options) == 0 || len(hb.Options) != len(hb.Weights) {
			return fmt.Errorf("%w: demographics.household bracket %d has %d options for %d weights", ErrInvalidConfiguration, i, len(hb.Options), len(hb.Weights))
		}
	}
	return nil
}

func validateBrackets(section string, brackets []WeightBracket, options int) error {
	if options == 0 {
		return fmt.Errorf("%w: demographics.%s option list is empty", ErrInvalidConfiguration, section)
	}
	if len(brackets) == 0 {
		return fmt.Errorf("%w: demographics.%s.brackets is empty", ErrInvalidConfiguration, section)
	}
	last := brackets[len(brackets)-1]
	if last.MaxAge != 0 {
		return fmt.Errorf("%w: demographics.%s final bracket must be open-ended (max_age 0)", ErrInvalidConfiguration, section)
	}
	for i, b := range brackets {
		if len(b.Weights) == 0 || len(b.Weights) > options {
			return fmt.Errorf("%w: demographics.%s bracket %d has %d weights for %d options", ErrInvalidConfiguration, section, i, len(b.Weights), options)
		}
	}
	return nil
}

func (t *TemperamentConfig) validate() error {
	if len(t.Catalog) == 0 {
		return fmt.Errorf("%w: temperaments.catalog is empty", ErrInvalidConfiguration)
	}
	known := make(map[string]bool, len(t.Catalog))
	for _, temp := range t.Catalog {
		if temp.Type == "" {
			return fmt.Errorf("%w: temperament with empty type", ErrInvalidConfiguration)
		}
		known[temp.Type] = true
	}
	for table, adjustments := range map[string]map[string][]Adjustment{
		"age": t.Adjustments.Age, "education": t.Adjustments.Education, "employment": t.Adjustments.Employment,
	} {
		for name, adjs := range adjustments {
			if !known[name] {
				return fmt.Errorf("%w: temperaments.adjustments.%s references unknown temperament %q", ErrInvalidConfiguration, table, name)
			}
			for _, a := range adjs {
				if a.When == "" {
					return fmt.Errorf("%w: temperaments.adjustments.%s.%s has an empty condition", ErrInvalidConfiguration, table, name)
				}
			}
		}
	}
	return nil
}

func (a *ArticlesConfig) validate() error {
	if len(a.Categories) == 0 {
		return fmt.Errorf("%w: articles.categories is empty", ErrInvalidConfiguration)
	}
	if len(a.Authors) == 0 {
		return fmt.Errorf("%w: articles.authors is empty", ErrInvalidConfiguration)
	}
	for _, author := range a.Authors {
		if author.Name == "" {
			return fmt.Errorf("%w: author with empty name", ErrInvalidConfiguration)
		}
	}
	if len(a.Tones) == 0 {
		return fmt.Errorf("%w: articles.tones is empty", ErrInvalidConfiguration)
	}
	p := a.Seed.PeopleData
	if p.MinPeoplePerArticle <= 0 || p.MaxPeoplePerArticle < p.MinPeoplePerArticle {
		return fmt.Errorf("%w: articles.article_seed.people_data bounds [%d,%d] are invalid", ErrInvalidConfiguration, p.MinPeoplePerArticle, p.MaxPeoplePerArticle)
	}
	if len(p.AgeBands) == 0 {
		return fmt.Errorf("%w: articles.article_seed.people_data.age_bands is empty", ErrInvalidConfiguration)
	}
	return nil
}
