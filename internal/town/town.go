// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package town builds one town's full infrastructure graph from a size tier
// and locale. Streets are generated first; every dependent entity anchors to
// a generated street by name, so the referential invariant holds by
// construction. Generation is all-or-nothing: configuration problems are
// detected before the first draw and no partial town is ever surfaced.
package town

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/mackney/gazette-engine/internal/catalog"
	"github.com/mackney/gazette-engine/internal/namebank"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/pkg/types"
)

// Generator produces towns for one locale from a shared randomness context.
type Generator struct {
	cat    *catalog.Catalog
	bank   *namebank.Bank
	rng    *rng.Context
	locale string

	// Clock supplies generation timestamps. Tests pin it for byte-identical
	// output comparisons.
	Clock func() time.Time
}

// New creates a town generator. The randomness context is shared with any
// other generators in the same run so a single seed governs everything.
func New(cat *catalog.Catalog, locale string, r *rng.Context) *Generator {
	return &Generator{
		cat:    cat,
		bank:   namebank.New(locale, r),
		rng:    r,
		locale: locale,
		Clock:  time.Now,
	}
}

// Generate builds a complete town. An empty name synthesizes one from the
// locale's place-name bank. Unknown size tiers fail before any generation.
func (g *Generator) Generate(name, size string) (*types.Town, error) {
	tier, err := g.cat.Tier(size)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = g.bank.PlaceName()
	}

	population := g.rng.IntBetween(tier.Population.Min, tier.Population.Max)

	streets := g.generateStreets(tier)
	streetNames := make([]string, len(streets))
	for i, s := range streets {
		streetNames[i] = s.Name
	}

	t := &types.Town{
		ID:           newID(g.rng),
		Name:         name,
		Country:      g.cat.Country(g.locale),
		Locale:       g.locale,
		SizeCategory: size,
		Population:   population,
		Streets:      streets,
		Businesses:   g.generateBusinesses(tier, streetNames),
		Landmarks:    g.generateLandmarks(tier, streetNames),
		Parks:        g.generateParks(tier),
		Schools:      g.generateSchools(tier, streetNames),
		Services:     g.generateServices(tier, name, streetNames),
		Events:       g.generateEvents(tier, name, streetNames),
	}

	t.AreaSqKM = round2(float64(population) / float64(g.rng.IntBetween(100, 500)))
	t.FoundedYear = g.rng.IntBetween(1600, 1950)
	t.ElevationM = g.rng.IntBetween(0, 1500)
	t.Climate = rng.Pick(g.rng, g.cat.NameComponents.ClimateTypes)
	t.GeneratedAt = g.Clock()

	return t, nil
}

func (g *Generator) generateStreets(tier catalog.SizeTier) []types.Street {
	count := g.rng.IntBetween(tier.Streets.Min, tier.Streets.Max)
	streets := make([]types.Street, 0, count)
	for i := 0; i < count; i++ {
		streets = append(streets, types.Street{
			ID:       newID(g.rng),
			Name:     g.streetName(),
			Type:     rng.Pick(g.rng, types.StreetTypes),
			LengthKM: round2(g.rng.Float64Between(0.2, 2.5)),
		})
	}
	return streets
}

func (g *Generator) generateBusinesses(tier catalog.SizeTier, streets []string) []types.Business {
	count := g.rng.IntBetween(tier.Businesses.Min, tier.Businesses.Max)

	options := make([]string, len(g.cat.BusinessTypes))
	weights := make([]float64, len(g.cat.BusinessTypes))
	for i, bt := range g.cat.BusinessTypes {
		options[i] = bt.Type
		weights[i] = bt.Weight
	}

	businesses := make([]types.Business, 0, count)
	for i := 0; i < count; i++ {
		// Catalog validation guarantees the weight table is non-degenerate.
		businessType, _ := rng.WeightedPick(g.rng, options, weights)
		businesses = append(businesses, types.Business{
			ID:              newID(g.rng),
			Name:            g.businessName(businessType),
			Type:            businessType,
			Street:          rng.Pick(g.rng, streets),
			Employees:       g.rng.IntBetween(1, 50),
			EstablishedYear: g.rng.IntBetween(1950, 2023),
		})
	}
	return businesses
}

func (g *Generator) generateLandmarks(tier catalog.SizeTier, streets []string) []types.Landmark {
	count := g.rng.IntBetween(tier.Landmarks.Min, tier.Landmarks.Max)
	landmarks := make([]types.Landmark, 0, count)
	for i := 0; i < count; i++ {
		landmarkType := rng.Pick(g.rng, g.cat.LandmarkTypes)
		landmarks = append(landmarks, types.Landmark{
			ID:                     newID(g.rng),
			Name:                   g.landmarkName(landmarkType),
			Type:                   landmarkType,
			Street:                 rng.Pick(g.rng, streets),
			EstablishedYear:        g.rng.IntBetween(1800, 2020),
			HistoricalSignificance: rng.Pick(g.rng, g.cat.NameComponents.HistoricalSignificanceLevels),
		})
	}
	return landmarks
}

func (g *Generator) generateParks(tier catalog.SizeTier) []types.Park {
	count := g.rng.IntBetween(tier.Parks.Min, tier.Parks.Max)
	parks := make([]types.Park, 0, count)
	for i := 0; i < count; i++ {
		parkType := rng.Pick(g.rng, g.cat.ParkTypes)
		parks = append(parks, types.Park{
			ID:           newID(g.rng),
			Name:         g.parkName(parkType),
			Type:         parkType,
			AreaHectares: round2(g.rng.Float64Between(0.5, 20.0)),
			Facilities:   rng.Sample(g.rng, g.cat.NameComponents.FacilityTypes, g.rng.IntBetween(1, 4)),
		})
	}
	return parks
}

func (g *Generator) generateSchools(tier catalog.SizeTier, streets []string) []types.School {
	count := g.rng.IntBetween(tier.Schools.Min, tier.Schools.Max)
	schools := make([]types.School, 0, count)
	for i := 0; i < count; i++ {
		schoolType := rng.Pick(g.rng, g.cat.SchoolTypes)
		schools = append(schools, types.School{
			ID:              newID(g.rng),
			Name:            g.schoolName(schoolType),
			Type:            schoolType,
			Street:          rng.Pick(g.rng, streets),
			Students:        g.rng.IntBetween(50, 1200),
			EstablishedYear: g.rng.IntBetween(1900, 2020),
		})
	}
	return schools
}

func (g *Generator) generateServices(tier catalog.SizeTier, townName string, streets []string) []types.Service {
	count := g.rng.IntBetween(tier.Services.Min, tier.Services.Max)
	services := make([]types.Service, 0, count)
	for i := 0; i < count; i++ {
		serviceType := rng.Pick(g.rng, g.cat.ServiceTypes)
		services = append(services, types.Service{
			ID:             newID(g.rng),
			Name:           fmt.Sprintf("%s %s", townName, serviceType),
			Type:           serviceType,
			Street:         rng.Pick(g.rng, streets),
			OperatingHours: fmt.Sprintf("%d:00 AM - %d:00 PM", g.rng.IntBetween(6, 9), g.rng.IntBetween(4, 8)),
			StaffCount:     g.rng.IntBetween(2, 25),
		})
	}
	return services
}

func (g *Generator) generateEvents(tier catalog.SizeTier, townName string, streets []string) []types.Event {
	count := g.rng.IntBetween(tier.Events.Min, tier.Events.Max)
	events := make([]types.Event, 0, count)
	for i := 0; i < count; i++ {
		eventType := rng.Pick(g.rng, g.cat.EventTypes)
		events = append(events, types.Event{
			ID:     newID(g.rng),
			Name:   g.eventName(eventType, townName),
			Type:   eventType,
			Street: rng.Pick(g.rng, streets),
			Date:   g.eventDate(),
		})
	}
	return events
}

// eventDate places the event within the year following generation.
func (g *Generator) eventDate() string {
	year := g.Clock().Year()
	month := g.rng.IntBetween(1, 12)
	day := g.rng.IntBetween(1, 28)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// SaveJSON persists a town as a single whole-document JSON file, written to
// a temporary file and renamed into place so readers never observe a
// partial write.
func SaveJSON(t *types.Town, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling town: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing town file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing town file: %w", err)
	}
	return nil
}

// LoadJSON reads a persisted town document.
func LoadJSON(path string) (*types.Town, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading town file %s: %w", path, err)
	}
	var t types.Town
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing town file %s: %w", path, err)
	}
	return &t, nil
}

// newID draws a 16-hex-character identifier from the randomness context, so
// identifiers replay under a fixed seed.
func newID(r *rng.Context) string {
	const hex = "0123456789abcdef"
	b := make([]byte, 16)
	for i := range b {
		b[i] = hex[r.Intn(16)]
	}
	return string(b)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
