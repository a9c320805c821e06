// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package town

import (
	"fmt"
	"strings"

	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/pkg/types"
)

// streetName composes a street name from one of six template families:
// surname, first name, tree, civic prefix, directional, or ordinal, each
// followed by a locale street suffix.
func (g *Generator) streetName() string {
	suffixes := g.cat.StreetSuffixes(g.locale)
	nc := g.cat.NameComponents

	var stem string
	switch g.rng.Intn(6) {
	case 0:
		stem = g.bank.LastName()
	case 1:
		stem = g.bank.FirstName(rng.Pick(g.rng, types.Genders))
	case 2:
		stem = rng.Pick(g.rng, nc.TreeNames)
	case 3:
		stem = rng.Pick(g.rng, nc.StreetPrefixes)
	case 4:
		stem = rng.Pick(g.rng, nc.DirectionalPrefixes)
	default:
		stem = rng.Pick(g.rng, nc.OrdinalPrefixes)
	}

	return stem + " " + rng.Pick(g.rng, suffixes)
}

// businessName synthesizes a name whose shape depends on the subtype
// family: restaurants, retail, and gas stations each have their own
// template set, everything else gets a generic pattern.
func (g *Generator) businessName(businessType string) string {
	adj := g.cat.NameComponents.BusinessAdjectives
	nouns := g.cat.NameComponents.BusinessNouns

	switch businessType {
	case "Restaurant/Café":
		switch g.rng.Intn(4) {
		case 0:
			return g.bank.LastName() + "'s Restaurant"
		case 1:
			return fmt.Sprintf("The %s %s", rng.Pick(g.rng, adj.Descriptive), rng.Pick(g.rng, nouns.Restaurant))
		case 2:
			owner := rng.Pick(g.rng, []string{"Mama", "Papa", "Tony", "Mario", "Luigi"})
			return fmt.Sprintf("%s's %s", owner, rng.Pick(g.rng, []string{"Pizza", "Diner", "Bistro", "Café"}))
		default:
			return fmt.Sprintf("%s %s", g.bank.PlaceName(), rng.Pick(g.rng, []string{"Grill", "Diner", "Café", "Bistro"}))
		}
	case "Retail Store":
		switch g.rng.Intn(3) {
		case 0:
			return fmt.Sprintf("%s's %s", g.bank.LastName(), rng.Pick(g.rng, nouns.Retail))
		case 1:
			return fmt.Sprintf("%s %s", rng.Pick(g.rng, adj.LocationBased), rng.Pick(g.rng, []string{"Market", "Store", "Shop"}))
		default:
			return fmt.Sprintf("The %s %s", rng.Pick(g.rng, adj.SizeBased), rng.Pick(g.rng, []string{"Shop", "Store", "Market"}))
		}
	case "Gas Station":
		switch g.rng.Intn(3) {
		case 0:
			return fmt.Sprintf("%s %s", rng.Pick(g.rng, adj.SpeedBased), rng.Pick(g.rng, nouns.Gas))
		case 1:
			return fmt.Sprintf("%s's %s", g.bank.LastName(), rng.Pick(g.rng, []string{"Gas", "Fuel", "Service"}))
		default:
			return fmt.Sprintf("%s %s", rng.Pick(g.rng, adj.LocationBased), rng.Pick(g.rng, []string{"Gas", "Fuel", "Station"}))
		}
	}

	short := shortType(businessType)
	switch g.rng.Intn(3) {
	case 0:
		return fmt.Sprintf("%s's %s", g.bank.LastName(), short)
	case 1:
		return fmt.Sprintf("%s %s", g.bank.PlaceName(), short)
	default:
		return fmt.Sprintf("%s %s", rng.Pick(g.rng, g.cat.NameComponents.BusinessAdjectives.Descriptive), short)
	}
}

func (g *Generator) landmarkName(landmarkType string) string {
	switch {
	case strings.Contains(landmarkType, "Church"):
		return fmt.Sprintf("St. %s's Church", g.bank.FirstName(rng.Pick(g.rng, types.Genders)))
	case landmarkType == "Monument":
		return fmt.Sprintf("%s %s", g.bank.LastName(), rng.Pick(g.rng, []string{"Monument", "Memorial"}))
	case landmarkType == "Statue":
		first := g.bank.FirstName(rng.Pick(g.rng, types.Genders))
		return fmt.Sprintf("%s %s Statue", first, g.bank.LastName())
	case landmarkType == "Historic Building":
		return "Old " + rng.Pick(g.rng, []string{"Town Hall", "Opera House", "Bank Building", "Hotel", "Mill"})
	case landmarkType == "Museum":
		return fmt.Sprintf("%s %s Museum", g.bank.PlaceName(), rng.Pick(g.rng, []string{"History", "Art", "Natural History"}))
	default:
		return fmt.Sprintf("%s %s", g.bank.PlaceName(), landmarkType)
	}
}

func (g *Generator) parkName(parkType string) string {
	switch g.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("%s %s", g.bank.LastName(), parkType)
	case 1:
		return fmt.Sprintf("%s %s", rng.Pick(g.rng, g.cat.NameComponents.ParkPrefixes), parkType)
	case 2:
		return fmt.Sprintf("%s %s", rng.Pick(g.rng, g.cat.NameComponents.TreeNames), parkType)
	default:
		return "Memorial " + parkType
	}
}

func (g *Generator) schoolName(schoolType string) string {
	switch {
	case strings.Contains(schoolType, "Elementary"):
		return g.bank.LastName() + " Elementary School"
	case strings.Contains(schoolType, "Middle"):
		return g.bank.PlaceName() + " Middle School"
	case strings.Contains(schoolType, "High"):
		return g.bank.PlaceName() + " High School"
	default:
		return fmt.Sprintf("%s %s", g.bank.LastName(), schoolType)
	}
}

func (g *Generator) eventName(eventType, townName string) string {
	switch g.rng.Intn(3) {
	case 0:
		return fmt.Sprintf("%s %s", townName, eventType)
	case 1:
		return "Annual " + eventType
	default:
		return fmt.Sprintf("%s %s", rng.Pick(g.rng, g.cat.NameComponents.ParkPrefixes), eventType)
	}
}

// shortType trims a compound subtype like "Restaurant/Café" to its leading
// form for use inside generic name templates.
func shortType(businessType string) string {
	if i := strings.IndexByte(businessType, '/'); i >= 0 {
		return businessType[:i]
	}
	return businessType
}
