// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for gazette-engine:
// the town infrastructure graph, the resident cohort, article records, and
// the configuration structs consumed by the pipeline commands.
package types

import "time"

// StreetType classifies a street by its dominant use.
type StreetType string

const (
	StreetResidential StreetType = "Residential"
	StreetCommercial  StreetType = "Commercial"
	StreetMixed       StreetType = "Mixed"
	StreetIndustrial  StreetType = "Industrial"
)

// StreetTypes lists all street classifications in draw order.
var StreetTypes = []StreetType{StreetResidential, StreetCommercial, StreetMixed, StreetIndustrial}

// Street is a named road in the town. Streets are generated before any
// dependent entity because businesses, landmarks, schools, services, and
// events anchor to a street by name.
type Street struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     StreetType `json:"type"`
	LengthKM float64    `json:"length_km"`
}

// Business is a commercial establishment anchored to a street.
type Business struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Street          string `json:"street"`
	Employees       int    `json:"employees"`
	EstablishedYear int    `json:"established_year"`
}

// Landmark is a point of civic or historical interest.
type Landmark struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Type                   string `json:"type"`
	Street                 string `json:"street"`
	EstablishedYear        int    `json:"established_year"`
	HistoricalSignificance string `json:"historical_significance"`
}

// Park is a green space. Parks carry no street anchor.
type Park struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	AreaHectares float64  `json:"area_hectares"`
	Facilities   []string `json:"facilities"`
}

// School is an educational institution anchored to a street.
type School struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Street          string `json:"street"`
	Students        int    `json:"students"`
	EstablishedYear int    `json:"established_year"`
}

// Service is a municipal service facility anchored to a street.
type Service struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Street         string `json:"street"`
	OperatingHours string `json:"operating_hours"`
	StaffCount     int    `json:"staff_count"`
}

// Event is a recurring or upcoming community happening, anchored to a street.
type Event struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Street string `json:"street"`
	Date   string `json:"date"`
}

// Newspaper holds the masthead metadata for the town's local paper.
type Newspaper struct {
	Name                 string `json:"name" yaml:"name"`
	Tagline              string `json:"tagline" yaml:"tagline"`
	FoundedYear          int    `json:"founded_year" yaml:"founded_year"`
	PublicationFrequency string `json:"publication_frequency" yaml:"publication_frequency"`
}

// Town is the complete infrastructure graph for one generated town. It is
// created whole by the town generator, immutable thereafter, and persisted
// as a single JSON document. Every street-anchored entity references a name
// from Streets.
type Town struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Country      string     `json:"country"`
	Locale       string     `json:"locale"`
	SizeCategory string     `json:"size_category"`
	Population   int        `json:"population"`
	AreaSqKM     float64    `json:"area_sq_km"`
	FoundedYear  int        `json:"founded_year"`
	ElevationM   int        `json:"elevation_m"`
	Climate      string     `json:"climate"`
	Streets      []Street   `json:"streets"`
	Businesses   []Business `json:"businesses"`
	Landmarks    []Landmark `json:"landmarks"`
	Parks        []Park     `json:"parks"`
	Schools      []School   `json:"schools"`
	Services     []Service  `json:"services"`
	Events       []Event    `json:"events"`
	Newspaper    *Newspaper `json:"newspaper,omitempty"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

// StreetNames returns the names of all streets in declaration order.
func (t *Town) StreetNames() []string {
	names := make([]string, len(t.Streets))
	for i, s := range t.Streets {
		names[i] = s.Name
	}
	return names
}
