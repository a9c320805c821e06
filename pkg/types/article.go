// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Author describes a configured gazette writer. Specialties bias category
// assignment during seed sampling.
type Author struct {
	Name         string   `json:"name" yaml:"name"`
	Persona      string   `json:"persona" yaml:"persona"`
	WritingStyle string   `json:"writing_style" yaml:"writing_style"`
	Specialties  []string `json:"specialties" yaml:"specialties"`
}

// TownFeatures is the subset of town infrastructure sampled into a seed.
// Each family is gated by its own inclusion probability and count cap, so
// any of these may be empty.
type TownFeatures struct {
	Streets    []Street   `json:"streets,omitempty"`
	Landmarks  []Landmark `json:"landmarks,omitempty"`
	Businesses []Business `json:"businesses,omitempty"`
	Events     []Event    `json:"events,omitempty"`
}

// ArticleSeed is the sampled bundle handed to the content synthesizer.
// It is ephemeral: never persisted on its own. The synthesis request embeds
// it, and composing the final record copies its category, seriousness, and
// author details onto the Article.
type ArticleSeed struct {
	Category       string       `json:"category"`
	Author         Author       `json:"author"`
	Seriousness    string       `json:"seriousness"`
	TownName       string       `json:"town_name,omitempty"`
	TownPopulation int          `json:"town_population,omitempty"`
	TownFeatures   TownFeatures `json:"town_features"`
	People         []Person     `json:"people,omitempty"`
}

// HasTownContext reports whether any town feature family was sampled.
func (s *ArticleSeed) HasTownContext() bool {
	f := s.TownFeatures
	return len(f.Streets) > 0 || len(f.Landmarks) > 0 || len(f.Businesses) > 0 || len(f.Events) > 0
}

// Draft is the structured prose returned by the content synthesizer.
type Draft struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Summary string `json:"summary"`
}

// Article is one persisted gazette record. Articles live in an append-only
// tabular store; the ID is derived from the creation timestamp.
type Article struct {
	ArticleID       string `json:"article_id"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Body            string `json:"body"`
	Summary         string `json:"summary"`
	PublicationDate string `json:"publication_date"`
	LastUpdated     string `json:"last_updated"`
	Author          string `json:"author"`
	AuthorPersona   string `json:"author_persona"`
	AuthorStyle     string `json:"author_style"`
	Category        string `json:"category"`
	Status          string `json:"status"`
	StoryStatus     string `json:"story_status"`
	Seriousness     string `json:"seriousness"`
}
