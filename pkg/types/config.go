// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// ErrInvalidArgument indicates bad caller input (for example a non-positive
// cohort size). It is raised before any generation side effects.
var ErrInvalidArgument = errors.New("invalid argument")

// SynthesizerConfig holds settings for the content synthesis boundary.
type SynthesizerConfig struct {
	// Model is the chat model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey authenticates against the OpenAI-compatible API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL optionally overrides the API endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// MaxRetries is the number of retry attempts for failed calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// TownInitConfig drives the `town init` pipeline: one town plus a scaled
// resident cohort, generated and persisted in that order.
type TownInitConfig struct {
	Town struct {
		Name   string `yaml:"name" mapstructure:"name"`
		Locale string `yaml:"locale" mapstructure:"locale"`
		Size   string `yaml:"size" mapstructure:"size"`
		Seed   int64  `yaml:"seed" mapstructure:"seed"`
	} `yaml:"town" mapstructure:"town"`

	Population struct {
		// ScaleFactor is the fraction of the town population to realize as
		// resident records.
		ScaleFactor float64 `yaml:"scale_factor" mapstructure:"scale_factor"`

		// MinPeople is the floor on the generated cohort size.
		MinPeople int `yaml:"min_people" mapstructure:"min_people"`
	} `yaml:"population" mapstructure:"population"`

	Newspaper *Newspaper `yaml:"newspaper,omitempty" mapstructure:"newspaper"`

	// DataDir is where town_data.json and people_data.csv are written.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
}

// DailyConfig drives the `article generate` batch: N articles appended to the
// article store, with optional pre-backup and pruning.
type DailyConfig struct {
	Articles struct {
		Count int `yaml:"count" mapstructure:"count"`

		SaveOptions struct {
			// BackupBeforeSave copies the article store aside before the
			// batch begins.
			BackupBeforeSave bool `yaml:"backup_before_save" mapstructure:"backup_before_save"`

			// ArticleLimit prunes the store to the newest N rows after the
			// batch; 0 disables pruning.
			ArticleLimit int `yaml:"article_limit" mapstructure:"article_limit"`
		} `yaml:"save_options" mapstructure:"save_options"`
	} `yaml:"articles" mapstructure:"articles"`

	// DataDir holds town_data.json, people_data.csv, and articles.csv.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// Seed seeds the sampling randomness; 0 derives a seed from the clock.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	Synthesizer SynthesizerConfig `yaml:"synthesizer" mapstructure:"synthesizer"`
}
