// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gazette-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mackney/gazette-engine/internal/catalog"
	"github.com/mackney/gazette-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where API key files live.
const secretsDir = ".secrets/"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the gazette-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "gazette-engine",
	Short: "Synthetic small-town data for the gazette",
	Long: `gazette-engine generates the synthetic world behind a small-town
newspaper: the town's infrastructure, a demographically-correlated resident
cohort, and a rolling store of articles seeded from both.

Each stage is a subcommand: town, people, article, and archive. Generation
is deterministic for a given seed and catalog; only article prose comes from
an external model, and it degrades to placeholders when unavailable.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gazette-engine.yaml or ~/.config/gazette-engine/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "weighted-table catalog file (default: embedded catalog)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gazette-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gazette-engine"))
		}
	}

	viper.SetEnvPrefix("GAZETTE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadCatalog resolves the --catalog flag, falling back to the root config
// and then the embedded defaults.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = viper.GetString("catalog")
	}
	return catalog.Load(path)
}

// openAIKey resolves the synthesizer key: environment first, then the
// secrets directory.
func openAIKey() (string, error) {
	return secrets.OpenAIKey(secretsDir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
