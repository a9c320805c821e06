package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mackney/gazette-engine/internal/pipeline"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/internal/town"
	"github.com/mackney/gazette-engine/pkg/types"
)

var townCmd = &cobra.Command{
	Use:   "town",
	Short: "Generate town infrastructure data",
	Long: `Town generates the infrastructure graph for a synthetic town: streets
first, then the businesses, landmarks, parks, schools, services, and events
that anchor to them. Use generate for the town alone, or init to also
produce the resident cohort.`,
}

// --- generate subcommand ---

var townGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a town and write it as JSON",
	Long: `Generate samples a complete town from the weighted-table catalog and
writes it to a single JSON document. The same seed, catalog, and inputs
always produce a byte-identical file.`,
	RunE: runTownGenerate,
}

func runTownGenerate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	size, _ := cmd.Flags().GetString("size")
	locale, _ := cmd.Flags().GetString("locale")
	seed, _ := cmd.Flags().GetInt64("seed")
	output, _ := cmd.Flags().GetString("output")

	generator := town.New(cat, locale, rng.New(seed))
	t, err := generator.Generate(name, size)
	if err != nil {
		return err
	}

	if err := town.SaveJSON(t, output); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "generated %s: population %d, %d streets, %d businesses, %d landmarks, %d parks, %d schools, %d services, %d events\n",
		t.Name, t.Population, len(t.Streets), len(t.Businesses), len(t.Landmarks),
		len(t.Parks), len(t.Schools), len(t.Services), len(t.Events))
	fmt.Fprintf(os.Stdout, "written to %s\n", output)
	return nil
}

// --- init subcommand ---

var townInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a town with its resident cohort",
	Long: `Init runs the full initialization pipeline: generate a town (with
newspaper masthead metadata when configured), persist it, then generate and
persist a resident cohort scaled from the town population. The town is
written before resident generation begins.`,
	RunE: runTownInit,
}

func runTownInit(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	cfg, err := townInitConfig(cmd)
	if err != nil {
		return err
	}

	_, _, err = pipeline.InitTown(cfg, cat, os.Stdout)
	return err
}

// townInitConfig reads the init config file and applies flag overrides.
func townInitConfig(cmd *cobra.Command) (types.TownInitConfig, error) {
	var cfg types.TownInitConfig

	// Defaults matching the stock configuration.
	cfg.Town.Size = "medium"
	cfg.Town.Locale = "en_US"
	cfg.Population.ScaleFactor = 0.1
	cfg.Population.MinPeople = 50
	cfg.DataDir = "data"

	if path, _ := cmd.Flags().GetString("init-config"); path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading init config %s: %w", path, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("parsing init config %s: %w", path, err)
		}
	}

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		cfg.Town.Name = name
	}
	if size, _ := cmd.Flags().GetString("size"); size != "" {
		cfg.Town.Size = size
	}
	if locale, _ := cmd.Flags().GetString("locale"); locale != "" {
		cfg.Town.Locale = locale
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfg.Town.Seed = seed
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}

	return cfg, nil
}

func init() {
	townGenerateCmd.Flags().String("name", "", "town name (empty synthesizes one)")
	townGenerateCmd.Flags().String("size", "medium", "town size tier: small, medium, or large")
	townGenerateCmd.Flags().String("locale", "en_US", "locale for names and street patterns")
	townGenerateCmd.Flags().Int64("seed", 0, "randomness seed (0 derives one from the clock)")
	townGenerateCmd.Flags().String("output", "data/town_data.json", "output path for the town JSON")

	townInitCmd.Flags().String("init-config", "", "path to the town init YAML config")
	townInitCmd.Flags().String("name", "", "town name override")
	townInitCmd.Flags().String("size", "", "town size tier override")
	townInitCmd.Flags().String("locale", "", "locale override")
	townInitCmd.Flags().Int64("seed", 0, "randomness seed override")
	townInitCmd.Flags().String("data-dir", "", "data directory override")

	townCmd.AddCommand(townGenerateCmd)
	townCmd.AddCommand(townInitCmd)
	rootCmd.AddCommand(townCmd)
}
