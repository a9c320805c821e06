package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mackney/gazette-engine/internal/article"
	"github.com/mackney/gazette-engine/internal/pipeline"
	"github.com/mackney/gazette-engine/pkg/types"
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Generate gazette articles",
}

var articleGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of articles",
	Long: `Generate samples article seeds from the town and resident datasets and
synthesizes prose for each. Without an API key (or with --placeholder) every
article gets a deterministic placeholder draft instead. Failures in one
article never abort the batch.`,
	RunE: runArticleGenerate,
}

func runArticleGenerate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	cfg, err := dailyConfig(cmd)
	if err != nil {
		return err
	}

	synth, err := buildSynthesizer(cmd, &cfg)
	if err != nil {
		return err
	}

	_, err = pipeline.RunDaily(cmd.Context(), cfg, cat, synth, os.Stdout)
	return err
}

// dailyConfig reads the daily batch config file and applies flag overrides.
func dailyConfig(cmd *cobra.Command) (types.DailyConfig, error) {
	var cfg types.DailyConfig

	cfg.Articles.Count = 1
	cfg.DataDir = "data"
	cfg.Synthesizer.Model = "gpt-4o-mini"

	if path, _ := cmd.Flags().GetString("daily-config"); path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading daily config %s: %w", path, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("parsing daily config %s: %w", path, err)
		}
	}

	if cmd.Flags().Changed("count") {
		count, _ := cmd.Flags().GetInt("count")
		cfg.Articles.Count = count
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfg.Seed = seed
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Synthesizer.Model = model
	}
	if cmd.Flags().Changed("article-limit") {
		limit, _ := cmd.Flags().GetInt("article-limit")
		cfg.Articles.SaveOptions.ArticleLimit = limit
	}
	if cmd.Flags().Changed("backup") {
		backup, _ := cmd.Flags().GetBool("backup")
		cfg.Articles.SaveOptions.BackupBeforeSave = backup
	}

	return cfg, nil
}

// buildSynthesizer picks the content synthesis backend. The placeholder
// backend is used when asked for explicitly or when no API key is
// configured anywhere.
func buildSynthesizer(cmd *cobra.Command, cfg *types.DailyConfig) (article.Synthesizer, error) {
	if placeholder, _ := cmd.Flags().GetBool("placeholder"); placeholder {
		return article.PlaceholderSynthesizer{}, nil
	}

	if cfg.Synthesizer.APIKey == "" {
		key, err := openAIKey()
		if err != nil {
			return nil, err
		}
		cfg.Synthesizer.APIKey = key
	}

	if cfg.Synthesizer.APIKey == "" {
		fmt.Fprintln(os.Stderr, "no API key configured, using placeholder drafts")
		return article.PlaceholderSynthesizer{}, nil
	}

	return article.NewOpenAISynthesizer(cfg.Synthesizer)
}

func init() {
	articleGenerateCmd.Flags().String("daily-config", "", "path to the daily batch YAML config")
	articleGenerateCmd.Flags().Int("count", 1, "number of articles to generate")
	articleGenerateCmd.Flags().String("data-dir", "", "data directory override")
	articleGenerateCmd.Flags().Int64("seed", 0, "randomness seed (0 derives one from the clock)")
	articleGenerateCmd.Flags().String("model", "", "chat model for content synthesis")
	articleGenerateCmd.Flags().Bool("placeholder", false, "skip content synthesis and write placeholder drafts")
	articleGenerateCmd.Flags().Int("article-limit", 0, "prune the store to the newest N records after the batch")
	articleGenerateCmd.Flags().Bool("backup", false, "back up the articles store before the batch")

	articleCmd.AddCommand(articleGenerateCmd)
	rootCmd.AddCommand(articleCmd)
}
