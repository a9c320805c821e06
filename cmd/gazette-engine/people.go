package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mackney/gazette-engine/internal/people"
	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/internal/town"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Generate resident cohort data",
}

var peopleGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resident cohort and write it as CSV",
	Long: `Generate samples a cohort of synthetic residents. Age drives every
correlated attribute; pass --town to anchor addresses to a generated town's
streets.`,
	RunE: runPeopleGenerate,
}

func runPeopleGenerate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	locale, _ := cmd.Flags().GetString("locale")
	seed, _ := cmd.Flags().GetInt64("seed")
	townPath, _ := cmd.Flags().GetString("town")
	output, _ := cmd.Flags().GetString("output")

	generator := people.New(cat, locale, rng.New(seed))

	if townPath != "" {
		t, err := town.LoadJSON(townPath)
		if err != nil {
			return fmt.Errorf("loading town for address anchoring: %w", err)
		}
		generator.AnchorTown(t)
	}

	cohort, err := generator.GenerateDataset(count)
	if err != nil {
		return err
	}

	if err := people.SaveCSV(cohort, output); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "generated %d residents, written to %s\n", len(cohort), output)
	return nil
}

func init() {
	peopleGenerateCmd.Flags().Int("count", 100, "number of residents to generate")
	peopleGenerateCmd.Flags().String("locale", "en_US", "locale for names and contact details")
	peopleGenerateCmd.Flags().Int64("seed", 0, "randomness seed (0 derives one from the clock)")
	peopleGenerateCmd.Flags().String("town", "", "town JSON to anchor addresses to")
	peopleGenerateCmd.Flags().String("output", "data/people_data.csv", "output path for the cohort CSV")

	peopleCmd.AddCommand(peopleGenerateCmd)
	rootCmd.AddCommand(peopleCmd)
}
