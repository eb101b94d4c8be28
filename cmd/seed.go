package cmd

import (
	"fmt"

	"github.com/pranav244872/cvreview/catalog"
	db "github.com/pranav244872/cvreview/db/sqlc"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the skill catalog into the database",
	Long: `Upsert every skill of the seed file (SEED_FILE, or the built-in catalog)
together with its aliases. Running it again is safe.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	entries, err := catalog.LoadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}

	pool, err := openPool(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()

	result, err := db.NewStore(pool).SeedSkillsTx(cmd.Context(), catalog.SeedParams(entries))
	if err != nil {
		return fmt.Errorf("seeding failed, nothing was written: %w", err)
	}

	log.WithField("skills", len(result.Skills)).WithField("aliases", result.Aliases).Info("Catalog seeded")
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d skills (%d aliases)\n", len(result.Skills), result.Aliases)
	return nil
}
