package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"califraud/cmd/internal/domain/sqlite"
	"califraud/cmd/internal/domain/sqlite/repository"
	"califraud/cmd/internal/seed"
)

var (
	seedForce bool
	seedCount int
	randSeed  int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate and load the synthetic case dataset",
	Long: `seed fills the database with generated fraud cases plus the
curated mega cases. An already-populated database is left alone unless
--force is given, which clears it and reloads from scratch.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "clear existing cases and reseed")
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "number of generated cases (default from config)")
	seedCmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed for reproducible datasets (0 = time-based)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := sqlite.Init(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	count := seedCount
	if count <= 0 {
		count = viper.GetInt("seed_count")
	}

	src := randSeed
	if src == 0 {
		src = time.Now().UnixNano()
	}

	gen, err := seed.NewGenerator(seed.DefaultTables(),
		rand.New(rand.NewSource(src)), time.Now().UTC())
	if err != nil {
		return err
	}

	repo := repository.NewCaseRepository(db)
	seeder := seed.NewSeeder(repo, gen, count)

	total, loaded, err := seeder.Seed(seedForce)
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}
	if !loaded {
		fmt.Printf("Database already has %d cases, nothing to do (use --force to reseed)\n", total)
		return nil
	}

	fmt.Printf("Loaded %d cases (%d generated + %d curated)\n",
		total, count, seed.MegaCaseCount())
	return nil
}
