package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"califraud/cmd/internal/domain/sqlite"
	"califraud/cmd/internal/domain/sqlite/repository"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset totals and the largest scheme types",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := sqlite.Init(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	repo := repository.NewCaseRepository(db)
	summary, schemes, err := repo.Summary(repository.CaseFilter{})
	if err != nil {
		return fmt.Errorf("querying summary: %w", err)
	}

	fmt.Printf("Cases:     %s\n", humanize.Comma(summary.TotalCases))
	fmt.Printf("Exposed:   $%s\n", money(summary.TotalExposed))
	fmt.Printf("Recovered: $%s\n", money(summary.TotalRecovered))
	fmt.Printf("Average:   $%s\n", money(summary.AverageAmount))

	if len(schemes) == 0 {
		return nil
	}

	fmt.Println("\nTop scheme types by exposure:")
	top := schemes
	if len(top) > 5 {
		top = top[:5]
	}
	for _, s := range top {
		fmt.Printf("  %-40s %7s cases  $%s\n",
			s.SchemeType, humanize.Comma(s.CaseCount), money(s.TotalExposed))
	}
	return nil
}

func money(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
