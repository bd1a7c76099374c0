package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"califraud/cmd/internal/seed"
)

var rootCmd = &cobra.Command{
	Use:   "fraudctl",
	Short: "Manage the California fraud case dataset",
	Long: `fraudctl seeds and inspects the synthetic fraud case database
used by the query API, without going through the HTTP server.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("db", "", "path to the sqlite database file")
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	viper.SetEnvPrefix("CALIFRAUD")
	viper.AutomaticEnv()

	viper.SetDefault("db", "califraud.db")
	viper.SetDefault("seed_count", seed.DefaultCaseCount)
}
