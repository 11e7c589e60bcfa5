// Package cmd defines the command-line interface for threesixty.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(competenciesCmd)
	rootCmd.AddCommand(relationshipsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("source", "s", "", "Path or URL of the survey workbook (.xlsx)")
	rootCmd.PersistentFlags().String("managers", "", "Comma-separated list of manager names to include")
	rootCmd.PersistentFlags().String("relationships", "", "Comma-separated list of relationship types to include")
	rootCmd.PersistentFlags().Float64("score-min", contract.DefaultScoreMin, "Lower bound of the score filter range")
	rootCmd.PersistentFlags().Float64("score-max", contract.DefaultScoreMax, "Upper bound of the score filter range")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
