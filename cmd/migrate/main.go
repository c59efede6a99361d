// Package main provides the migrate CLI for the contextdb schema.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/localnerve/contextdb/internal/config"
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfig  string
	flagOffline bool
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or reverse the contextdb schema",
	Long: `Migrate manages the seven contextdb tables against a target database.
Online runs execute inside a single transaction; offline runs emit the
literal SQL statements for the configured dialect without connecting.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./contextdb.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "emit SQL statements instead of executing them")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadToolConfig resolves the tool configuration, a YAML file overlaid on
// the environment.
func loadToolConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.LoadFile(flagConfig)
}
