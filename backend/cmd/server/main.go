package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd runs the HTTP server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:          "survey-server",
	Short:        "Happiness survey kiosk and admin API",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config/config.yaml or ./config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
