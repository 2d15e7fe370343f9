package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"printbulk/internal/config"
	"printbulk/internal/importer"
	"printbulk/internal/logger"
	"printbulk/internal/services/printful"
)

func main() {
	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "printbulk <file>",
		Short: "Bulk-create Printful products from a .csv or .xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			// Load configuration
			cfg, err := config.Load()
			if err != nil {
				log.Fatal("Failed to load configuration: ", err)
			}

			// Initialize logger
			logger := logger.New(cfg.LogLevel)

			// Initialize Printful client and importer
			client := printful.NewClient(cfg.PrintfulBaseURL, cfg.PrintfulAPIKey, logger)
			imp := importer.New(cfg, logger, client, client)
			imp.DryRun = dryRun

			if err := imp.Run(args[0]); err != nil {
				logger.Fatal("Import failed: %v", err)
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and group the input without calling the API")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
