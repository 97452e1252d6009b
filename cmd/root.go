package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoscan/internal/config"
	"invoscan/internal/logger"
)

var version = "1.0.0"

// cfg is the loaded environment configuration, injected by Execute.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "invoscan",
	Short: "invoscan - extract structured fields from scanned invoices",
	Long: `invoscan recovers structured fields (invoice number, dates, IBANs,
names, monetary amounts) from scanned invoices in English, German and
Spanish.

Pages are rasterized, enhanced and OCRed one at a time; processing stops
as soon as a page yields any field, bounded by a hard page ceiling.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Use --help to see available commands and options.")
	},
}

// Execute runs the CLI with the given configuration.
func Execute(c *config.Config) {
	cfg = c
	if cfg == nil {
		cfg = &config.Config{
			OCRBackend: "tesseract",
			MaxPages:   config.DefaultMaxPages,
			RasterDPI:  config.DefaultRasterDPI,
			OutputFile: config.DefaultOutput,
		}
	}

	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
