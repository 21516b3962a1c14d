// Package main provides the command-line entry point for the legal template agent builder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/legal-template-agent/internal/config"
)

var (
	verbose    bool
	configPath string

	logger   *zap.Logger
	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:   "template_agent",
	Short: "Legal DOCX template analyzer and agent builder",
	Long: `template_agent analyzes legal document templates (.docx), detecting sections,
fill-in variables, legal area and quality, synthesizes a master prompt for document
generation, and creates specialized agents from the analysis.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		settings, err = loadSettings(configPath)
		return err
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed analysis boxes and debug logs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
