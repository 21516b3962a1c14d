package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-template-agent/internal/docx"
)

var legacyCmd = &cobra.Command{
	Use:   "legacy-process",
	Short: "Process a .docx template with the simple legacy processor",
	Long:  "Extract text, heading-based sections and placeholder variables from a .docx template, retrying transient failures.",
	RunE:  runLegacy,
}

var (
	legacyInputFile   string
	legacyOutputFile  string
	legacyMaxAttempts int
)

func init() {
	legacyCmd.Flags().StringVarP(&legacyInputFile, "in", "i", "", "Path to .docx template (required)")
	legacyCmd.Flags().StringVarP(&legacyOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	legacyCmd.Flags().IntVar(&legacyMaxAttempts, "max-attempts", 3, "Maximum processing attempts")
	_ = legacyCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(legacyCmd)
}

func runLegacy(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := os.ReadFile(legacyInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	processor := docx.NewLegacyProcessor(logger)
	if legacyMaxAttempts > 0 {
		processor.MaxAttempts = legacyMaxAttempts
	}

	result, err := processor.Process(ctx, data)
	if err != nil {
		return err
	}

	if printer := verbosePrinter(); printer != nil {
		printer.PrintLegacy(result)
	}

	return writeJSON(legacyOutputFile, result, "")
}
