package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-template-agent/internal/pipeline"
	"github.com/jonathan/legal-template-agent/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a legal template into sections, variables, classification and quality",
	Long:  "Analyze a .docx (or plain text) legal template and output a ProcessedDocument JSON that validates against the processed_document schema.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to .docx or .txt template (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	doc, err := analyzeTemplate(cmd.Context(), analyzeInputFile)
	if err != nil {
		return err
	}

	if printer := verbosePrinter(); printer != nil {
		printer.PrintAnalysis(doc)
	}

	return writeJSON(analyzeOutputFile, doc, processedDocumentSchema)
}

// analyzeTemplate reads and processes a template file
func analyzeTemplate(ctx context.Context, path string) (*types.ProcessedDocument, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	input, err := readTemplate(path, settings.MaxFileSizeBytes())
	if err != nil {
		return nil, err
	}

	processor := pipeline.NewProcessor(logger)
	var doc *types.ProcessedDocument
	if len(input.Data) > 0 {
		doc, err = processor.ProcessDocument(ctx, input.Data)
	} else {
		doc, err = processor.ProcessText(ctx, input.Text)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to analyze template: %w", err)
	}
	return doc, nil
}
