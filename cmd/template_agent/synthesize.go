package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-template-agent/internal/synthesis"
	"github.com/jonathan/legal-template-agent/internal/types"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Synthesize the master prompt for a legal template",
	Long:  "Render the master prompt for a template, either analyzing it from --in or reading a previous analyze output from --analysis.",
	RunE:  runSynthesize,
}

var (
	synthesizeInputFile    string
	synthesizeAnalysisFile string
	synthesizeOutputFile   string
)

func init() {
	synthesizeCmd.Flags().StringVarP(&synthesizeInputFile, "in", "i", "", "Path to .docx or .txt template")
	synthesizeCmd.Flags().StringVar(&synthesizeAnalysisFile, "analysis", "", "Path to ProcessedDocument JSON from analyze")
	synthesizeCmd.Flags().StringVarP(&synthesizeOutputFile, "out", "o", "", "Path to output text file (default stdout)")

	rootCmd.AddCommand(synthesizeCmd)
}

func runSynthesize(cmd *cobra.Command, _ []string) error {
	if (synthesizeInputFile == "") == (synthesizeAnalysisFile == "") {
		return fmt.Errorf("exactly one of --in or --analysis is required")
	}

	var doc *types.ProcessedDocument
	var err error
	if synthesizeAnalysisFile != "" {
		doc, err = loadAnalysis(synthesizeAnalysisFile)
	} else {
		doc, err = analyzeTemplate(cmd.Context(), synthesizeInputFile)
	}
	if err != nil {
		return err
	}

	prompt := synthesis.SynthesizePrompt(doc.Sections, doc.Variables, doc.Classification, doc.Quality, doc.ExtractedText)
	return writeText(synthesizeOutputFile, prompt)
}

// loadAnalysis reads a ProcessedDocument JSON file
func loadAnalysis(path string) (*types.ProcessedDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}

	var doc types.ProcessedDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	return &doc, nil
}
