package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/legal-template-agent/internal/llm"
	"github.com/jonathan/legal-template-agent/internal/pipeline"
)

var createAgentCmd = &cobra.Command{
	Use:   "create-agent",
	Short: "Create a specialized agent from a legal template",
	Long: `Analyze a template, then name the agent and optimize its prompt with Gemini.
Without an API key, or when Gemini fails, deterministic fallbacks are used.
With --db-url the agent is stored as a new version.`,
	RunE: runCreateAgent,
}

var (
	createInputFile   string
	createOutputFile  string
	createAPIKey      string
	createDatabaseURL string
	createComplexity  string
	createFocus       string
	createStyle       string
)

func init() {
	createAgentCmd.Flags().StringVarP(&createInputFile, "in", "i", "", "Path to .docx or .txt template (required)")
	createAgentCmd.Flags().StringVarP(&createOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	createAgentCmd.Flags().StringVar(&createAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	createAgentCmd.Flags().StringVar(&createDatabaseURL, "db-url", "", "Database URL to store the agent (overrides DATABASE_URL env var)")
	createAgentCmd.Flags().StringVar(&createComplexity, "complexity", "", "Agent complexity: basic, intermediate or advanced")
	createAgentCmd.Flags().StringVar(&createFocus, "focus", "", "Optimization focus: speed, quality or detail")
	createAgentCmd.Flags().StringVar(&createStyle, "style", "", "Writing style: formal, technical or accessible")
	_ = createAgentCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(createAgentCmd)
}

func runCreateAgent(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	prefs, err := preferencesFromFlags(createComplexity, createFocus, createStyle, settings.Preferences)
	if err != nil {
		return err
	}

	input, err := readTemplate(createInputFile, settings.MaxFileSizeBytes())
	if err != nil {
		return err
	}

	opts := pipeline.RunOptions{
		Data:        input.Data,
		Text:        input.Text,
		CreateAgent: true,
		Preferences: prefs,
		Logger:      logger,
	}

	if apiKey := firstNonEmpty(createAPIKey, settings.APIKey); apiKey != "" {
		client, err := llm.NewClient(ctx, settings.LLMConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts.Client = client
	} else {
		logger.Warn("no API key configured, agent identity and prompt will use fallbacks")
	}

	if databaseURL := firstNonEmpty(createDatabaseURL, settings.DatabaseURL); databaseURL != "" {
		database, err := connectDatabase(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		opts.Store = database
	}

	if verbose || settings.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			logger.Debug("progress", zap.String("step", event.Step), zap.String("message", event.Message))
		}
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	if printer := verbosePrinter(); printer != nil {
		printer.PrintAnalysis(result.Document)
		printer.PrintAgent(result.Agent)
	}
	if result.Saved != nil {
		logger.Info("agent stored",
			zap.String("id", result.Saved.ID.String()),
			zap.String("name", result.Saved.Name),
			zap.Int("version", result.Saved.Version))
	}

	return writeJSON(createOutputFile, result.Agent, agentResultSchema)
}
