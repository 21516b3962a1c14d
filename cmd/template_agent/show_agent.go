package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/legal-template-agent/internal/db"
	"github.com/jonathan/legal-template-agent/internal/types"
)

var showAgentCmd = &cobra.Command{
	Use:   "show-agent",
	Short: "Show a stored agent definition",
	Long: `Show one stored agent, selected by --id or by --name (latest version).
With --with-analysis the processed template it was derived from is included.`,
	RunE: runShowAgent,
}

var (
	showDatabaseURL  string
	showID           string
	showName         string
	showWithAnalysis bool
	showOutputFile   string
)

func init() {
	showAgentCmd.Flags().StringVar(&showDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	showAgentCmd.Flags().StringVar(&showID, "id", "", "Agent ID")
	showAgentCmd.Flags().StringVar(&showName, "name", "", "Agent name; the latest version is shown")
	showAgentCmd.Flags().BoolVar(&showWithAnalysis, "with-analysis", false, "Include the stored template analysis")
	showAgentCmd.Flags().StringVarP(&showOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	showAgentCmd.MarkFlagsMutuallyExclusive("id", "name")
	showAgentCmd.MarkFlagsOneRequired("id", "name")

	rootCmd.AddCommand(showAgentCmd)
}

// agentDetails is the show-agent output
type agentDetails struct {
	Agent    *db.AgentDefinition      `json:"agent"`
	Analysis *types.ProcessedDocument `json:"analysis,omitempty"`
}

func runShowAgent(cmd *cobra.Command, _ []string) error {
	var id uuid.UUID
	if showID != "" {
		parsed, err := uuid.Parse(showID)
		if err != nil {
			return fmt.Errorf("invalid agent ID %q: %w", showID, err)
		}
		id = parsed
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := connectDatabase(ctx, firstNonEmpty(showDatabaseURL, settings.DatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	var agent *db.AgentDefinition
	if showID != "" {
		agent, err = database.GetAgent(ctx, id)
	} else {
		agent, err = database.GetLatestAgent(ctx, showName)
	}
	if err != nil {
		return err
	}
	if agent == nil {
		return fmt.Errorf("agent not found")
	}

	details := agentDetails{Agent: agent}
	if showWithAnalysis {
		details.Analysis, err = database.GetAnalysis(ctx, agent.ID)
		if err != nil {
			return err
		}
	}

	if printer := verbosePrinter(); printer != nil {
		result := agent.Result()
		printer.PrintAgent(&result)
		if details.Analysis != nil {
			printer.PrintAnalysis(details.Analysis)
		}
	}

	return writeJSON(showOutputFile, details, "")
}
