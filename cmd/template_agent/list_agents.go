package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-template-agent/internal/db"
)

var listAgentsCmd = &cobra.Command{
	Use:   "list-agents",
	Short: "List stored agent definitions",
	Long:  "List the most recently stored agent definitions, newest first, as JSON.",
	RunE:  runListAgents,
}

var (
	listDatabaseURL string
	listLimit       int
	listOutputFile  string
)

func init() {
	listAgentsCmd.Flags().StringVar(&listDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	listAgentsCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of agents to list")
	listAgentsCmd.Flags().StringVarP(&listOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(listAgentsCmd)
}

func runListAgents(cmd *cobra.Command, _ []string) error {
	if listLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", listLimit)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := connectDatabase(ctx, firstNonEmpty(listDatabaseURL, settings.DatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	agents, err := database.ListAgents(ctx, listLimit)
	if err != nil {
		return err
	}
	if agents == nil {
		agents = []db.AgentDefinition{}
	}

	return writeJSON(listOutputFile, agents, "")
}
