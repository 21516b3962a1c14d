package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var deleteAgentCmd = &cobra.Command{
	Use:   "delete-agent",
	Short: "Delete one stored agent version",
	Long:  "Delete one stored agent version, selected by --id, together with its template analyses.",
	RunE:  runDeleteAgent,
}

var (
	deleteDatabaseURL string
	deleteID          string
)

func init() {
	deleteAgentCmd.Flags().StringVar(&deleteDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	deleteAgentCmd.Flags().StringVar(&deleteID, "id", "", "Agent ID (required)")
	_ = deleteAgentCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(deleteAgentCmd)
}

func runDeleteAgent(cmd *cobra.Command, _ []string) error {
	id, err := uuid.Parse(deleteID)
	if err != nil {
		return fmt.Errorf("invalid agent ID %q: %w", deleteID, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := connectDatabase(ctx, firstNonEmpty(deleteDatabaseURL, settings.DatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteAgent(ctx, id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "Deleted agent %s\n", id)
	return nil
}
