package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/legal-template-agent/internal/config"
	"github.com/jonathan/legal-template-agent/internal/db"
	"github.com/jonathan/legal-template-agent/internal/observability"
	"github.com/jonathan/legal-template-agent/internal/schemas"
	"github.com/jonathan/legal-template-agent/internal/types"
)

const (
	processedDocumentSchema = "schemas/processed_document.schema.json"
	agentResultSchema       = "schemas/agent_result.schema.json"
)

// loadSettings reads the optional config file and applies environment defaults
func loadSettings(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	return cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}), nil
}

// firstNonEmpty returns the first non-empty value
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// connectDatabase opens the agent store and makes sure its tables exist
func connectDatabase(ctx context.Context, databaseURL string) (*db.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required (--db-url or DATABASE_URL)")
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// templateInput is a template read from disk, either binary .docx or plain text
type templateInput struct {
	Data []byte
	Text string
}

// readTemplate loads a .docx file as bytes or any other file as text, enforcing maxBytes
func readTemplate(path string, maxBytes int) (*templateInput, error) {
	if path == "" {
		return nil, fmt.Errorf("--in is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if info.Size() > int64(maxBytes) {
		return nil, fmt.Errorf("input file is %d bytes, maximum is %d", info.Size(), maxBytes)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return &templateInput{Data: content}, nil
	}
	return &templateInput{Text: string(content)}, nil
}

// preferencesFromFlags builds preferences from flag values, falling back to the config file
func preferencesFromFlags(complexity, focus, style string, defaults types.UserPreferences) (*types.UserPreferences, error) {
	prefs := &types.UserPreferences{
		Complexity: types.Complexity(firstNonEmpty(complexity, string(defaults.Complexity))),
		Focus:      types.Focus(firstNonEmpty(focus, string(defaults.Focus))),
		Style:      types.Style(firstNonEmpty(style, string(defaults.Style))),
	}
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preferences: %w", err)
	}
	return prefs, nil
}

// writeJSON writes v to path (or stdout when path is empty) and validates it against a schema when found
func writeJSON(path string, v any, schemaRelPath string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if schemaPath := resolveSchema(schemaRelPath); schemaPath != "" {
		schemaBytes, err := os.ReadFile(schemaPath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not read schema %s: %v\n", schemaPath, err)
		} else if err := schemas.ValidateJSONString(string(schemaBytes), string(jsonBytes)); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", path)
	return nil
}

// resolveSchema finds a schema file; an empty relative path disables validation
func resolveSchema(relPath string) string {
	if relPath == "" {
		return ""
	}
	return schemas.ResolveSchemaPath(relPath)
}

// writeText writes s to path, or stdout when path is empty
func writeText(path, s string) error {
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, s)
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", path)
	return nil
}

// verbosePrinter returns a Printer on stderr when verbose output is enabled
func verbosePrinter() *observability.Printer {
	if !verbose && !settings.Verbose {
		return nil
	}
	return observability.NewPrinter(os.Stderr)
}
