package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/legal-template-agent/internal/types"
)

const agentColumns = `id, name, description, prompt, area, subtype, specializations,
	recommendations, confidence_score, version, created_at`

// SaveAgent stores a new agent definition. The version is one more than the
// highest existing version for the same name, starting at 1.
func (db *DB) SaveAgent(ctx context.Context, input *AgentDefinitionInput) (*AgentDefinition, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent definition: %w", err)
	}

	specs, err := json.Marshal(nonNil(input.Specializations))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal specializations: %w", err)
	}
	recs, err := json.Marshal(nonNil(input.Recommendations))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// serialize concurrent saves of the same name
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, input.Name); err != nil {
		return nil, fmt.Errorf("failed to lock agent name: %w", err)
	}

	var version int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM agent_definitions WHERE name = $1`,
		input.Name,
	).Scan(&version)
	if err != nil {
		return nil, fmt.Errorf("failed to compute agent version: %w", err)
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO agent_definitions
		 (id, name, description, prompt, area, subtype, specializations, recommendations, confidence_score, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+agentColumns,
		uuid.New(), input.Name, input.Description, input.Prompt, string(input.Area), input.Subtype,
		specs, recs, input.ConfidenceScore, version,
	)
	agent, err := scanAgent(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit agent: %w", err)
	}
	return agent, nil
}

// GetAgent retrieves an agent definition by ID, returning nil if not found
func (db *DB) GetAgent(ctx context.Context, id uuid.UUID) (*AgentDefinition, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM agent_definitions WHERE id = $1`, id)
	agent, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return agent, nil
}

// GetLatestAgent retrieves the highest version of the named agent, returning nil if not found
func (db *DB) GetLatestAgent(ctx context.Context, name string) (*AgentDefinition, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM agent_definitions
		 WHERE name = $1 ORDER BY version DESC LIMIT 1`, name)
	agent, err := scanAgent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest agent: %w", err)
	}
	return agent, nil
}

// ListAgents retrieves the most recently created agent definitions
func (db *DB) ListAgents(ctx context.Context, limit int) ([]AgentDefinition, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+agentColumns+` FROM agent_definitions
		 ORDER BY created_at DESC, version DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var agents []AgentDefinition
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, *agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate agents: %w", err)
	}
	return agents, nil
}

// DeleteAgent removes one agent version and its analyses
func (db *DB) DeleteAgent(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM agent_definitions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// SaveAnalysis stores the processed document an agent was derived from
func (db *DB) SaveAnalysis(ctx context.Context, agentID uuid.UUID, doc *types.ProcessedDocument) (uuid.UUID, error) {
	content, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO template_analyses (id, agent_id, content) VALUES ($1, $2, $3) RETURNING id`,
		uuid.New(), agentID, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves the processed document saved for an agent, returning nil if none exists
func (db *DB) GetAnalysis(ctx context.Context, agentID uuid.UUID) (*types.ProcessedDocument, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM template_analyses WHERE agent_id = $1 ORDER BY created_at DESC LIMIT 1`,
		agentID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var doc types.ProcessedDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &doc, nil
}

func scanAgent(row pgx.Row) (*AgentDefinition, error) {
	var agent AgentDefinition
	var specs, recs []byte
	err := row.Scan(&agent.ID, &agent.Name, &agent.Description, &agent.Prompt, &agent.Area, &agent.Subtype,
		&specs, &recs, &agent.ConfidenceScore, &agent.Version, &agent.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(specs, &agent.Specializations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal specializations: %w", err)
	}
	if err := json.Unmarshal(recs, &agent.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	return &agent, nil
}
