package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/legal-template-agent/internal/agent"
	"github.com/jonathan/legal-template-agent/internal/db"
	"github.com/jonathan/legal-template-agent/internal/llm"
	"github.com/jonathan/legal-template-agent/internal/synthesis"
	"github.com/jonathan/legal-template-agent/internal/types"
)

// AgentStore persists agent definitions
type AgentStore interface {
	SaveAgent(ctx context.Context, input *db.AgentDefinitionInput) (*db.AgentDefinition, error)
	SaveAnalysis(ctx context.Context, agentID uuid.UUID, doc *types.ProcessedDocument) (uuid.UUID, error)
}

// RunOptions holds configuration for a full template-to-agent run
type RunOptions struct {
	Data        []byte
	Text        string // used instead of Data when Data is empty
	CreateAgent bool
	Client      llm.Client // may be nil; agent creation then uses fallbacks
	Preferences *types.UserPreferences
	Store       AgentStore // optional
	Logger      *zap.Logger
	OnProgress  ProgressCallback
}

// RunResult holds every artifact produced by a run
type RunResult struct {
	Document     *types.ProcessedDocument   `json:"document"`
	MasterPrompt string                     `json:"master_prompt"`
	Agent        *types.AgentCreationResult `json:"agent,omitempty"`
	Saved        *db.AgentDefinition        `json:"saved,omitempty"`
}

// Run analyzes a template, synthesizes its master prompt and, when requested,
// creates and stores the derived agent. Only analysis errors and store errors abort.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	processor := NewProcessor(logger)
	processor.OnProgress = opts.OnProgress

	var doc *types.ProcessedDocument
	var err error
	if len(opts.Data) > 0 {
		doc, err = processor.ProcessDocument(ctx, opts.Data)
	} else {
		doc, err = processor.ProcessText(ctx, opts.Text)
	}
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Document: doc,
		MasterPrompt: synthesis.SynthesizePrompt(
			doc.Sections, doc.Variables, doc.Classification, doc.Quality, doc.ExtractedText),
	}
	emit(opts.OnProgress, StepSynthesize, "Synthesized master prompt", nil)

	if !opts.CreateAgent {
		return result, nil
	}

	req := types.NewAgentCreationRequest(doc, opts.Preferences)
	created := agent.NewCreator(opts.Client, logger).CreateAgent(ctx, &req)
	result.Agent = &created
	emit(opts.OnProgress, StepCreateAgent, fmt.Sprintf("Created agent %q", created.SuggestedName), created)

	if opts.Store == nil {
		return result, nil
	}

	saved, err := opts.Store.SaveAgent(ctx, db.NewAgentDefinitionInput(&created, doc.Classification))
	if err != nil {
		return nil, fmt.Errorf("failed to save agent: %w", err)
	}
	if _, err := opts.Store.SaveAnalysis(ctx, saved.ID, doc); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	result.Saved = saved
	emit(opts.OnProgress, StepSaveAgent, fmt.Sprintf("Saved agent %s version %d", saved.ID, saved.Version), saved)
	logger.Info("agent saved", zap.String("id", saved.ID.String()), zap.Int("version", saved.Version))

	return result, nil
}
