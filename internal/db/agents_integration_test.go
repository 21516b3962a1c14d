//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/jonathan/legal-template-agent/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func TestIntegration_SaveAgent_Versioning(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	name := "Agente Teste " + uuid.New().String()[:8]
	input := &AgentDefinitionInput{
		Name:            name,
		Description:     "Especialista em Civil focado em cobrança",
		Prompt:          "Você é um assistente jurídico",
		Area:            types.AreaCivil,
		Subtype:         "cobrança",
		Specializations: []string{"Civil", "cobrança"},
		ConfidenceScore: 70,
	}

	first, err := db.SaveAgent(ctx, input)
	if err != nil {
		t.Fatalf("SaveAgent failed: %v", err)
	}
	defer func() { _ = db.DeleteAgent(ctx, first.ID) }()

	second, err := db.SaveAgent(ctx, input)
	if err != nil {
		t.Fatalf("SaveAgent failed: %v", err)
	}
	defer func() { _ = db.DeleteAgent(ctx, second.ID) }()

	if first.Version != 1 {
		t.Errorf("first.Version = %d, want 1", first.Version)
	}
	if second.Version != 2 {
		t.Errorf("second.Version = %d, want 2", second.Version)
	}

	latest, err := db.GetLatestAgent(ctx, name)
	if err != nil {
		t.Fatalf("GetLatestAgent failed: %v", err)
	}
	if latest == nil || latest.ID != second.ID {
		t.Errorf("GetLatestAgent returned %+v, want version 2", latest)
	}

	got, err := db.GetAgent(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetAgent failed: %v", err)
	}
	if got == nil || len(got.Specializations) != 2 {
		t.Errorf("GetAgent returned %+v", got)
	}

	missing, err := db.GetAgent(ctx, uuid.New())
	if err != nil || missing != nil {
		t.Errorf("GetAgent(unknown) = %v, %v; want nil, nil", missing, err)
	}
}

func TestIntegration_SaveAnalysis(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	agent, err := db.SaveAgent(ctx, &AgentDefinitionInput{
		Name:   "Agente Análise " + uuid.New().String()[:8],
		Prompt: "prompt",
		Area:   types.AreaFamilia,
	})
	if err != nil {
		t.Fatalf("SaveAgent failed: %v", err)
	}
	defer func() { _ = db.DeleteAgent(ctx, agent.ID) }()

	doc := &types.ProcessedDocument{
		ExtractedText: "texto",
		Variables:     []types.Variable{},
		Sections:      []types.Section{},
		Classification: types.DocumentClassification{
			Area: types.AreaFamilia, Subtype: "divórcio", Confidence: 40, Keywords: []string{"divórcio"},
		},
	}
	if _, err := db.SaveAnalysis(ctx, agent.ID, doc); err != nil {
		t.Fatalf("SaveAnalysis failed: %v", err)
	}

	got, err := db.GetAnalysis(ctx, agent.ID)
	if err != nil {
		t.Fatalf("GetAnalysis failed: %v", err)
	}
	if got == nil || got.Classification.Subtype != "divórcio" {
		t.Errorf("GetAnalysis returned %+v", got)
	}
}
