package agent

import (
	"testing"

	"github.com/jonathan/legal-template-agent/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSpecializations(t *testing.T) {
	tests := []struct {
		name string
		req  *types.AgentCreationRequest
		want []string
	}{
		{
			name: "generic subtype omitted",
			req: &types.AgentCreationRequest{
				Classification: types.DocumentClassification{Area: types.AreaCivil, Subtype: types.GenericSubtype},
			},
			want: []string{"Civil"},
		},
		{
			name: "variable and keyword tags",
			req: &types.AgentCreationRequest{
				Classification: types.DocumentClassification{
					Area:     types.AreaCivil,
					Subtype:  "cobrança",
					Keywords: []string{"contrato", "petição"},
				},
				Variables: []types.Variable{
					{Name: "VALOR", Type: types.VariableCurrency},
					{Name: "CPF", Type: types.VariableCPF},
				},
			},
			want: []string{"Civil", "cobrança", "Cálculos monetários", "Identificação de partes", "Contratos"},
		},
		{
			name: "cnpj counts as party identification",
			req: &types.AgentCreationRequest{
				Classification: types.DocumentClassification{Area: types.AreaEmpresarial, Subtype: types.GenericSubtype},
				Variables:      []types.Variable{{Name: "CNPJ", Type: types.VariableCNPJ}, {Name: "DATA", Type: types.VariableDate}},
			},
			want: []string{"Empresarial", "Gestão de prazos", "Identificação de partes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Specializations(tt.req)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), types.MaxSpecializations)
		})
	}
}

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name string
		req  *types.AgentCreationRequest
		want int
	}{
		{"empty", &types.AgentCreationRequest{}, 0},
		{
			name: "saturated",
			req: &types.AgentCreationRequest{
				Classification: types.DocumentClassification{Confidence: 100},
				Quality:        types.QualityMetrics{Overall: 100},
				Variables:      make([]types.Variable, 12),
				Sections:       make([]types.Section, 8),
			},
			want: 100,
		},
		{
			name: "mixed",
			req: &types.AgentCreationRequest{
				Classification: types.DocumentClassification{Confidence: 50},
				Quality:        types.QualityMetrics{Overall: 40},
				Variables:      make([]types.Variable, 5),
				Sections:       make([]types.Section, 3),
			},
			// 0.15 + 0.12 + 0.10 + 0.10
			want: 47,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfidenceScore(tt.req))
		})
	}
}

func TestRecommendations(t *testing.T) {
	perfect := types.QualityMetrics{Completeness: 100, Clarity: 100, Structure: 100, LegalCompliance: 100, Overall: 100}
	requiredVars := []types.Variable{
		{Name: "A", Type: types.VariableCurrency, Required: true},
		{Name: "B", Type: types.VariableDate, Required: true},
		{Name: "C", Type: types.VariableText, Required: true},
	}

	t.Run("nothing to recommend", func(t *testing.T) {
		req := &types.AgentCreationRequest{
			Classification: types.DocumentClassification{Area: types.AreaCivil},
			Quality:        perfect,
			Variables:      requiredVars,
		}
		assert.Empty(t, Recommendations(req))
	})

	t.Run("civil without currency", func(t *testing.T) {
		req := &types.AgentCreationRequest{
			Classification: types.DocumentClassification{Area: types.AreaCivil},
			Quality:        perfect,
			Variables:      requiredVars[1:],
		}
		assert.Equal(t, []string{
			"Defina mais campos obrigatórios para garantir os dados essenciais do documento",
			"Inclua um campo para o valor da causa",
		}, Recommendations(req))
	})

	t.Run("trabalhista without date", func(t *testing.T) {
		req := &types.AgentCreationRequest{
			Classification: types.DocumentClassification{Area: types.AreaTrabalhista},
			Quality:        perfect,
			Variables: []types.Variable{
				{Name: "A", Required: true}, {Name: "B", Required: true}, {Name: "C", Required: true},
			},
		}
		assert.Equal(t, []string{"Inclua campos de data para o período contratual e prazos"}, Recommendations(req))
	})

	t.Run("too many optional fields", func(t *testing.T) {
		vars := append([]types.Variable{}, requiredVars...)
		for i := 0; i < 7; i++ {
			vars = append(vars, types.Variable{Name: "OPT", Type: types.VariableText})
		}
		req := &types.AgentCreationRequest{
			Classification: types.DocumentClassification{Area: types.AreaCriminal},
			Quality:        perfect,
			Variables:      vars,
		}
		assert.Equal(t, []string{"Simplifique o modelo reduzindo a quantidade de campos opcionais"}, Recommendations(req))
	})

	t.Run("capped", func(t *testing.T) {
		req := &types.AgentCreationRequest{
			Classification: types.DocumentClassification{Area: types.AreaCivil},
		}
		recs := Recommendations(req)
		assert.Len(t, recs, types.MaxRecommendations)
		assert.Equal(t, "Adicione mais seções obrigatórias para tornar o modelo mais completo", recs[0])
	})
}
