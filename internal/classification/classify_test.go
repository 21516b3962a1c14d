package classification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/legal-template-agent/internal/types"
)

func TestClassify_Fallback(t *testing.T) {
	result := Classify("Texto neutro sobre assuntos gerais, apenas um exemplo qualquer.")

	assert.Equal(t, types.AreaCivil, result.Area)
	assert.Equal(t, "genérico", result.Subtype)
	assert.Equal(t, 30.0, result.Confidence)
	assert.NotNil(t, result.Keywords)
	assert.Empty(t, result.Keywords)
}

func TestClassify_PicksHighestScoringArea(t *testing.T) {
	text := "RECLAMAÇÃO TRABALHISTA. O empregado requer o pagamento de horas extras e FGTS após a rescisão."

	result := Classify(text)

	assert.Equal(t, types.AreaTrabalhista, result.Area)
	assert.Equal(t, "reclamação trabalhista", result.Subtype)
	assert.Equal(t, []string{"reclamação trabalhista", "empregado", "horas extras", "rescisão", "fgts"}, result.Keywords)
	assert.InDelta(t, 50.0, result.Confidence, 0.001)
}

func TestClassify_ConfidenceCappedAt95(t *testing.T) {
	text := strings.Join(areaProfiles[types.AreaFamilia].keywords, " ")

	result := Classify(text)

	assert.Equal(t, types.AreaFamilia, result.Area)
	assert.Equal(t, 95.0, result.Confidence)
	assert.Len(t, result.Keywords, len(areaProfiles[types.AreaFamilia].keywords))
}

func TestClassify_TiesFollowEnumerationOrder(t *testing.T) {
	// one keyword out of ten for both civil and criminal
	result := Classify("Trata-se de cobrança relacionada a um crime.")

	assert.Equal(t, types.AreaCivil, result.Area)
	assert.Equal(t, "cobrança", result.Subtype)
	assert.InDelta(t, 10.0, result.Confidence, 0.001)
}

func TestClassify_SubtypeDefaultsToGeneric(t *testing.T) {
	result := Classify("O réu foi citado na denúncia oferecida pelo Ministério Público.")

	require.Equal(t, types.AreaCriminal, result.Area)
	assert.Equal(t, types.GenericSubtype, result.Subtype)
}

func TestClassify_WholeWordsOnly(t *testing.T) {
	// "apenas" contains "pena" and "comissão" contains "iss"
	result := Classify("Foi apenas uma comissão.")
	assert.Equal(t, Fallback(), result)
}

func TestClassify_Deterministic(t *testing.T) {
	text := "Contrato social da empresa com cláusula de indenização e guarda de documentos."
	first := Classify(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text     string
		word     string
		expected bool
	}{
		{"pena de multa", "pena", true},
		{"apenas isso", "pena", false},
		{"penalidade e pena", "pena", true},
		{"icms.", "icms", true},
		{"réu", "réu", true},
		{"", "réu", false},
	}

	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsWord(tt.text, tt.word))
		})
	}
}
