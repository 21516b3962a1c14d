package agent

import (
	"math"
	"strings"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// qualityThreshold is the sub-score below which a recommendation is emitted
const qualityThreshold = 70

// Specializations derives the agent's specialization tags, capped at types.MaxSpecializations
func Specializations(req *types.AgentCreationRequest) []string {
	specs := []string{req.Classification.Area.DisplayName()}
	if req.Classification.Subtype != "" && req.Classification.Subtype != types.GenericSubtype {
		specs = append(specs, req.Classification.Subtype)
	}

	if hasVariableType(req.Variables, types.VariableCurrency) {
		specs = append(specs, "Cálculos monetários")
	}
	if hasVariableType(req.Variables, types.VariableDate) {
		specs = append(specs, "Gestão de prazos")
	}
	if hasVariableType(req.Variables, types.VariableCPF, types.VariableCNPJ) {
		specs = append(specs, "Identificação de partes")
	}
	if hasKeyword(req.Classification.Keywords, "contrato") {
		specs = append(specs, "Contratos")
	}
	if hasKeyword(req.Classification.Keywords, "petição") {
		specs = append(specs, "Peças processuais")
	}

	if len(specs) > types.MaxSpecializations {
		specs = specs[:types.MaxSpecializations]
	}
	return specs
}

// ConfidenceScore weighs classification, quality, variable count and section count into 0-100
func ConfidenceScore(req *types.AgentCreationRequest) int {
	score := req.Classification.Confidence/100*0.3 +
		float64(req.Quality.Overall)/100*0.3 +
		math.Min(float64(len(req.Variables))/10, 1)*0.2 +
		math.Min(float64(len(req.Sections))/6, 1)*0.2

	return int(math.Max(0, math.Min(100, math.Round(score*100))))
}

// Recommendations lists improvement suggestions, capped at types.MaxRecommendations
func Recommendations(req *types.AgentCreationRequest) []string {
	recs := []string{}
	q := req.Quality

	if q.Completeness < qualityThreshold {
		recs = append(recs, "Adicione mais seções obrigatórias para tornar o modelo mais completo")
	}
	if q.Clarity < qualityThreshold {
		recs = append(recs, "Reduza a proporção de campos variáveis em relação ao texto fixo para melhorar a clareza")
	}
	if q.Structure < qualityThreshold {
		recs = append(recs, "Organize o documento com títulos de seção bem definidos")
	}
	if q.LegalCompliance < qualityThreshold {
		recs = append(recs, "Inclua fundamentação legal, doutrina e jurisprudência pertinentes")
	}

	required := 0
	for _, v := range req.Variables {
		if v.Required {
			required++
		}
	}
	optional := len(req.Variables) - required
	if required < 3 {
		recs = append(recs, "Defina mais campos obrigatórios para garantir os dados essenciais do documento")
	}
	if optional > 2*required {
		recs = append(recs, "Simplifique o modelo reduzindo a quantidade de campos opcionais")
	}

	switch req.Classification.Area {
	case types.AreaCivil:
		if !hasVariableType(req.Variables, types.VariableCurrency) {
			recs = append(recs, "Inclua um campo para o valor da causa")
		}
	case types.AreaTrabalhista:
		if !hasVariableType(req.Variables, types.VariableDate) {
			recs = append(recs, "Inclua campos de data para o período contratual e prazos")
		}
	}

	if len(recs) > types.MaxRecommendations {
		recs = recs[:types.MaxRecommendations]
	}
	return recs
}

func hasVariableType(vars []types.Variable, wanted ...types.VariableType) bool {
	for _, v := range vars {
		for _, w := range wanted {
			if v.Type == w {
				return true
			}
		}
	}
	return false
}

func hasKeyword(keywords []string, fragment string) bool {
	for _, k := range keywords {
		if strings.Contains(strings.ToLower(k), fragment) {
			return true
		}
	}
	return false
}
