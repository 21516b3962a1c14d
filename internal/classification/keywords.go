// Package classification assigns a legal area and subtype to a document using keyword dictionaries.
package classification

import "github.com/jonathan/legal-template-agent/internal/types"

// areaProfile holds the dictionaries consulted for one legal area.
// Subtypes are tested in order; the first literal found wins.
type areaProfile struct {
	keywords []string
	subtypes []string
}

// areaProfiles is keyed by area; iteration always follows types.LegalAreas
var areaProfiles = map[types.LegalArea]areaProfile{
	types.AreaCivil: {
		keywords: []string{"contrato", "indenização", "danos morais", "responsabilidade civil", "obrigação", "cobrança", "petição", "código civil", "locação", "posse"},
		subtypes: []string{"indenização", "cobrança", "locação", "usucapião", "despejo", "contrato"},
	},
	types.AreaTrabalhista: {
		keywords: []string{"reclamação trabalhista", "empregado", "empregador", "clt", "horas extras", "rescisão", "salário", "fgts", "aviso prévio", "justiça do trabalho"},
		subtypes: []string{"reclamação trabalhista", "horas extras", "rescisão indireta", "acordo", "recurso ordinário"},
	},
	types.AreaCriminal: {
		keywords: []string{"crime", "réu", "denúncia", "código penal", "pena", "habeas corpus", "prisão", "ministério público", "delito", "inquérito"},
		subtypes: []string{"habeas corpus", "resposta à acusação", "alegações finais", "liberdade provisória", "queixa-crime"},
	},
	types.AreaTributario: {
		keywords: []string{"tributo", "imposto", "icms", "iss", "receita federal", "crédito tributário", "execução fiscal", "contribuinte", "fazenda pública", "lançamento"},
		subtypes: []string{"execução fiscal", "mandado de segurança", "repetição de indébito", "anulatória", "compensação"},
	},
	types.AreaFamilia: {
		keywords: []string{"divórcio", "alimentos", "guarda", "pensão alimentícia", "união estável", "cônjuge", "filhos", "partilha", "regime de bens", "visitas"},
		subtypes: []string{"divórcio", "alimentos", "guarda", "união estável", "inventário"},
	},
	types.AreaEmpresarial: {
		keywords: []string{"sociedade", "empresa", "contrato social", "sócio", "falência", "recuperação judicial", "cnpj", "acionista", "quotas", "junta comercial"},
		subtypes: []string{"recuperação judicial", "falência", "dissolução", "contrato social", "acordo de sócios"},
	},
}

// Classifier constants
const (
	maxConfidence      = 95.0
	fallbackConfidence = 30.0
)
