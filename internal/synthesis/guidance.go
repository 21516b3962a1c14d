package synthesis

import "github.com/jonathan/legal-template-agent/internal/types"

// areaGuidance holds the drafting guidance rendered for each legal area
var areaGuidance = map[types.LegalArea][]string{
	types.AreaCivil: {
		"Fundamente os pedidos no Código Civil e no Código de Processo Civil",
		"Indique com precisão o valor da causa e os danos alegados",
		"Descreva a relação jurídica entre as partes de forma cronológica",
	},
	types.AreaTrabalhista: {
		"Fundamente os pedidos na CLT e na jurisprudência do TST",
		"Especifique o período contratual, a função e a remuneração",
		"Liquide os pedidos sempre que possível, indicando valores",
	},
	types.AreaCriminal: {
		"Observe o Código Penal e o Código de Processo Penal",
		"Respeite os princípios da presunção de inocência e do contraditório",
		"Descreva a conduta e a tipificação de forma objetiva",
	},
	types.AreaTributario: {
		"Fundamente na Constituição Federal, no CTN e na legislação específica do tributo",
		"Identifique o tributo, o fato gerador e a competência",
		"Considere prazos de decadência e prescrição",
	},
	types.AreaFamilia: {
		"Priorize o melhor interesse da criança e do adolescente",
		"Fundamente no Código Civil e no Estatuto da Criança e do Adolescente",
		"Adote linguagem respeitosa e sensível ao contexto familiar",
	},
	types.AreaEmpresarial: {
		"Fundamente na legislação societária e no Código Civil",
		"Identifique corretamente sociedades, CNPJ e representantes legais",
		"Observe cláusulas contratuais e atos constitutivos",
	},
}

var defaultGuidance = []string{
	"Utilize linguagem jurídica formal e precisa",
	"Fundamente os pedidos na legislação aplicável",
}

// checklist is the fixed list of instructions closing every master prompt
var checklist = []string{
	"Mantenha a estrutura de seções na ordem apresentada",
	"Preencha todas as variáveis obrigatórias com dados fornecidos pelo usuário",
	"Não invente fatos, datas, valores ou dados das partes",
	"Utilize linguagem jurídica formal, clara e objetiva",
	"Cite a legislação e a jurisprudência pertinentes quando aplicável",
	"Revise a coerência entre fatos, fundamentos e pedidos",
	"Sinalize informações ausentes em vez de presumir valores",
}

func guidanceFor(area types.LegalArea) []string {
	if g, ok := areaGuidance[area]; ok {
		return g
	}
	return defaultGuidance
}
