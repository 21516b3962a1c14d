// Package variables detects fill-in placeholders in legal document templates.
package variables

import (
	"regexp"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// variablePattern tags a matcher with the type and base confidence it implies.
// Patterns without a capture group produce generated names.
type variablePattern struct {
	re         *regexp.Regexp
	varType    types.VariableType
	confidence float64
}

// variablePatterns is ordered from least to most specific
var variablePatterns = []variablePattern{
	// Generic placeholders
	{regexp.MustCompile(`\{\{\s*([\p{L}_][\p{L}\p{N}_ ]*?)\s*\}\}`), types.VariableText, 0.9},
	{regexp.MustCompile(`\[([\p{Lu}_][\p{Lu}\p{N}_ ]+)\]`), types.VariableText, 0.8},

	// Typed placeholders, recognized by name prefix
	{regexp.MustCompile(`(?i)\{\{\s*((?:DATA|DT)_?[\p{L}\p{N}_]*)\s*\}\}`), types.VariableDate, 0.95},
	{regexp.MustCompile(`(?i)\{\{\s*((?:VALOR|PRE[ÇC]O|QUANTIA|MONTANTE)_?[\p{L}\p{N}_]*)\s*\}\}`), types.VariableCurrency, 0.95},
	{regexp.MustCompile(`(?i)\{\{\s*((?:N[ÚU]MERO|NUM|QTD|QUANTIDADE)_[\p{L}\p{N}_]*)\s*\}\}`), types.VariableNumber, 0.92},
	{regexp.MustCompile(`(?i)\{\{\s*(E_?MAIL[\p{L}\p{N}_]*)\s*\}\}`), types.VariableEmail, 0.95},
	{regexp.MustCompile(`(?i)\{\{\s*(CPF[\p{L}\p{N}_]*)\s*\}\}`), types.VariableCPF, 0.95},
	{regexp.MustCompile(`(?i)\{\{\s*(CNPJ[\p{L}\p{N}_]*)\s*\}\}`), types.VariableCNPJ, 0.95},

	// Masked literals
	{regexp.MustCompile(`\b(?:DD|dd)/(?:MM|mm)/(?:AAAA|aaaa|YYYY|yyyy)\b|_{2}/_{2}/_{2,4}`), types.VariableDate, 0.7},
	{regexp.MustCompile(`R\$\s*(?:_{3,}|[Xx]{1,3}(?:[.,][Xx]{2,3})+)`), types.VariableCurrency, 0.75},
	{regexp.MustCompile(`\b(?:\d{3}|[Xx]{3})\.(?:\d{3}|[Xx]{3})\.(?:\d{3}|[Xx]{3})-(?:\d{2}|[Xx]{2})\b`), types.VariableCPF, 0.7},
	{regexp.MustCompile(`\b(?:\d{2}|[Xx]{2})\.(?:\d{3}|[Xx]{3})\.(?:\d{3}|[Xx]{3})/(?:\d{4}|[Xx]{4})-(?:\d{2}|[Xx]{2})\b`), types.VariableCNPJ, 0.7},
	{regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), types.VariableEmail, 0.6},
	{regexp.MustCompile(`(?i)\bn[º°o]\.?\s*_{3,}`), types.VariableNumber, 0.6},
}

// generatedPrefixes names unnamed matches by type
var generatedPrefixes = map[types.VariableType]string{
	types.VariableText:     "CAMPO",
	types.VariableDate:     "DATA",
	types.VariableNumber:   "NUMERO",
	types.VariableCurrency: "VALOR",
	types.VariableEmail:    "EMAIL",
	types.VariableCPF:      "CPF",
	types.VariableCNPJ:     "CNPJ",
}

// contextualPattern maps a phrase that implies a field to a synthetic variable
type contextualPattern struct {
	re      *regexp.Regexp
	name    string
	varType types.VariableType
}

// contextualConfidence is the fixed confidence of phrase-implied variables
const contextualConfidence = 0.85

var contextualPatterns = []contextualPattern{
	{regexp.MustCompile(`(?i)nome\s+d[oa]\s+(?:requerente|autor[a]?|r[ée]u|r[ée]|requerid[oa])`), "NOME_PARTE", types.VariableText},
	{regexp.MustCompile(`(?i)endere[çc]o\s+(?:completo|residencial)`), "ENDERECO", types.VariableText},
	{regexp.MustCompile(`(?i)processo\s+n(?:[º°]|o\.|\.)`), "NUMERO_PROCESSO", types.VariableNumber},
	{regexp.MustCompile(`(?i)comarca\s+de`), "COMARCA", types.VariableText},
	{regexp.MustCompile(`(?i)valor\s+da\s+(?:causa|condena[çc][ãa]o)`), "VALOR_CAUSA", types.VariableCurrency},
}

// obligationWords mark a variable as required when found near its first occurrence
var obligationWords = []string{"obrigatório", "necessário", "requerido", "essencial"}

// Detection limits
const (
	requiredWindow = 100
	MaxVariables   = 20
)
