// Package structure infers the section layout of a legal document template from its plain text.
package structure

import (
	"regexp"

	"github.com/jonathan/legal-template-agent/internal/types"
)

// sectionPattern maps a line matcher to the section it announces
type sectionPattern struct {
	re          *regexp.Regexp
	name        string
	sectionType types.SectionType
}

// numberingPrefix accepts optional heading numbering such as "I -", "2.", "III." or "1)"
const numberingPrefix = `^(?:(?:[IVXLC]+|\d+)\s*[-–.)]\s*)?`

// sectionPatterns is evaluated in order; the first match for a line wins
var sectionPatterns = []sectionPattern{
	{
		re:          regexp.MustCompile(`(?i)^(?:EXCELENT[ÍI]SSIM[OA]|EXM[OA]\.?|ILUSTR[ÍI]SSIM[OA]|ILM[OA]\.?|MERIT[ÍI]SSIM[OA]|SENHOR(?:A)?\s+DOUTOR(?:A)?)\b`),
		name:        "Endereçamento",
		sectionType: types.SectionHeader,
	},
	{
		re:          regexp.MustCompile(`(?i)` + numberingPrefix + `(?:DA\s+QUALIFICA[ÇC][ÃA]O|QUALIFICA[ÇC][ÃA]O\s+DAS\s+PARTES|DAS\s+PARTES)\b`),
		name:        "Qualificação das Partes",
		sectionType: types.SectionHeader,
	},
	{
		re:          regexp.MustCompile(`(?i)` + numberingPrefix + `(?:DOS?\s+FATOS?|RELAT[ÓO]RIO|DA\s+S[ÍI]NTESE\s+F[ÁA]TICA)\b`),
		name:        "Dos Fatos",
		sectionType: types.SectionBody,
	},
	{
		re:          regexp.MustCompile(`(?i)` + numberingPrefix + `(?:DO\s+DIREITO|DOS\s+FUNDAMENTOS(?:\s+JUR[ÍI]DICOS)?|FUNDAMENTA[ÇC][ÃA]O(?:\s+JUR[ÍI]DICA)?)\b`),
		name:        "Do Direito",
		sectionType: types.SectionBody,
	},
	{
		re:          regexp.MustCompile(`(?i)` + numberingPrefix + `(?:DOS?\s+PEDIDOS?|DOS\s+REQUERIMENTOS)\b`),
		name:        "Dos Pedidos",
		sectionType: types.SectionConclusion,
	},
	{
		re:          regexp.MustCompile(`(?i)^(?:TERMOS\s+EM\s+QUE|NESTES\s+TERMOS|PEDE\s+DEFERIMENTO|CONCLUS[ÃA]O)\b`),
		name:        "Encerramento",
		sectionType: types.SectionConclusion,
	},
	{
		re:          regexp.MustCompile(`(?i)^[\p{L} ]{3,80},\s*(?:brasileir[oa]|nacionalidade)\b`),
		name:        "Qualificação das Partes",
		sectionType: types.SectionHeader,
	},
}

// upperHeadingRe accepts only upper-case Latin letters (accented included) and spaces
var upperHeadingRe = regexp.MustCompile(`^[A-ZÀÁÂÃÄÇÈÉÊËÌÍÎÏÑÒÓÔÕÖÙÚÛÜÝ ]+$`)

// headingTypeKeywords infers the type of a free-form upper-case heading.
// Header keywords are checked first, then conclusion keywords; anything else is body.
var (
	headerHeadingKeywords     = []string{"EXCELENT", "QUALIFICA", "PARTES", "PREÂMBULO", "ENDEREÇAMENTO", "IDENTIFICAÇÃO"}
	conclusionHeadingKeywords = []string{"PEDIDO", "REQUERIMENTO", "CONCLUS", "TERMOS", "ENCERRAMENTO", "DISPOSIÇÕES FINAIS"}
)
