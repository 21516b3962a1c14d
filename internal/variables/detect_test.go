package variables

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/legal-template-agent/internal/types"
)

func findVariable(vars []types.Variable, name string) *types.Variable {
	for i := range vars {
		if vars[i].Name == name {
			return &vars[i]
		}
	}
	return nil
}

func TestDetect_NamedPlaceholders(t *testing.T) {
	text := "Contratante: {{NOME_CLIENTE}}, nascido em {{DATA_NASCIMENTO}}."

	vars := Detect(text)

	require.Len(t, vars, 2)

	name := findVariable(vars, "NOME_CLIENTE")
	require.NotNil(t, name)
	assert.Equal(t, types.VariableText, name.Type)
	assert.InDelta(t, 0.9, name.Confidence, 0.001)
	assert.False(t, name.Required)
	assert.Equal(t, []string{"{{NOME_CLIENTE}}"}, name.Examples)

	date := findVariable(vars, "DATA_NASCIMENTO")
	require.NotNil(t, date)
	assert.Equal(t, types.VariableDate, date.Type)
	assert.InDelta(t, 0.95, date.Confidence, 0.001)
	assert.False(t, date.Required)

	assert.Equal(t, "DATA_NASCIMENTO", vars[0].Name, "higher confidence should sort first")
}

func TestDetect_TypedPlaceholders(t *testing.T) {
	tests := []struct {
		placeholder  string
		expectedName string
		expectedType types.VariableType
	}{
		{"{{valor_total}}", "VALOR_TOTAL", types.VariableCurrency},
		{"{{ PREÇO }}", "PREÇO", types.VariableCurrency},
		{"{{NUMERO_CONTRATO}}", "NUMERO_CONTRATO", types.VariableNumber},
		{"{{EMAIL_CONTATO}}", "EMAIL_CONTATO", types.VariableEmail},
		{"{{CPF_LOCATARIO}}", "CPF_LOCATARIO", types.VariableCPF},
		{"{{CNPJ}}", "CNPJ", types.VariableCNPJ},
		{"[NOME DO REU]", "NOME DO REU", types.VariableText},
	}

	for _, tt := range tests {
		t.Run(tt.placeholder, func(t *testing.T) {
			vars := Detect("Campo: " + tt.placeholder)
			v := findVariable(vars, tt.expectedName)
			require.NotNil(t, v, "expected variable %s in %+v", tt.expectedName, vars)
			assert.Equal(t, tt.expectedType, v.Type)
		})
	}
}

func TestDetect_GeneratedNamesAreSequential(t *testing.T) {
	text := "Data: DD/MM/AAAA. Prazo: __/__/____. CPF XXX.XXX.XXX-XX, valor R$ ______"

	vars := Detect(text)

	date1 := findVariable(vars, "DATA_1")
	require.NotNil(t, date1)
	assert.Equal(t, types.VariableDate, date1.Type)
	assert.Equal(t, "DD/MM/AAAA", date1.Pattern)

	require.NotNil(t, findVariable(vars, "DATA_2"))
	require.NotNil(t, findVariable(vars, "VALOR_3"))
	require.NotNil(t, findVariable(vars, "CPF_4"))
}

func TestDetect_ExplicitSequence(t *testing.T) {
	seq := &Sequence{}
	seq.Next()
	seq.Next()

	vars := DetectWithSequence("Assinado em DD/MM/AAAA", seq)
	require.NotNil(t, findVariable(vars, "DATA_3"))
}

func TestDetect_ExamplesAccumulate(t *testing.T) {
	text := "{{DATA_INICIO}} e {{ DATA_INICIO }} e {{DATA_INICIO}}"

	vars := Detect(text)

	require.Len(t, vars, 1)
	assert.Equal(t, types.VariableDate, vars[0].Type)
	assert.InDelta(t, 0.95, vars[0].Confidence, 0.001)
	assert.Equal(t, []string{"{{DATA_INICIO}}", "{{ DATA_INICIO }}"}, vars[0].Examples)
}

func TestDetect_RequiredNearObligationWord(t *testing.T) {
	text := "Preenchimento obrigatório: {{NOME_AUTOR}}.\n" + strings.Repeat("texto neutro ", 30) + "{{OBSERVACOES}}"

	vars := Detect(text)

	author := findVariable(vars, "NOME_AUTOR")
	require.NotNil(t, author)
	assert.True(t, author.Required)

	notes := findVariable(vars, "OBSERVACOES")
	require.NotNil(t, notes)
	assert.False(t, notes.Required)
}

func TestDetect_ContextualVariables(t *testing.T) {
	text := "Informe o nome do requerente, o endereço completo, o processo nº e a comarca de origem, além do valor da causa."

	vars := Detect(text)

	for _, name := range []string{"NOME_PARTE", "ENDERECO", "NUMERO_PROCESSO", "COMARCA", "VALOR_CAUSA"} {
		v := findVariable(vars, name)
		require.NotNil(t, v, "expected contextual variable %s", name)
		assert.InDelta(t, 0.85, v.Confidence, 0.001)
		assert.True(t, v.Required)
	}
	assert.Equal(t, types.VariableCurrency, findVariable(vars, "VALOR_CAUSA").Type)
}

func TestDetect_ContextualDoesNotOverrideExplicit(t *testing.T) {
	vars := Detect("Comarca de {{COMARCA}}")

	v := findVariable(vars, "COMARCA")
	require.NotNil(t, v)
	assert.InDelta(t, 0.9, v.Confidence, 0.001)
	assert.Equal(t, "{{COMARCA}}", v.Pattern)
}

func TestDetect_TruncatesToTwenty(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "{{CAMPO_%02d}} ", i)
	}

	vars := Detect(sb.String())
	assert.Len(t, vars, MaxVariables)
}

func TestDetect_Invariants(t *testing.T) {
	inputs := []string{
		"",
		"sem variáveis",
		"{{A}} [B] {{NOME}} {{nome}} {{DATA_X}} {{data_x}} DD/MM/AAAA",
		"{{VALOR}} R$ XXX,XX processo nº 123 joao@example.com 12.345.678/0001-90",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			vars := Detect(input)
			seen := make(map[string]bool)
			for i, v := range vars {
				assert.False(t, seen[v.Name], "duplicate variable %s", v.Name)
				seen[v.Name] = true
				assert.Greater(t, len([]rune(v.Name)), 1)
				assert.GreaterOrEqual(t, v.Confidence, 0.0)
				assert.LessOrEqual(t, v.Confidence, 1.0)
				if i > 0 {
					assert.GreaterOrEqual(t, vars[i-1].Confidence, v.Confidence)
				}
			}
			assert.LessOrEqual(t, len(vars), MaxVariables)
			assert.Equal(t, vars, Detect(input), "detection should be deterministic")
		})
	}
}

func TestDetect_MaxConfidenceWins(t *testing.T) {
	vars := Detect("{{nome}} e {{data_x}} e {{DATA_X}}")

	date := findVariable(vars, "DATA_X")
	require.NotNil(t, date)
	assert.InDelta(t, 0.95, date.Confidence, 0.001)
	assert.Len(t, date.Examples, 2)
	assert.NotNil(t, findVariable(vars, "NOME"))
}

func TestDetect_GeneratedNamesSkipExistingPlaceholders(t *testing.T) {
	vars := Detect("Data: {{DATA_1}} e também DD/MM/AAAA no rodapé.")

	require.Len(t, vars, 2)

	named := findVariable(vars, "DATA_1")
	require.NotNil(t, named)
	assert.Equal(t, []string{"{{DATA_1}}"}, named.Examples)

	generated := findVariable(vars, "DATA_2")
	require.NotNil(t, generated)
	assert.Equal(t, []string{"DD/MM/AAAA"}, generated.Examples)
	assert.InDelta(t, 0.7, generated.Confidence, 0.001)
}

func TestDetect_ProcessNumberPhrase(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"ordinal sign", "Referente ao processo nº 0001234-56.2024", true},
		{"degree sign", "Referente ao processo n° 0001234-56.2024", true},
		{"abbreviation with o", "Referente ao processo no. 0001234-56.2024", true},
		{"abbreviation with dot", "Referente ao processo n. 0001234-56.2024", true},
		{"ordinary prose", "O processo normal segue o rito ordinário previsto em lei.", false},
		{"word starting with o", "O processo novo foi distribuído.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := findVariable(Detect(tt.text), "NUMERO_PROCESSO")
			assert.Equal(t, tt.expected, v != nil)
		})
	}
}

func TestDetect_TiesSortByName(t *testing.T) {
	vars := Detect("{{ZETA}} {{ALFA}} {{MEIO}}")

	require.Len(t, vars, 3)
	assert.Equal(t, "ALFA", vars[0].Name)
	assert.Equal(t, "MEIO", vars[1].Name)
	assert.Equal(t, "ZETA", vars[2].Name)
}
