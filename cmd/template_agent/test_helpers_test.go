package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the template_agent binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "template_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

const sampleTemplate = `EXCELENTÍSSIMO SENHOR DOUTOR JUIZ DE DIREITO DA VARA CÍVEL
{{NOME_AUTOR}}, brasileiro, vem propor AÇÃO DE COBRANÇA
DOS FATOS
O contrato firmado em {{DATA_CONTRATO}} não foi cumprido, restando débito de {{VALOR_DEBITO}}.
DOS PEDIDOS
Requer a condenação ao pagamento, nos termos do código civil.`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
