package console

import (
	"bytes"
	"testing"
)

func TestPrintGrid(t *testing.T) {
	var buf bytes.Buffer
	PrintGrid(&buf, [][]string{
		{"Ana", "VAC"},
		{"Bar", "Li"},
	})

	want := "\n--- Gráfico de camas ---\n" +
		"[Ana] [VAC] \n" +
		"[Bar] [Li] \n" +
		"\nLeyenda: 'VAC' indica cama vacía.\n"
	if buf.String() != want {
		t.Errorf("PrintGrid output = %q, want %q", buf.String(), want)
	}
}
