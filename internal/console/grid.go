package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bedgrid/internal/query"
)

// PrintGrid writes the bed grid, one "[tok] " cell per bed, followed by the
// legend. Colors are only emitted when w is a terminal.
func PrintGrid(w io.Writer, grid [][]string) {
	r := lipgloss.NewRenderer(w)
	occupied := r.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	vacant := r.NewStyle().Faint(true)

	var sb strings.Builder
	sb.WriteString("\n--- Gráfico de camas ---\n")
	for _, row := range grid {
		for _, tok := range row {
			style := occupied
			if tok == query.VacantToken {
				style = vacant
			}
			sb.WriteString("[" + style.Render(tok) + "] ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nLeyenda: '%s' indica cama vacía.\n", query.VacantToken)

	_, _ = io.WriteString(w, sb.String())
}
