package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/help"
)

var (
	helpPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// HelpPanel shows the help text of the focused field.
type HelpPanel struct {
	currentField string
	width        int
}

// NewHelpPanel creates a new help panel
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{width: 60}
}

// SetField updates which field's help to display
func (h *HelpPanel) SetField(field string) {
	h.currentField = field
}

// SetWidth updates the panel width, never below 30 columns.
func (h *HelpPanel) SetWidth(width int) {
	h.width = max(width, 30)
}

// Field returns the field whose help is displayed.
func (h *HelpPanel) Field() string {
	return h.currentField
}

// View renders the help panel
func (h *HelpPanel) View() string {
	style := helpPanelStyle.Width(h.width - 4)

	text, ok := help.Texts[h.currentField]
	if !ok {
		return style.Render("Seleccione un campo para ver la ayuda")
	}

	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render(text.Title))
	sb.WriteString("\n\n")
	sb.WriteString(helpDescStyle.Render(text.Description))
	if text.Details != "" {
		sb.WriteString("\n\n")
		sb.WriteString(helpDetailStyle.Render(text.Details))
	}

	return style.Render(sb.String())
}
