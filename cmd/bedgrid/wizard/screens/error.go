package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/components"
)

// ErrorScreen displays an error and waits for the user to leave.
type ErrorScreen struct {
	err  error
	done bool
}

var (
	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	errorHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{err: err}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	}
	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder
	sb.WriteString(errorTitleStyle.Render("✗ Error"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Detalle:"))
	sb.WriteString("\n  ")
	sb.WriteString(errorMessageStyle.Render(s.err.Error()))
	sb.WriteString("\n\n")
	sb.WriteString(errorHintStyle.Render("Presione Enter o q para salir"))
	return sb.String()
}

// Done returns true if the user is finished
func (s *ErrorScreen) Done() bool { return s.done }

// Error returns the error
func (s *ErrorScreen) Error() error { return s.err }
