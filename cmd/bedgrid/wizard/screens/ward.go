package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/components"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/types"
	"github.com/mrsinham/bedgrid/internal/ward"
)

// WardScreen is the first wizard screen: the ward dimensions.
type WardScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.WardConfig
	done      bool
	cancelled bool

	// huh binds to strings
	rowsStr string
	colsStr string
}

// NewWardScreen creates the dimensions screen. Zero dimensions default to 1.
func NewWardScreen(config *types.WardConfig) *WardScreen {
	if config.Rows == 0 {
		config.Rows = 1
	}
	if config.Cols == 0 {
		config.Cols = 1
	}

	s := &WardScreen{
		helpPanel: components.NewHelpPanel(),
		config:    config,
		rowsStr:   strconv.Itoa(config.Rows),
		colsStr:   strconv.Itoa(config.Cols),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("rows").
				Title(fmt.Sprintf("Filas de camas (máx %d)", ward.MaxRows)).
				Value(&s.rowsStr).
				Validate(validateRange(1, ward.MaxRows)),

			huh.NewInput().
				Key("cols").
				Title(fmt.Sprintf("Columnas de camas (máx %d)", ward.MaxCols)).
				Value(&s.colsStr).
				Validate(validateRange(1, ward.MaxCols)),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *WardScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *WardScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.helpPanel.SetWidth(msg.Width / 2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.config.Rows = atoi(s.rowsStr)
		s.config.Cols = atoi(s.colsStr)
	}

	return s, cmd
}

// View implements tea.Model
func (s *WardScreen) View() string {
	if s.cancelled {
		return "Cancelado.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("BEDGRID - Ingreso de pacientes"),
		components.SubtitleStyle.Render("Dimensiones de la sala"),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Siguiente campo | Enter: Confirmar | Esc: Cancelar",
	)
}

// Done returns true if the form was completed
func (s *WardScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *WardScreen) Cancelled() bool { return s.cancelled }
