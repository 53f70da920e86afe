package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/components"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/types"
	"github.com/mrsinham/bedgrid/internal/query"
	"github.com/mrsinham/bedgrid/internal/ward"
)

// SummaryAction is the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionConfirm admits the patients and closes the wizard
	SummaryActionConfirm SummaryAction = iota
	// SummaryActionSaveRoster saves the ward as a roster YAML file
	SummaryActionSaveRoster
	// SummaryActionBack returns to the first bed
	SummaryActionBack
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionConfirm    = "confirm"
	actionSaveRoster = "save"
	actionBack       = "back"
	actionCancel     = "cancel"
)

// SummaryScreen previews the ward before it is admitted.
type SummaryScreen struct {
	form      *huh.Form
	state     *types.WizardState
	action    string
	done      bool
	cancelled bool
}

// NewSummaryScreen creates the summary of state.
func NewSummaryScreen(state *types.WizardState) *SummaryScreen {
	s := &SummaryScreen{state: state, action: actionConfirm}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("summary_action").
				Title("¿Qué desea hacer?").
				Options(
					huh.NewOption("Ingresar pacientes y abrir el menú", actionConfirm),
					huh.NewOption("Guardar la sala en YAML", actionSaveRoster),
					huh.NewOption("Volver a editar", actionBack),
					huh.NewOption("Cancelar y salir", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelado.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("RESUMEN DE LA SALA"),
		s.buildStats(),
		"",
		s.buildGridPreview(),
		"",
		s.form.View(),
		"",
		"Enter: Seleccionar | Esc: Cancelar",
	)
}

// engine loads the entered beds into a scratch store.
func (s *SummaryScreen) engine() (*query.Engine, error) {
	store := ward.NewStore()
	err := store.Load(s.state.Ward.Rows, s.state.Ward.Cols, ward.FromSlice(s.state.Patients(), s.state.Ward.Cols))
	if err != nil {
		return nil, err
	}
	return query.New(store), nil
}

func (s *SummaryScreen) buildStats() string {
	e, err := s.engine()
	if err != nil {
		return components.SubtitleStyle.Render(err.Error())
	}
	avg, err := e.AverageAge()
	if err != nil {
		return components.SubtitleStyle.Render(err.Error())
	}
	return components.SubtitleStyle.Render(fmt.Sprintf("%dx%d camas, promedio de edad %.6g",
		s.state.Ward.Rows, s.state.Ward.Cols, avg))
}

func (s *SummaryScreen) buildGridPreview() string {
	e, err := s.engine()
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, row := range e.RenderGrid() {
		for _, tok := range row {
			style := components.OccupiedStyle
			if tok == query.VacantToken {
				style = components.VacantStyle
			}
			sb.WriteString("[" + style.Render(tok) + "] ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Done returns true if the form was completed
func (s *SummaryScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool { return s.cancelled }

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionSaveRoster:
		return SummaryActionSaveRoster
	case actionBack:
		return SummaryActionBack
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionConfirm
	}
}
