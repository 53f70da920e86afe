package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/components"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/types"
	"github.com/mrsinham/bedgrid/internal/console"
	"github.com/mrsinham/bedgrid/internal/ward"
)

// BedScreen enters the patient of a single bed.
type BedScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	bed       *types.BedConfig
	pos       ward.Position
	index     int
	total     int
	done      bool
	cancelled bool

	ageStr  string
	daysStr string
}

// NewBedScreen creates the screen for the bed at pos, the index-th of total.
func NewBedScreen(bed *types.BedConfig, pos ward.Position, index, total int) *BedScreen {
	s := &BedScreen{
		helpPanel: components.NewHelpPanel(),
		bed:       bed,
		pos:       pos,
		index:     index,
		total:     total,
		ageStr:    strconv.Itoa(bed.Age),
		daysStr:   strconv.Itoa(bed.DaysAdmitted),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("bed_name").
				Title("Nombre").
				Value(&bed.Name).
				Validate(validateName),

			huh.NewInput().
				Key("bed_age").
				Title("Edad").
				Value(&s.ageStr).
				Validate(validateRange(0, console.MaxAge)),

			huh.NewInput().
				Key("bed_dni").
				Title("DNI").
				Placeholder("8 dígitos").
				Value(&bed.NationalID).
				Validate(validateNationalID),

			huh.NewInput().
				Key("bed_days").
				Title("Días internado").
				Value(&s.daysStr).
				Validate(validateRange(0, console.MaxDays)),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *BedScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *BedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		s.bed.NationalID = strings.TrimSpace(s.bed.NationalID)
		s.bed.Age = atoi(s.ageStr)
		s.bed.DaysAdmitted = atoi(s.daysStr)
	}

	return s, cmd
}

// View implements tea.Model
func (s *BedScreen) View() string {
	if s.cancelled {
		return "Cancelado.\n"
	}

	title := components.TitleStyle.Render(fmt.Sprintf("CAMA %d/%d", s.index+1, s.total))
	subtitle := components.SubtitleStyle.Render(fmt.Sprintf("Paciente en cama %s", s.pos))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Siguiente campo | Enter: Confirmar | Esc: Cancelar",
	)
}

// Done returns true if the form was completed
func (s *BedScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *BedScreen) Cancelled() bool { return s.cancelled }

// Bed returns the entered patient
func (s *BedScreen) Bed() *types.BedConfig { return s.bed }

// BulkBedChoice is the user's choice for the beds after the first one.
type BulkBedChoice int

const (
	// BulkGenerate fills the remaining beds with generated patients
	BulkGenerate BulkBedChoice = iota
	// BulkConfigure asks for each remaining bed
	BulkConfigure
)

// BulkBedScreen asks how to fill the beds left after the first one.
type BulkBedScreen struct {
	form      *huh.Form
	choice    string
	done      bool
	cancelled bool
}

// NewBulkBedScreen creates the choice screen for remainingCount beds.
func NewBulkBedScreen(remainingCount int) *BulkBedScreen {
	s := &BulkBedScreen{choice: "configure"}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Camas restantes").
				Description(fmt.Sprintf("Se ingresó la primera cama. Para las %d camas restantes:", remainingCount)),

			huh.NewSelect[string]().
				Key("bulk_choice").
				Title("¿Qué desea hacer?").
				Options(
					huh.NewOption("Ingresar cada cama", "configure"),
					huh.NewOption("Generar pacientes aleatorios", "generate"),
				).
				Value(&s.choice),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *BulkBedScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *BulkBedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *BulkBedScreen) View() string {
	if s.cancelled {
		return "Cancelado.\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("CAMAS RESTANTES"),
		s.form.View(),
		"",
		"Enter: Seleccionar | Esc: Cancelar",
	)
}

// Done returns true if the form was completed
func (s *BulkBedScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *BulkBedScreen) Cancelled() bool { return s.cancelled }

// Choice returns the selected option
func (s *BulkBedScreen) Choice() BulkBedChoice {
	if s.choice == "generate" {
		return BulkGenerate
	}
	return BulkConfigure
}
