package wizard

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/components"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/screens"
	"github.com/mrsinham/bedgrid/internal/util"
	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/rs/zerolog/log"
)

// ErrCancelled is returned by Run when the user leaves the wizard without
// confirming the ward.
var ErrCancelled = errors.New("wizard cancelled")

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseWard Phase = iota
	PhaseBed
	PhaseBulkBed // choice for the beds after the first
	PhaseSummary
	PhaseSaveRoster
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *WizardState
	phase Phase
	rng   *rand.Rand

	wardScreen    *screens.WardScreen
	bedScreen     *screens.BedScreen
	bulkBedScreen *screens.BulkBedScreen
	summaryScreen *screens.SummaryScreen
	errorScreen   *screens.ErrorScreen

	saveRosterForm *huh.Form
	rosterPath     string

	currentBed int

	confirmed bool
	cancelled bool
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *WizardState) *Wizard {
	if state == nil {
		state = &WizardState{Ward: WardConfig{Rows: 1, Cols: 1}}
	}

	w := &Wizard{
		state: state,
		phase: PhaseWard,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	w.wardScreen = screens.NewWardScreen(&w.state.Ward)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.wardScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch w.phase {
	case PhaseWard:
		return w.updateWard(msg)
	case PhaseBed:
		return w.updateBed(msg)
	case PhaseBulkBed:
		return w.updateBulkBed(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveRoster:
		return w.updateSaveRoster(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseWard:
		return w.wardScreen.View()
	case PhaseBed:
		return w.bedScreen.View()
	case PhaseBulkBed:
		return w.bulkBedScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveRoster:
		return w.viewSaveRoster()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

func (w *Wizard) updateWard(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.wardScreen.Update(msg)
	if ws, ok := model.(*screens.WardScreen); ok {
		w.wardScreen = ws
	}

	if w.wardScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.wardScreen.Done() {
		w.initializeBeds()
		w.transitionToBed(0)
		return w, w.bedScreen.Init()
	}

	return w, cmd
}

// initializeBeds sizes the bed list to the ward, keeping beds already
// entered or loaded from a roster.
func (w *Wizard) initializeBeds() {
	n := w.state.Ward.Rows * w.state.Ward.Cols
	beds := make([]BedConfig, n)
	copy(beds, w.state.Beds)
	w.state.Beds = beds
}

// position returns the bed coordinates of a row-major index.
func (w *Wizard) position(index int) ward.Position {
	return ward.Position{Row: index / w.state.Ward.Cols, Col: index % w.state.Ward.Cols}
}

func (w *Wizard) transitionToBed(index int) {
	w.currentBed = index
	w.phase = PhaseBed
	w.bedScreen = screens.NewBedScreen(
		&w.state.Beds[index],
		w.position(index),
		index,
		len(w.state.Beds),
	)
}

func (w *Wizard) updateBed(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.bedScreen.Update(msg)
	if bs, ok := model.(*screens.BedScreen); ok {
		w.bedScreen = bs
	}

	if w.bedScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.bedScreen.Done() {
		if w.currentBed == 0 && len(w.state.Beds) > 1 {
			w.phase = PhaseBulkBed
			w.bulkBedScreen = screens.NewBulkBedScreen(len(w.state.Beds) - 1)
			return w, w.bulkBedScreen.Init()
		}
		return w.advanceToNextBedOrSummary()
	}

	return w, cmd
}

func (w *Wizard) updateBulkBed(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.bulkBedScreen.Update(msg)
	if bs, ok := model.(*screens.BulkBedScreen); ok {
		w.bulkBedScreen = bs
	}

	if w.bulkBedScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.bulkBedScreen.Done() {
		if w.bulkBedScreen.Choice() == screens.BulkGenerate {
			w.generateRemainingBeds()
			return w.transitionToSummary()
		}
		return w.advanceToNextBedOrSummary()
	}

	return w, cmd
}

// generateRemainingBeds fills every bed after the first with a random patient.
func (w *Wizard) generateRemainingBeds() {
	for i := 1; i < len(w.state.Beds); i++ {
		p := util.GeneratePatient(w.rng)
		w.state.Beds[i] = BedConfig{
			Name:         p.Name,
			Age:          p.Age,
			NationalID:   p.NationalID,
			DaysAdmitted: p.DaysAdmitted,
		}
	}
	log.Debug().Int("beds", len(w.state.Beds)-1).Msg("remaining beds generated")
}

func (w *Wizard) advanceToNextBedOrSummary() (tea.Model, tea.Cmd) {
	if w.currentBed+1 < len(w.state.Beds) {
		w.transitionToBed(w.currentBed + 1)
		return w, w.bedScreen.Init()
	}
	return w.transitionToSummary()
}

func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(w.state)
	return w, w.summaryScreen.Init()
}

func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionConfirm:
			w.confirmed = true
			return w, tea.Quit
		case screens.SummaryActionSaveRoster:
			return w.transitionToSaveRoster()
		case screens.SummaryActionBack:
			w.transitionToBed(0)
			return w, w.bedScreen.Init()
		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

func (w *Wizard) transitionToSaveRoster() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveRoster
	w.rosterPath = "sala.yaml"

	w.saveRosterForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("roster_path").
				Title("Guardar la sala en").
				Description("Ruta del archivo YAML").
				Value(&w.rosterPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("la ruta es obligatoria")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveRosterForm.Init()
}

func (w *Wizard) updateSaveRoster(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveRosterForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveRosterForm = f
	}

	if w.saveRosterForm.State == huh.StateCompleted {
		if err := SaveToYAML(w.state, w.rosterPath); err != nil {
			w.err = err
			w.phase = PhaseError
			w.errorScreen = screens.NewErrorScreen(err)
			return w, nil
		}
		log.Info().Str("path", w.rosterPath).Msg("roster saved")
		return w.transitionToSummary()
	}

	return w, cmd
}

func (w *Wizard) viewSaveRoster() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Guardar sala"),
		"",
		w.saveRosterForm.View(),
		"",
		"Enter: Guardar | Esc: Volver",
	)
}

func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}
	return w, cmd
}

// Result returns the confirmed roster. It fails with ErrCancelled unless the
// user confirmed the summary.
func (w *Wizard) Result() (*ward.Roster, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.cancelled || !w.confirmed {
		return nil, ErrCancelled
	}
	return ToRoster(w.state)
}

// Run starts the admission wizard. If fromRoster is set, the beds are
// pre-filled from that roster file.
func Run(fromRoster string, opts ...tea.ProgramOption) (*ward.Roster, error) {
	var state *WizardState

	if fromRoster != "" {
		absPath, err := filepath.Abs(fromRoster)
		if err != nil {
			return nil, fmt.Errorf("resolving roster path: %w", err)
		}
		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return nil, fmt.Errorf("loading roster: %w", err)
		}
		state = loaded
	}

	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	p := tea.NewProgram(NewWizard(state), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}

	w, ok := finalModel.(*Wizard)
	if !ok {
		return nil, fmt.Errorf("unexpected wizard model %T", finalModel)
	}
	return w.Result()
}
