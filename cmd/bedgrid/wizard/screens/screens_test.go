package screens

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/types"
	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/stretchr/testify/assert"
)

func TestValidateRange(t *testing.T) {
	v := validateRange(1, 10)
	assert.NoError(t, v("1"))
	assert.NoError(t, v(" 10 "))
	assert.ErrorContains(t, v("0"), "entre 1 y 10")
	assert.ErrorContains(t, v("11"), "entre 1 y 10")
	assert.ErrorContains(t, v("-3"), "números enteros")
	assert.ErrorContains(t, v(""), "números enteros")
	assert.ErrorContains(t, v("3.5"), "números enteros")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("Ana Maria"))
	assert.Error(t, validateName(""))
	assert.Error(t, validateName("Ana3"))
	assert.Error(t, validateName("José"))
}

func TestValidateNationalID(t *testing.T) {
	assert.NoError(t, validateNationalID("12345678"))
	assert.NoError(t, validateNationalID(" 12345678 "))
	assert.Error(t, validateNationalID("1234567"))
	assert.Error(t, validateNationalID("1234567a"))
}

func TestWardScreen_Defaults(t *testing.T) {
	cfg := &types.WardConfig{}
	s := NewWardScreen(cfg)
	assert.Equal(t, types.WardConfig{Rows: 1, Cols: 1}, *cfg)
	assert.Equal(t, "1", s.rowsStr)
}

func TestWardScreen_Esc(t *testing.T) {
	s := NewWardScreen(&types.WardConfig{})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, s.Cancelled())
	assert.False(t, s.Done())
	assert.Equal(t, "Cancelado.\n", s.View())
}

func TestBedScreen_View(t *testing.T) {
	s := NewBedScreen(&types.BedConfig{}, ward.Position{Row: 1, Col: 2}, 5, 9)
	view := s.View()
	assert.Contains(t, view, "CAMA 6/9")
	assert.Contains(t, view, "Paciente en cama (1,2)")
}

func TestBulkBedScreen_DefaultChoice(t *testing.T) {
	assert.Equal(t, BulkConfigure, NewBulkBedScreen(3).Choice())
}

func TestSummaryScreen_Preview(t *testing.T) {
	state := &types.WizardState{
		Ward: types.WardConfig{Rows: 1, Cols: 2},
		Beds: []types.BedConfig{{Name: "Ana", Age: 30}, {Name: "", Age: 40}},
	}
	s := NewSummaryScreen(state)

	assert.Contains(t, s.buildStats(), "1x2 camas, promedio de edad 35")
	preview := s.buildGridPreview()
	assert.True(t, strings.Contains(preview, "Ana") && strings.Contains(preview, "VAC"), preview)
	assert.Equal(t, SummaryActionConfirm, s.Action())
}

func TestErrorScreen(t *testing.T) {
	s := NewErrorScreen(errors.New("disco lleno"))
	assert.Contains(t, s.View(), "disco lleno")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, s.Done())
}
