// Package query computes the ward reports: average age, threshold filters,
// neighbors of a bed and the grid summary. Every operation is a read over a
// loaded ward.Store.
package query

import (
	"errors"
	"fmt"
	"iter"

	"github.com/mrsinham/bedgrid/internal/ward"
)

// VacantToken marks a bed without a patient name in RenderGrid.
const VacantToken = "VAC"

// tokenLength is the number of name characters shown per bed.
const tokenLength = 3

// ErrEmptyWard is returned by AverageAge when no beds are active.
var ErrEmptyWard = errors.New("ward has no active beds")

// Identity is a patient's name and DNI.
type Identity struct {
	Name       string
	NationalID string
}

// Neighbor is an occupied bed next to an anchor bed.
type Neighbor struct {
	Pos  ward.Position
	Name string
}

// Engine answers queries over one ward.
type Engine struct {
	store *ward.Store
}

// New returns an Engine reading from store.
func New(store *ward.Store) *Engine {
	return &Engine{store: store}
}

// AverageAge returns the mean age over all active beds.
func (e *Engine) AverageAge() (float64, error) {
	n := e.store.Len()
	if n == 0 {
		return 0, ErrEmptyWard
	}

	sum := 0
	for _, p := range e.store.All() {
		sum += p.Age
	}
	return float64(sum) / float64(n), nil
}

// FilterByMinDays yields, in row-major order, the names of patients admitted
// for more than threshold days.
func (e *Engine) FilterByMinDays(threshold int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range e.store.All() {
			if p.DaysAdmitted > threshold && !yield(p.Name) {
				return
			}
		}
	}
}

// FilterAboveAge yields, in row-major order, the patients strictly older
// than threshold.
func (e *Engine) FilterAboveAge(threshold float64) iter.Seq[Identity] {
	return func(yield func(Identity) bool) {
		for _, p := range e.store.All() {
			if float64(p.Age) > threshold && !yield(Identity{Name: p.Name, NationalID: p.NationalID}) {
				return
			}
		}
	}
}

// AdjacentTo returns the beds in the Moore neighborhood of (row, col) that
// fall inside the ward, scanning rows top to bottom and columns left to
// right.
func (e *Engine) AdjacentTo(row, col int) ([]Neighbor, error) {
	if !e.store.Contains(row, col) {
		return nil, fmt.Errorf("anchor: %w: (%d,%d)", ward.ErrOutOfBounds, row, col)
	}

	neighbors := make([]Neighbor, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p, err := e.store.Get(row+dx, col+dy)
			if err != nil {
				continue
			}
			neighbors = append(neighbors, Neighbor{
				Pos:  ward.Position{Row: row + dx, Col: col + dy},
				Name: p.Name,
			})
		}
	}
	return neighbors, nil
}

// Lookup returns the patient at (row, col).
func (e *Engine) Lookup(row, col int) (ward.Patient, error) {
	return e.store.Get(row, col)
}

// RenderGrid returns one display token per bed: the first three characters
// of the name, or VacantToken when the name is empty.
func (e *Engine) RenderGrid() [][]string {
	grid := make([][]string, e.store.Rows())
	for pos, p := range e.store.All() {
		if pos.Col == 0 {
			grid[pos.Row] = make([]string, 0, e.store.Cols())
		}
		grid[pos.Row] = append(grid[pos.Row], Token(p.Name))
	}
	return grid
}

// Token is the grid label for a patient name.
func Token(name string) string {
	if name == "" {
		return VacantToken
	}
	r := []rune(name)
	if len(r) > tokenLength {
		r = r[:tokenLength]
	}
	return string(r)
}

// Names collects the neighbor names in order.
func Names(neighbors []Neighbor) []string {
	out := make([]string, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Name
	}
	return out
}
