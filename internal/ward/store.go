// Package ward holds the bed grid: a fixed-capacity 2D store of patient
// records with the active dimensions chosen when the ward is loaded.
package ward

import (
	"errors"
	"fmt"
	"iter"

	"github.com/mrsinham/bedgrid/internal/validate"
)

// Capacity of the bed grid.
const (
	MaxRows = 10
	MaxCols = 10
)

var (
	// ErrInvalidDimensions is returned by Load for sizes outside [1, Max].
	ErrInvalidDimensions = errors.New("invalid ward dimensions")
	// ErrOutOfBounds reports a position outside the active grid.
	ErrOutOfBounds = errors.New("position outside the active ward")
)

// Patient is the record stored in each bed.
type Patient struct {
	Name         string `yaml:"name" validate:"required,letters"`
	Age          int    `yaml:"age" validate:"gte=0,lte=120"`
	NationalID   string `yaml:"dni" validate:"nationalid"`
	DaysAdmitted int    `yaml:"days_admitted" validate:"gte=0"`
}

// Validate checks every field rule of the record.
func (p Patient) Validate() error {
	return validate.Struct(p)
}

// Position addresses a bed by row and column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Provider returns the record for one bed during Load.
type Provider func(row, col int) (Patient, error)

// Store is the bed grid. The zero value is an empty ward ready for Load.
type Store struct {
	beds [MaxRows][MaxCols]Patient
	rows int
	cols int
}

// NewStore returns an empty ward.
func NewStore() *Store {
	return &Store{}
}

// Load sets the active dimensions and fills every active bed in row-major
// order from provide. If provide fails the store keeps its previous contents.
func (s *Store) Load(rows, cols int, provide Provider) error {
	if rows < 1 || rows > MaxRows || cols < 1 || cols > MaxCols {
		return fmt.Errorf("%w: %dx%d (max %dx%d)", ErrInvalidDimensions, rows, cols, MaxRows, MaxCols)
	}

	var beds [MaxRows][MaxCols]Patient
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p, err := provide(i, j)
			if err != nil {
				return fmt.Errorf("load bed (%d,%d): %w", i, j, err)
			}
			beds[i][j] = p
		}
	}

	s.beds = beds
	s.rows = rows
	s.cols = cols
	return nil
}

// Rows returns the number of active rows.
func (s *Store) Rows() int { return s.rows }

// Cols returns the number of active columns.
func (s *Store) Cols() int { return s.cols }

// Len returns the number of active beds.
func (s *Store) Len() int { return s.rows * s.cols }

// Contains reports whether (row, col) lies inside the active grid.
func (s *Store) Contains(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

// Get returns the record at (row, col).
func (s *Store) Get(row, col int) (Patient, error) {
	if !s.Contains(row, col) {
		return Patient{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, s.rows, s.cols)
	}
	return s.beds[row][col], nil
}

// All yields every active bed in row-major order.
func (s *Store) All() iter.Seq2[Position, Patient] {
	return func(yield func(Position, Patient) bool) {
		for i := 0; i < s.rows; i++ {
			for j := 0; j < s.cols; j++ {
				if !yield(Position{Row: i, Col: j}, s.beds[i][j]) {
					return
				}
			}
		}
	}
}

// FromSlice returns a Provider reading records in row-major order from a
// slice laid out for cols columns.
func FromSlice(patients []Patient, cols int) Provider {
	return func(row, col int) (Patient, error) {
		idx := row*cols + col
		if idx < 0 || idx >= len(patients) {
			return Patient{}, fmt.Errorf("no record for bed (%d,%d): %d records given", row, col, len(patients))
		}
		return patients[idx], nil
	}
}
