package ward

import (
	"fmt"
	"os"

	"github.com/mrsinham/bedgrid/internal/validate"
	"gopkg.in/yaml.v3"
)

// Roster is the YAML form of a ward: its dimensions and the patients in
// row-major order.
type Roster struct {
	Rows int       `yaml:"rows" validate:"min=1,max=10"`
	Cols int       `yaml:"cols" validate:"min=1,max=10"`
	Beds []Patient `yaml:"beds" validate:"dive"`
}

// Validate checks the dimensions, the bed count and every record.
func (r *Roster) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if want := r.Rows * r.Cols; len(r.Beds) != want {
		return fmt.Errorf("roster lists %d beds, %dx%d ward needs %d", len(r.Beds), r.Rows, r.Cols, want)
	}
	return nil
}

// Provider feeds the roster into Store.Load.
func (r *Roster) Provider() Provider {
	return FromSlice(r.Beds, r.Cols)
}

// LoadInto validates the roster and loads it into s.
func (r *Roster) LoadInto(s *Store) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.Load(r.Rows, r.Cols, r.Provider())
}

// LoadRoster reads and validates a roster file.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return &r, nil
}

// SaveRoster writes r as YAML.
func SaveRoster(r *Roster, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}
