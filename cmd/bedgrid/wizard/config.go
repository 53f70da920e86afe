package wizard

import (
	"fmt"

	"github.com/mrsinham/bedgrid/internal/ward"
)

// LoadFromYAML reads a roster file into a wizard state.
func LoadFromYAML(path string) (*WizardState, error) {
	r, err := ward.LoadRoster(path)
	if err != nil {
		return nil, err
	}
	return FromRoster(r), nil
}

// SaveToYAML validates the state and writes it as a roster file.
func SaveToYAML(s *WizardState, path string) error {
	r, err := ToRoster(s)
	if err != nil {
		return fmt.Errorf("invalid ward: %w", err)
	}
	return ward.SaveRoster(r, path)
}
