// Package types holds the wizard state shared by the wizard and its screens.
package types

import "github.com/mrsinham/bedgrid/internal/ward"

// WizardState holds everything entered in the wizard.
type WizardState struct {
	Ward WardConfig
	// Beds are in row-major order, Rows*Cols of them once the ward screen
	// is done.
	Beds []BedConfig
}

// WardConfig holds the ward dimensions.
type WardConfig struct {
	Rows int
	Cols int
}

// BedConfig holds the patient entered for one bed.
type BedConfig struct {
	Name         string
	Age          int
	NationalID   string
	DaysAdmitted int
}

// Patient converts the bed to a ward record.
func (b BedConfig) Patient() ward.Patient {
	return ward.Patient{
		Name:         b.Name,
		Age:          b.Age,
		NationalID:   b.NationalID,
		DaysAdmitted: b.DaysAdmitted,
	}
}

// Patients converts every bed of the state.
func (s *WizardState) Patients() []ward.Patient {
	out := make([]ward.Patient, len(s.Beds))
	for i, b := range s.Beds {
		out[i] = b.Patient()
	}
	return out
}
