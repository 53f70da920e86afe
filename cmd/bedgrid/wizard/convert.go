package wizard

import (
	"github.com/mrsinham/bedgrid/internal/ward"
)

// ToRoster converts the wizard state to a validated roster.
func ToRoster(s *WizardState) (*ward.Roster, error) {
	r := &ward.Roster{
		Rows: s.Ward.Rows,
		Cols: s.Ward.Cols,
		Beds: s.Patients(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// FromRoster builds a wizard state pre-filled with the roster's beds.
func FromRoster(r *ward.Roster) *WizardState {
	s := &WizardState{
		Ward: WardConfig{Rows: r.Rows, Cols: r.Cols},
		Beds: make([]BedConfig, len(r.Beds)),
	}
	for i, p := range r.Beds {
		s.Beds[i] = BedConfig{
			Name:         p.Name,
			Age:          p.Age,
			NationalID:   p.NationalID,
			DaysAdmitted: p.DaysAdmitted,
		}
	}
	return s
}
