package console

import (
	"errors"
	"fmt"
	"math"

	"github.com/mrsinham/bedgrid/internal/ward"
)

// Field ranges for patient admission.
const (
	MaxAge  = 120
	MaxDays = math.MaxInt32
)

// LoadWard asks for the ward size and then for every patient, row by row.
// When the input ends the reader's ErrInputClosed is returned as is, without
// the bed position the store adds to provider failures.
func LoadWard(r *Reader, s *ward.Store) error {
	rows, err := r.ReadInteger(fmt.Sprintf("Ingrese cantidad de filas de camas (máx %d): ", ward.MaxRows), 1, ward.MaxRows)
	if err != nil {
		return err
	}
	cols, err := r.ReadInteger(fmt.Sprintf("Ingrese cantidad de columnas de camas (máx %d): ", ward.MaxCols), 1, ward.MaxCols)
	if err != nil {
		return err
	}

	var closed error
	provide := r.PatientProvider()
	err = s.Load(rows, cols, func(row, col int) (ward.Patient, error) {
		p, err := provide(row, col)
		if errors.Is(err, ErrInputClosed) {
			closed = err
		}
		return p, err
	})
	if closed != nil {
		return closed
	}
	return err
}

// PatientProvider prompts for the four fields of the patient in each bed.
func (r *Reader) PatientProvider() ward.Provider {
	return func(row, col int) (ward.Patient, error) {
		var (
			p   ward.Patient
			err error
		)
		fmt.Fprintf(r.out, "\nPaciente en cama (%d,%d):\n", row, col)

		if p.Name, err = r.ReadText("Nombre: "); err != nil {
			return ward.Patient{}, err
		}
		if p.Age, err = r.ReadInteger("Edad: ", 0, MaxAge); err != nil {
			return ward.Patient{}, err
		}
		if p.NationalID, err = r.ReadNationalID("DNI: "); err != nil {
			return ward.Patient{}, err
		}
		if p.DaysAdmitted, err = r.ReadInteger("Días internado: ", 0, MaxDays); err != nil {
			return ward.Patient{}, err
		}
		return p, nil
	}
}
