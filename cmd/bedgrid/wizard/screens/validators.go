package screens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mrsinham/bedgrid/internal/validate"
)

// validateRange returns a huh validator accepting integers in [min, max].
func validateRange(min, max int) func(string) error {
	return func(s string) error {
		_, err := validate.ParseInteger(strings.TrimSpace(s), min, max)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, validate.ErrOutOfRange):
			return fmt.Errorf("ingrese un número entero entre %d y %d", min, max)
		default:
			return fmt.Errorf("solo se permiten números enteros")
		}
	}
}

func validateName(s string) error {
	if _, err := validate.ParseName(s); err != nil {
		return fmt.Errorf("solo se permiten letras y espacios")
	}
	return nil
}

func validateNationalID(s string) error {
	if _, err := validate.ParseNationalID(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("el DNI debe tener exactamente %d dígitos", validate.NationalIDLength)
	}
	return nil
}

// atoi parses a value already accepted by validateRange.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
