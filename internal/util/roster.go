package util

import (
	"fmt"
	"math/rand/v2"

	"github.com/mrsinham/bedgrid/internal/ward"
)

// RosterOptions controls GenerateRoster.
type RosterOptions struct {
	Rows int
	Cols int
	Seed int64
}

// GenerateRoster builds a random ward roster. The same seed always yields
// the same roster.
func GenerateRoster(opts RosterOptions) (*ward.Roster, error) {
	if opts.Rows < 1 || opts.Rows > ward.MaxRows || opts.Cols < 1 || opts.Cols > ward.MaxCols {
		return nil, fmt.Errorf("%w: %dx%d", ward.ErrInvalidDimensions, opts.Rows, opts.Cols)
	}

	rng := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)))
	beds := make([]ward.Patient, opts.Rows*opts.Cols)
	for i := range beds {
		beds[i] = GeneratePatient(rng)
	}

	return &ward.Roster{Rows: opts.Rows, Cols: opts.Cols, Beds: beds}, nil
}

// GeneratePatient draws a random, valid patient record.
func GeneratePatient(rng *rand.Rand) ward.Patient {
	sex := []string{"M", "F"}[rng.IntN(2)]
	return ward.Patient{
		Name:         GeneratePatientName(sex, rng),
		Age:          rng.IntN(121),
		NationalID:   fmt.Sprintf("%08d", 10000000+rng.IntN(40000000)),
		DaysAdmitted: generateStay(rng),
	}
}

// generateStay draws a length of stay: mostly short, with a long tail.
// Distribution: 60% 0-5 days, 30% 6-15 days, 10% 16-60 days
func generateStay(rng *rand.Rand) int {
	r := rng.Float64()
	if r < 0.60 {
		return rng.IntN(6)
	} else if r < 0.90 {
		return 6 + rng.IntN(10)
	}
	return 16 + rng.IntN(45)
}
