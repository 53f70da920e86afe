package util

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/mrsinham/bedgrid/internal/validate"
)

func TestGeneratePatientName_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := GeneratePatientName("M", nil)
		if !validate.IsValidName(name) {
			t.Fatalf("generated name %q is not a valid admission name", name)
		}
		if parts := strings.Fields(name); len(parts) < 2 || len(parts) > 3 {
			t.Errorf("Name should have 2 or 3 words, got: %s", name)
		}
	}
}

func TestGeneratePatientName_Deterministic(t *testing.T) {
	name1 := GeneratePatientName("M", rand.New(rand.NewPCG(42, 42)))
	name2 := GeneratePatientName("M", rand.New(rand.NewPCG(42, 42)))
	if name1 != name2 {
		t.Errorf("Same seed should produce same name: %s != %s", name1, name2)
	}

	female1 := GeneratePatientName("F", rand.New(rand.NewPCG(99, 99)))
	female2 := GeneratePatientName("F", rand.New(rand.NewPCG(99, 99)))
	if female1 != female2 {
		t.Errorf("Same seed should produce same name: %s != %s", female1, female2)
	}
}

func TestGeneratePatientName_Sex(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 20; i++ {
		first := strings.Fields(GeneratePatientName("M", rng))[0]
		if !slices.Contains(MaleFirstNames, first) {
			t.Errorf("Male name %s not in male first names list", first)
		}
		first = strings.Fields(GeneratePatientName("F", rng))[0]
		if !slices.Contains(FemaleFirstNames, first) {
			t.Errorf("Female name %s not in female first names list", first)
		}
	}
}

func TestNameLists_AreValidNames(t *testing.T) {
	for _, list := range [][]string{MaleFirstNames, FemaleFirstNames, LastNames} {
		for _, n := range list {
			if !validate.IsValidName(n) {
				t.Errorf("list entry %q is not a valid admission name", n)
			}
		}
	}
}
