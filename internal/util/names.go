package util

import (
	"math/rand/v2"
	"time"
)

// Package-level default RNG to avoid allocations when rng is nil
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// CompoundNameProbability is the probability (0.0-1.0) of generating a
// two-word first name such as "Maria Jose".
const CompoundNameProbability = 0.15

// Name lists hold ASCII letters only so every generated name passes the
// admission name rule.
var (
	// MaleFirstNames is the list of male first names
	MaleFirstNames = []string{
		"Juan", "Carlos", "Jose", "Luis", "Jorge", "Miguel", "Pedro", "Diego",
		"Martin", "Pablo", "Sergio", "Ricardo", "Fernando", "Alejandro", "Javier",
		"Roberto", "Daniel", "Gustavo", "Hugo", "Mateo", "Santiago", "Tomas",
		"Lucas", "Nicolas", "Facundo", "Ignacio", "Gonzalo", "Matias", "Emiliano",
		"Federico", "Ramiro", "Agustin", "Marcelo", "Hernan", "Oscar", "Raul",
		"Ezequiel", "Julian", "Bruno", "Dario", "Esteban", "Franco", "Gabriel",
		"Joaquin", "Leandro", "Maximiliano", "Rodrigo", "Sebastian", "Thiago",
	}

	// FemaleFirstNames is the list of female first names
	FemaleFirstNames = []string{
		"Maria", "Ana", "Laura", "Carla", "Lucia", "Sofia", "Valentina", "Camila",
		"Martina", "Florencia", "Julieta", "Paula", "Agustina", "Micaela", "Romina",
		"Gabriela", "Silvia", "Patricia", "Marta", "Claudia", "Andrea", "Carolina",
		"Daniela", "Natalia", "Veronica", "Mariana", "Lorena", "Cecilia", "Eugenia",
		"Rocio", "Belen", "Milagros", "Abril", "Emilia", "Isabella", "Catalina",
		"Victoria", "Josefina", "Pilar", "Renata", "Elena", "Graciela", "Norma",
		"Susana", "Beatriz", "Alicia", "Monica", "Teresa", "Rosa", "Ines",
	}

	// LastNames is the list of last names
	LastNames = []string{
		"Gonzalez", "Rodriguez", "Gomez", "Fernandez", "Lopez", "Diaz", "Martinez",
		"Perez", "Garcia", "Sanchez", "Romero", "Sosa", "Alvarez", "Torres", "Ruiz",
		"Ramirez", "Flores", "Acosta", "Benitez", "Medina", "Suarez", "Herrera",
		"Aguirre", "Pereyra", "Gutierrez", "Gimenez", "Molina", "Silva", "Castro",
		"Rojas", "Ortiz", "Nunez", "Luna", "Juarez", "Cabrera", "Rios", "Ferreyra",
		"Godoy", "Morales", "Dominguez", "Moreno", "Peralta", "Vega", "Carrizo",
		"Quiroga", "Castillo", "Ledesma", "Muller", "Ojeda", "Ponce", "Vera",
		"Cardozo", "Velazquez", "Coronel", "Vazquez", "Villalba", "Mendez", "Paz",
	}
)

// GeneratePatientName generates a realistic patient name based on sex.
//
// Sex should be "M" or "F". Invalid values default to "F".
// If rng is nil, uses shared default RNG.
// Returns "Firstname Lastname".
func GeneratePatientName(sex string, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	pool := FemaleFirstNames
	if sex == "M" {
		pool = MaleFirstNames
	}

	firstName := pool[rng.IntN(len(pool))]
	if rng.Float64() < CompoundNameProbability {
		firstName += " " + pool[rng.IntN(len(pool))]
	}
	lastName := LastNames[rng.IntN(len(LastNames))]

	return firstName + " " + lastName
}
