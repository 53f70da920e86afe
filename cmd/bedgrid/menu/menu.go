// Package menu runs the interactive option loop over a loaded ward.
package menu

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mrsinham/bedgrid/internal/console"
	"github.com/mrsinham/bedgrid/internal/query"
	"github.com/mrsinham/bedgrid/internal/report"
	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/rs/zerolog/log"
)

// Menu options.
const (
	OptionExit = iota
	OptionAverageAge
	OptionLongStays
	OptionAboveAverage
	OptionLookup
	OptionAdjacent
	OptionGrid
)

// promptMax bounds the option and position prompts.
const promptMax = 100

// Session holds what the menu needs to answer every option.
type Session struct {
	in           *console.Reader
	out          io.Writer
	engine       *query.Engine
	emitter      *report.Emitter
	longStayDays int
}

// NewSession returns a menu over engine. Reports are written with emitter;
// option 2 lists patients admitted for more than longStayDays days.
func NewSession(in *console.Reader, out io.Writer, engine *query.Engine, emitter *report.Emitter, longStayDays int) *Session {
	return &Session{
		in:           in,
		out:          out,
		engine:       engine,
		emitter:      emitter,
		longStayDays: longStayDays,
	}
}

// Run shows the menu until option 0 is chosen. It returns
// console.ErrInputClosed if the input ends first.
func (s *Session) Run() error {
	for {
		s.printMenu()
		opt, err := s.in.ReadInteger("Opción: ", 0, promptMax)
		if err != nil {
			return err
		}
		log.Debug().Int("option", opt).Msg("menu option")

		if opt == OptionExit {
			fmt.Fprintln(s.out, "Saliendo...")
			return nil
		}
		if err := s.Do(opt); err != nil {
			return err
		}
	}
}

// Do runs a single menu option.
func (s *Session) Do(opt int) error {
	switch opt {
	case OptionAverageAge:
		avg, err := s.engine.AverageAge()
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Promedio de edad: %.6g\n", avg)
	case OptionLongStays:
		res, err := s.emitter.LongStays(s.engine.FilterByMinDays(s.longStayDays))
		if err != nil {
			return err
		}
		s.printGenerated(res)
	case OptionAboveAverage:
		avg, err := s.engine.AverageAge()
		if err != nil {
			return err
		}
		res, err := s.emitter.AboveAverage(s.engine.FilterAboveAge(avg))
		if err != nil {
			return err
		}
		s.printGenerated(res)
	case OptionLookup:
		return s.lookup()
	case OptionAdjacent:
		return s.adjacent()
	case OptionGrid:
		console.PrintGrid(s.out, s.engine.RenderGrid())
	default:
		fmt.Fprintln(s.out, "Opción inválida.")
	}
	return nil
}

func (s *Session) lookup() error {
	row, col, err := s.readPosition("Fila de la cama: ", "Columna de la cama: ")
	if err != nil {
		return err
	}
	p, err := s.engine.Lookup(row, col)
	if errors.Is(err, ward.ErrOutOfBounds) {
		fmt.Fprintln(s.out, "Ubicación inválida.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nDatos del paciente en (%d,%d):\n", row, col)
	fmt.Fprintf(s.out, "Nombre: %s\nEdad: %d\nDNI: %s\nDías internado: %d\n",
		p.Name, p.Age, p.NationalID, p.DaysAdmitted)
	return nil
}

func (s *Session) adjacent() error {
	row, col, err := s.readPosition("Fila del infectado: ", "Columna del infectado: ")
	if err != nil {
		return err
	}
	neighbors, err := s.engine.AdjacentTo(row, col)
	if errors.Is(err, ward.ErrOutOfBounds) {
		fmt.Fprintln(s.out, "Posición inválida.")
		return nil
	}
	if err != nil {
		return err
	}
	res, err := s.emitter.Adjacent(neighbors)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Hay %d pacientes adyacentes al infectado en (%d,%d).\n", len(neighbors), row, col)
	s.printGenerated(res)
	return nil
}

func (s *Session) readPosition(rowPrompt, colPrompt string) (int, int, error) {
	row, err := s.in.ReadInteger(rowPrompt, 0, promptMax)
	if err != nil {
		return 0, 0, err
	}
	col, err := s.in.ReadInteger(colPrompt, 0, promptMax)
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func (s *Session) printGenerated(res report.Result) {
	fmt.Fprintf(s.out, "Archivo '%s' generado.\n", filepath.Base(res.Path))
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, "\n--- MENU ---\n")
	fmt.Fprint(s.out, "1. Calcular promedio de edad\n")
	fmt.Fprintf(s.out, "2. Generar archivo de pacientes con más de %d días internados\n", s.longStayDays)
	fmt.Fprint(s.out, "3. Generar archivo de pacientes mayores al promedio\n")
	fmt.Fprint(s.out, "4. Mostrar paciente por posición\n")
	fmt.Fprint(s.out, "5. Mostrar pacientes adyacentes a uno infectado\n")
	fmt.Fprint(s.out, "6. Mostrar gráfico de camas\n")
	fmt.Fprint(s.out, "0. Salir\n")
}
