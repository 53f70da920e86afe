// Package report writes query results to the ward's text artifacts.
package report

import (
	"bufio"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/mrsinham/bedgrid/internal/config"
	"github.com/mrsinham/bedgrid/internal/query"
	"github.com/rs/zerolog/log"
)

// Result describes one written artifact.
type Result struct {
	Path  string
	Lines int
}

// Emitter writes report files into a directory.
type Emitter struct {
	dir   string
	files config.Files
}

// NewEmitter returns an Emitter writing files named by files into dir.
func NewEmitter(dir string, files config.Files) *Emitter {
	return &Emitter{dir: dir, files: files}
}

// LongStays writes one name per line.
func (e *Emitter) LongStays(names iter.Seq[string]) (Result, error) {
	return e.write(e.files.LongStay, names)
}

// AboveAverage writes "<name> - DNI: <dni>" per patient.
func (e *Emitter) AboveAverage(patients iter.Seq[query.Identity]) (Result, error) {
	return e.write(e.files.AboveAverage, func(yield func(string) bool) {
		for p := range patients {
			if !yield(fmt.Sprintf("%s - DNI: %s", p.Name, p.NationalID)) {
				return
			}
		}
	})
}

// Adjacent writes one neighbor name per line.
func (e *Emitter) Adjacent(neighbors []query.Neighbor) (Result, error) {
	return e.write(e.files.Adjacent, func(yield func(string) bool) {
		for _, n := range neighbors {
			if !yield(n.Name) {
				return
			}
		}
	})
}

// write truncates name inside the output directory and writes each line of
// lines followed by a newline.
func (e *Emitter) write(name string, lines iter.Seq[string]) (res Result, err error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	res.Path = filepath.Join(e.dir, name)
	f, err := os.Create(res.Path)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return Result{}, fmt.Errorf("write %s: %w", name, err)
		}
		res.Lines++
	}
	if err := w.Flush(); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", name, err)
	}

	log.Info().Str("path", res.Path).Int("lines", res.Lines).Msg("report written")
	return res, nil
}
