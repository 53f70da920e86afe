// Package console implements the prompt-and-retry input loops used to fill
// the ward, and the plain-text rendering of the bed grid.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mrsinham/bedgrid/internal/validate"
	"github.com/rs/zerolog/log"
)

// ErrInputClosed is returned when the input ends before a valid value is
// read. It is the only error the Read methods return.
var ErrInputClosed = errors.New("input closed before a valid value was entered")

// Diagnostics printed before re-prompting.
const (
	msgNotNumeric = "Entrada inválida. Solo se permiten números enteros.\n"
	msgOutOfRange = "Entrada inválida. Ingrese un número entero entre %d y %d.\n"
	msgBadName    = "Entrada inválida. Solo se permiten letras y espacios. Intente de nuevo.\n"
	msgBadDNI     = "Entrada inválida. El DNI debe tener exactamente 8 dígitos. Intente de nuevo.\n"
)

// Reader prompts on out and reads whitespace-delimited tokens or whole lines
// from in. Each Read method loops until the input is valid.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader returns a Reader over in, writing prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// ReadInteger prompts until a token of decimal digits in [min, max] is
// entered.
func (r *Reader) ReadInteger(prompt string, min, max int) (int, error) {
	for {
		fmt.Fprint(r.out, prompt)
		tok, err := r.token()
		if err != nil {
			return 0, err
		}

		v, err := validate.ParseInteger(tok, min, max)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, validate.ErrOutOfRange):
			fmt.Fprintf(r.out, msgOutOfRange, min, max)
		default:
			fmt.Fprint(r.out, msgNotNumeric)
		}
		log.Debug().Err(err).Str("prompt", strings.TrimSpace(prompt)).Msg("rejected integer input")
	}
}

// ReadText prompts until a line of letters and spaces is entered. Leading
// whitespace, blank lines included, is skipped; inner spaces are kept.
func (r *Reader) ReadText(prompt string) (string, error) {
	for {
		fmt.Fprint(r.out, prompt)
		line, err := r.line()
		if err != nil {
			return "", err
		}

		name, err := validate.ParseName(line)
		if err == nil {
			return name, nil
		}
		fmt.Fprint(r.out, msgBadName)
		log.Debug().Err(err).Msg("rejected name input")
	}
}

// ReadNationalID prompts until an 8-digit token is entered.
func (r *Reader) ReadNationalID(prompt string) (string, error) {
	for {
		fmt.Fprint(r.out, prompt)
		tok, err := r.token()
		if err != nil {
			return "", err
		}

		dni, err := validate.ParseNationalID(tok)
		if err == nil {
			return dni, nil
		}
		fmt.Fprint(r.out, msgBadDNI)
		log.Debug().Err(err).Msg("rejected DNI input")
	}
}

// skipSpace consumes whitespace, newlines included.
func (r *Reader) skipSpace() error {
	for {
		c, _, err := r.in.ReadRune()
		if err != nil {
			return r.closed(err)
		}
		if !unicode.IsSpace(c) {
			return r.in.UnreadRune()
		}
	}
}

// token reads the next whitespace-delimited word. The delimiter is left
// unread.
func (r *Reader) token() (string, error) {
	if err := r.skipSpace(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		c, _, err := r.in.ReadRune()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", r.closed(err)
		}
		if unicode.IsSpace(c) {
			_ = r.in.UnreadRune()
			return sb.String(), nil
		}
		sb.WriteRune(c)
	}
}

// line skips leading whitespace and returns the rest of the line without
// its terminator.
func (r *Reader) line() (string, error) {
	if err := r.skipSpace(); err != nil {
		return "", err
	}

	s, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", r.closed(err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (r *Reader) closed(err error) error {
	if err == io.EOF {
		return ErrInputClosed
	}
	return fmt.Errorf("%w: %v", ErrInputClosed, err)
}
