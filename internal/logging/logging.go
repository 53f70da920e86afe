// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppName is attached to every log line.
const AppName = "bedgrid"

// Setup points the global logger at w with a console writer and the given
// level. Each call replaces the previous writer and level.
func Setup(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Str("app", AppName).
		Timestamp().Logger()
	return nil
}
