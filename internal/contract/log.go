package contract

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger points the global diagnostic logger at stderr with a console
// format. Status lines meant for the user do not go through it.
func SetupLogger(level zerolog.Level) {
	SetupLoggerWithWriter(os.Stderr, level)
}

// SetupLoggerWithWriter is SetupLogger with a custom destination.
func SetupLoggerWithWriter(w io.Writer, level zerolog.Level) {
	// The global level defaults to debug and would drop trace events.
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
