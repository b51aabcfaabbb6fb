// Package logtrace bootstraps the global zerolog logger for the console.
package logtrace

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global logger for interactive use: console
// writer on stderr, warn level by default so listings stay clean.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
}

// SetDebug raises the global log level to debug. Wired to the --verbose
// flag.
func SetDebug() {
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}
