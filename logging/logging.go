// Package logging configures the global zerolog logger and offers the
// shorthand event constructors used across the API.
package logging

import (
	"io"
	"os"
	"time"

	"ExpenseAPI/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.ErrorStackMarshaler = utils.ZerologStackMarshaler
}

// Setup points the global logger at stderr. Outside production the output is
// the human-friendly console format.
func Setup(production bool, level string) {
	var out io.Writer = os.Stderr
	if !production {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	SetOutput(out)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// SetOutput replaces the global logger's writer.
func SetOutput(w io.Writer) {
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

func Debug() *zerolog.Event {
	return log.Debug().Stack()
}

func Info() *zerolog.Event {
	return log.Info().Stack()
}

func Warn() *zerolog.Event {
	return log.Warn().Stack()
}

func Error() *zerolog.Event {
	return log.Error().Stack()
}

// LogPanics is meant to be deferred at the top of long-running goroutines.
func LogPanics() {
	if r := recover(); r != nil {
		LogPanicValue(r, "recovered from panic")
	}
}

func LogPanicValue(val interface{}, msg string) {
	if err, ok := val.(error); ok {
		l := Error().Err(err)
		if utils.StackOf(err) == nil {
			l = l.Interface(zerolog.ErrorStackFieldName, utils.Trace())
		}
		l.Msg(msg)
		return
	}
	Error().
		Interface("recovered", val).
		Interface(zerolog.ErrorStackFieldName, utils.Trace()).
		Msg(msg)
}
