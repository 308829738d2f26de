package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New creates the base service logger writing JSON lines to stdout. Unknown or
// empty levels fall back to info.
func New(level string) *zerolog.Logger {
	return NewWithWriter(level, os.Stdout)
}

func NewWithWriter(level string, out io.Writer) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	logger := zerolog.New(out).
		Level(parsed).
		With().
		Timestamp().
		Str("service", "ride-booking").
		Logger()

	return &logger
}
