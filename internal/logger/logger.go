package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing to the given file path. The TUI owns
// the terminal, so logs never go to stdout/stderr; if the file can't
// be opened the logger is a no-op.
func New(path, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		w = io.Discard
	} else {
		w = f
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
