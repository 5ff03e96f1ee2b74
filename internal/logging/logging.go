// Package logging configures the global slog logger for cliphud.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Format selects the log output format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format, returning FormatAuto for unknown values.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "tint", "human":
		return FormatText
	case "json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// ParseLevel converts a string to a slog.Level. An empty or unknown string
// yields def.
func ParseLevel(s string, def slog.Level) slog.Level {
	var l slog.Level
	if s == "" || l.UnmarshalText([]byte(s)) != nil {
		return def
	}
	return l
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Options are the raw logging settings from flags or config.
type Options struct {
	Format      string
	Level       string
	Interactive bool // debug by default, coloured output
}

// NewHandler builds the handler for w: tinter when w is a terminal or text
// is forced, JSON otherwise. Interactive runs default to debug level.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	format := ParseFormat(opts.Format)
	interactive := opts.Interactive || IsTTY(w)

	def := slog.LevelInfo
	if interactive {
		def = slog.LevelDebug
	}
	level := ParseLevel(opts.Level, def)

	if format == FormatText || (format == FormatAuto && interactive) {
		return tinter.NewHandler(w, &tinter.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// Setup installs the global slog logger writing to stderr. Call once after
// flag/viper parsing.
func Setup(opts Options) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, opts)))
}
