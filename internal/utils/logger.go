package utils

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// prettyTimeFormat keeps console lines short; JSON output keeps full timestamps
const prettyTimeFormat = "15:04:05"

// Logger wraps zerolog.Logger with the fields a snapshot run attaches
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	// Level is a zerolog level name; empty or unknown means info
	Level string
	// Format is "json" or "pretty"; anything but json renders pretty
	Format  string
	Output  io.Writer
	Verbose bool
}

// NewLogger creates a logger. Pretty output is colored only when it goes to
// a terminal, so redirected logs stay free of escape codes.
func NewLogger(opts LoggerOptions) *Logger {
	var out io.Writer = os.Stderr
	if opts.Output != nil {
		out = opts.Output
	}

	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: prettyTimeFormat,
			NoColor:    !isTerminal(out),
		}
	}

	level := parseLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{
		Logger: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with the emitting package
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

// WithRoot returns a logger tagged with the project root
func (l *Logger) WithRoot(root string) *Logger {
	return l.with("root", root)
}

// WithFile returns a logger tagged with a project-relative file path
func (l *Logger) WithFile(path string) *Logger {
	return l.with("file", path)
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{Logger: l.Logger.With().Str(key, value).Logger()}
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
