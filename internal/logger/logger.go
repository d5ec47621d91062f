package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger for application-wide logging
type Logger struct {
	*zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string    // debug, info, warn, error
	Pretty     bool      // console output instead of JSON
	OutputFile string    // optional extra file output
	Writer     io.Writer // defaults to os.Stdout
}

// New creates a new logger with the given configuration
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if cfg.Writer != nil {
		output = cfg.Writer
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	if cfg.OutputFile != "" {
		file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			output = io.MultiWriter(output, file)
		}
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: &logger}
}

// NewDefault creates a logger with default settings
func NewDefault() *Logger {
	return New(Config{
		Level:  "info",
		Pretty: true,
	})
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() *Logger {
	l := zerolog.Nop()
	return &Logger{Logger: &l}
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	newLogger := l.With().Str("component", component).Logger()
	return &Logger{Logger: &newLogger}
}

// WithLookup returns a logger tagged with a lookup's id, sequence number and mode
func (l *Logger) WithLookup(id string, seq uint64, mode string) *Logger {
	newLogger := l.With().
		Str("lookup_id", id).
		Uint64("seq", seq).
		Str("mode", mode).
		Logger()
	return &Logger{Logger: &newLogger}
}

// WithRequestID returns a logger with a request ID field
func (l *Logger) WithRequestID(requestID string) *Logger {
	newLogger := l.With().Str("request_id", requestID).Logger()
	return &Logger{Logger: &newLogger}
}
