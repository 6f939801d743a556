package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger routes operator-facing messages through logrus.
type Logger struct {
	entry *logrus.Logger
}

// New creates a Logger writing to stderr. Verbose enables debug output;
// otherwise only warnings and errors are printed.
func New(verbose bool) *Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter creates a Logger writing to out.
func NewWithWriter(out io.Writer, verbose bool) *Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &Logger{entry: log}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	e := l.entry.WithFields(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(msg)
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return NewWithWriter(io.Discard, false)
}
