// Package logging builds the leveled diagnostic logger shared by pake and its
// webview shell.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"

	"github.com/mpyw/pake/internal/cli/terminal"
)

// Prefix is prepended to every record.
const Prefix = "pake"

// New returns a logger writing to w. Records are styled text on a terminal
// and logfmt otherwise. Debug records are only written when debug is set.
func New(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.InfoLevel,
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	if !terminal.IsTerminalWriter(w) {
		l.SetFormatter(log.LogfmtFormatter)
	}

	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Wails adapts l to the logger interface of the webview runtime.
type Wails struct {
	l *log.Logger
}

var _ wailslogger.Logger = Wails{}

// ForWails wraps l for the webview runtime. Records are tagged with a
// "shell" prefix.
func ForWails(l *log.Logger) Wails {
	return Wails{l: l.WithPrefix(l.GetPrefix() + "/shell")}
}

// Level maps l's level to the runtime's level.
func (w Wails) Level() wailslogger.LogLevel {
	switch w.l.GetLevel() {
	case log.DebugLevel:
		return wailslogger.DEBUG
	case log.WarnLevel:
		return wailslogger.WARNING
	case log.ErrorLevel, log.FatalLevel:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}

func (w Wails) Print(message string)   { w.l.Print(message) }
func (w Wails) Trace(message string)   { w.l.Debug(message) }
func (w Wails) Debug(message string)   { w.l.Debug(message) }
func (w Wails) Info(message string)    { w.l.Info(message) }
func (w Wails) Warning(message string) { w.l.Warn(message) }
func (w Wails) Error(message string)   { w.l.Error(message) }
func (w Wails) Fatal(message string)   { w.l.Fatal(message) }
