package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a go-logging severity. Lower values are more severe.
type Level logging.Level

const (
	Error   = Level(logging.ERROR)
	Warning = Level(logging.WARNING)
	Notice  = Level(logging.NOTICE)
	Info    = Level(logging.INFO)
	Debug   = Level(logging.DEBUG)
)

func (l Level) String() string {
	return logging.Level(l).String()
}

// The logger format
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The internal leveled logger backend
var leveledBackend logging.LeveledBackend

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink, keeping the current level.
func SetSink(sink io.Writer) {
	level := Notice
	if leveledBackend != nil {
		level = GetLevel()
	}

	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	logging.SetBackend(leveledBackend)
	SetLevel(level)
}

// SetLevel sets the verbosity of every logger.
func SetLevel(level Level) {
	leveledBackend.SetLevel(logging.Level(level), "")
}

// GetLevel returns the current verbosity.
func GetLevel() Level {
	return Level(leveledBackend.GetLevel(""))
}

// Printer adapts a Logger to the Printf-style interface the renderer
// reports progress through. Lines are emitted at debug level.
type Printer struct {
	Logger Logger
}

// Printf logs at debug level.
func (p Printer) Printf(format string, args ...interface{}) {
	p.Logger.Debugf(format, args...)
}

// Log to stderr; stdout may carry image data.
func init() {
	SetSink(os.Stderr)
}
