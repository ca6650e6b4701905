package log

import (
	"io"
	"os"

	"github.com/netrixframework/evd/config"
	"github.com/sirupsen/logrus"
)

// DefaultLogger stores the instance of the DefaultLogger
var DefaultLogger *Logger = NewLogger(config.DefaultConfig().LogConfig)

// LogParams wrapper around key values used for logging
type LogParams map[string]interface{}

// Logger for logging
type Logger struct {
	entry *logrus.Entry

	file *os.File
}

// NewLogger instantiates logger based on the config. Output goes to the
// file at c.Path when it can be created and to stderr otherwise
func NewLogger(c config.LogConfig) *Logger {
	var file *os.File
	var out io.Writer = os.Stderr
	if c.Path != "" {
		f, err := os.Create(c.Path)
		if err == nil {
			file = f
			out = f
		}
	}
	l := newLogger(out, c.Format)
	l.file = file
	return l
}

// NewWriterLogger instantiates a logger writing to w
func NewWriterLogger(w io.Writer, format string) *Logger {
	return newLogger(w, format)
}

func newLogger(w io.Writer, format string) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Logger{
		entry: logrus.NewEntry(l),
	}
}

// Debug logs a debug message with the default logger
func Debug(s string) {
	DefaultLogger.Debug(s)
}

// Info logs a message with level `info` with the default logger
func Info(s string) {
	DefaultLogger.Info(s)
}

// Warn logs a message with level `warning` with the default logger
func Warn(s string) {
	DefaultLogger.Warn(s)
}

// Error logs a message with level `error` with the default logger
func Error(s string) {
	DefaultLogger.Error(s)
}

// With returns a logger with the specified parameters
func With(params LogParams) *Logger {
	return DefaultLogger.With(params)
}

// Debug logs a debug message
func (l *Logger) Debug(s string) {
	l.entry.Debug(s)
}

// Info logs a message with level `info`
func (l *Logger) Info(s string) {
	l.entry.Info(s)
}

// Warn logs a message with level `warning`
func (l *Logger) Warn(s string) {
	l.entry.Warn(s)
}

// Error logs a message with level `error`
func (l *Logger) Error(s string) {
	l.entry.Error(s)
}

// With returns a logger initialized with the parameters
func (l *Logger) With(params LogParams) *Logger {
	fields := logrus.Fields{}
	for k, v := range params {
		fields[k] = v
	}

	return &Logger{
		entry: l.entry.WithFields(fields),
		file:  nil,
	}
}

// SetLevel sets the level of the logger. Unknown levels are ignored
func (l *Logger) SetLevel(level string) {
	levelL, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	l.entry.Logger.SetLevel(levelL)
}

// Destroy should be called when exiting to close the log file
func (l *Logger) Destroy() {
	if l.file != nil {
		l.file.Close()
	}
}

// Init initializes the default logger with a log path if specified
func Init(c config.LogConfig) {
	DefaultLogger = NewLogger(c)
	DefaultLogger.SetLevel(c.Level)
}

// Destroy closes the log file
func Destroy() {
	DefaultLogger.Destroy()
}
