// Package logger carries gwtgen's command-line diagnostics. Code generation
// itself never logs; only the cmd layer calls into this package.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/op/go-logging"
)

// Log is the module logger for the gwtgen CLI.
var Log = logging.MustGetLogger("gwtgen")

var (
	consoleFormat = logging.MustStringFormatter("%{level:.4s} %{message}")
	fileLogFormat = logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{message}")
)

// Initialize sends log records at level and above to w. When file is set the
// records are also written to a rotating log file.
func Initialize(w io.Writer, level, file string) error {
	lvl, err := loggingLevel(level)
	if err != nil {
		return err
	}

	console := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), consoleFormat))
	console.SetLevel(lvl, "")
	backends := []logging.Backend{console}

	if file != "" {
		fileBackend := logging.AddModuleLevel(logging.NewBackendFormatter(createFileBackend(file, 10), fileLogFormat))
		fileBackend.SetLevel(logging.DEBUG, "")
		backends = append(backends, fileBackend)
	}

	Log.SetBackend(logging.MultiLogger(backends...))
	return nil
}

func createFileBackend(name string, size int) logging.Backend {
	return logging.NewLogBackend(&lumberjack.Logger{
		Filename:   name,
		MaxSize:    size, // megabytes
		MaxBackups: 3,
		MaxAge:     28, //days
	}, "", 0)
}

func loggingLevel(level string) (logging.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return logging.INFO, nil
	case "debug":
		return logging.DEBUG, nil
	case "warning", "warn":
		return logging.WARNING, nil
	case "error":
		return logging.ERROR, nil
	}
	return logging.INFO, fmt.Errorf("unknown log level %q", level)
}

// Debugf logs DEBUG messages
func Debugf(msg string, args ...interface{}) {
	Log.Debugf(msg, args...)
}

// Infof logs INFO messages
func Infof(msg string, args ...interface{}) {
	Log.Infof(msg, args...)
}

// Warningf logs WARNING messages
func Warningf(msg string, args ...interface{}) {
	Log.Warningf(msg, args...)
}

// Errorf logs ERROR messages
func Errorf(msg string, args ...interface{}) {
	Log.Errorf(msg, args...)
}
