// Package logger writes leveled log lines to stdout and, once initialized,
// to a rotating session log file.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents the severity of a log message.
type Level string

const (
	Debug Level = "DEBUG"
	Info  Level = "INFO"
	Warn  Level = "WARN"
	Error Level = "ERROR"
)

var minLevel = Info

func priority(level Level) int {
	switch level {
	case Debug:
		return 0
	case Info:
		return 1
	case Warn:
		return 2
	case Error:
		return 3
	default:
		return 1
	}
}

func init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
}

// SetLevel sets the minimum level. Valid values: "debug", "info", "warn",
// "error"; anything else falls back to info.
func SetLevel(level string) {
	switch level {
	case "debug":
		minLevel = Debug
	case "info":
		minLevel = Info
	case "warn":
		minLevel = Warn
	case "error":
		minLevel = Error
	default:
		minLevel = Info
	}
}

// Init routes output to stdout plus a rotating file under logDir. Called
// once after config is loaded; before that, lines go to stdout only.
func Init(logDir string) {
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}
	fileLogger := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "project_sessions.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     90, // days
	}
	log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
}

func logf(level Level, format string, args ...interface{}) {
	if priority(level) < priority(minLevel) {
		return
	}
	stamp := time.Now().Format("2006-01-02 15:04:05")
	log.Printf("%s - %s - %s", stamp, level, fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) { logf(Debug, format, args...) }

// Infof logs at info level.
func Infof(format string, args ...interface{}) { logf(Info, format, args...) }

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) { logf(Warn, format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) { logf(Error, format, args...) }
