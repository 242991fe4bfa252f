// Package logging wires the application logger: logrus writing to stdout and
// a size-rotated file. Request logging stays with the gin middleware; this
// logger carries app-level events (startup, swallowed store failures,
// breaker state changes).
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

// InitLogger configures the shared logger. Safe to call once at startup;
// before that Logger writes to stderr with defaults.
func InitLogger(logFile string) {
	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logrus.Fatalf("Failed to create log directory: %v", err)
		}
	}

	rotated := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	Logger.SetOutput(io.MultiWriter(os.Stdout, rotated))
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Logger.SetLevel(logrus.InfoLevel)
}
