package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *logrus.Logger

// InitLoggerWithConfig initializes the logger with file rotation.
// Logs are written to ~/.config/tinydlg/tinydlg.log
func InitLoggerWithConfig(cfg LogConfig) error {
	log = logrus.New()

	logDir := ConfigDir()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "tinydlg.log"),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}

	if cfg.ToStderr {
		log.SetOutput(io.MultiWriter(lj, os.Stderr))
	} else {
		log.SetOutput(lj)
	}

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	// Default to Info level, -debug raises it
	log.SetLevel(logrus.InfoLevel)
	return nil
}

// SetLogLevel sets the logging level based on debug mode
func SetLogLevel(debug bool) {
	if log == nil {
		return
	}
	if debug {
		log.SetLevel(logrus.DebugLevel)
		log.Debug("Debug logging enabled")
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// LogDebug logs a debug level message (only when debug mode is on)
func LogDebug(format string, args ...interface{}) {
	if log != nil {
		log.Debugf(format, args...)
	}
}

// LogWarn logs a warning level message
func LogWarn(format string, args ...interface{}) {
	if log != nil {
		log.Warnf(format, args...)
	}
}

// LogError logs an error level message
func LogError(format string, args ...interface{}) {
	if log != nil {
		log.Errorf(format, args...)
	}
}

// LogDialogResult logs the outcome of a dialog command without
// exposing the entered value.
func LogDialogResult(dialog string, produced bool) {
	if log == nil {
		return
	}
	log.WithFields(logrus.Fields{
		"action": "dialog_shown",
		"dialog": dialog,
		"result": produced,
	}).Info("Dialog dismissed")
}

// GetLogPath returns the path to the log file
func GetLogPath() string {
	return filepath.Join(ConfigDir(), "tinydlg.log")
}
