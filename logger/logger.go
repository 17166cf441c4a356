// Package logger provides a configured Zap sugared logger instance for the
// application. It handles initialization based on environment variables
// (LOG_LEVEL, ENVIRONMENT) and provides helpers for masking sensitive data
// such as submitter email addresses and API keys in logs.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

// IsTest should be set to true when running in a test environment to adjust
// logger configuration (plain stdout output, development encoding).
var IsTest bool

// initLoggerInternal sets up the global zap.SugaredLogger based on environment.
func initLoggerInternal() {
	var zapLogger *zap.Logger
	var err error

	levelStr := os.Getenv("LOG_LEVEL")
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = zapcore.InfoLevel
	}

	if IsTest {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stdout"}
		zapLogger, err = config.Build()
	} else if os.Getenv("ENVIRONMENT") == "production" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err = cfg.Build()
	} else {
		devCfg := zap.NewDevelopmentConfig()
		devCfg.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err = devCfg.Build()
	}

	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	logger = zapLogger.Sugar()
}

// InitLogger initializes the global logger instance using sync.Once to ensure
// it's done only once, making it safe for concurrent calls.
func InitLogger() {
	once.Do(initLoggerInternal)
}

// GetLogger returns the shared global zap.SugaredLogger instance.
// It ensures the logger is initialized before returning it.
func GetLogger() *zap.SugaredLogger {
	once.Do(initLoggerInternal)
	return logger
}

// Close syncs the global logger to flush any buffered log entries.
// It should be called before the application exits.
func Close() error {
	if logger != nil && !IsTest {
		err := logger.Sync()
		if err != nil {
			// Write directly to stderr to avoid a loop if Sync itself fails.
			fmt.Fprintf(os.Stderr, "Error syncing logger: %v\n", err)
		}
		return err
	}
	return nil
}

// MaskSensitiveString masks the middle part of a string, showing only the
// first prefixLen and last suffixLen characters. Used for logging API keys.
func MaskSensitiveString(s string, prefixLen, suffixLen int) string {
	if s == "" {
		return ""
	}

	// For short strings, return all asterisks to avoid revealing length.
	if len(s) < (prefixLen + suffixLen + 3) {
		return strings.Repeat("*", len(s))
	}

	prefix := s[:prefixLen]
	suffix := s[len(s)-suffixLen:]
	return prefix + "..." + suffix
}

// MaskEmail masks an email address for logging purposes.
// It masks the username part but keeps the domain visible.
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		// Fallback for invalid email format
		return MaskSensitiveString(email, 2, 2)
	}

	username := parts[0]
	domain := parts[1]

	var maskedUsername string
	if len(username) <= 2 {
		maskedUsername = strings.Repeat("*", len(username))
	} else {
		maskedUsername = username[:1] + strings.Repeat("*", len(username)-2) + username[len(username)-1:]
	}

	return maskedUsername + "@" + domain
}
