package cli

// This file defines error handling utilities for the CLI: debug mode
// management and structured logging for taxonomy carrier errors.

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logTaxonomyError will output structured error logs to terminal.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// logTaxonomyError logs an error with structured fields to terminal.
// Only logs when debug mode is enabled (via --debug flag). If the error
// chain carries a *taxonomy.Error, its definition is expanded into fields.
func logTaxonomyError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var carrier *taxonomy.Error
	if errors.As(err, &carrier) {
		def := carrier.Definition()
		logger.Error(msg,
			zap.Int("error.code", def.Code),
			zap.String("error.name", def.Name),
			zap.String("error.category", string(def.Category)),
			zap.String("error.severity", string(def.Severity)),
			zap.Bool("error.retryable", def.Retryable),
			zap.String("error.details", carrier.Details()),
			zap.Error(err),
		)
		return
	}
	logger.Error(msg, zap.Error(err))
}
