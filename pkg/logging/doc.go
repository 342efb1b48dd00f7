// Package logging provides structured logging utilities for macromix.
//
// # Overview
//
// This package wraps the standard library slog package with macromix defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr (text handler on request)
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// The CLI installs the default logger once its settings are loaded:
//
//	logging.SetDefaultLogger(s.LogFormat, "macromix", version, s.LogLevel)
//	slog.Info("report written", "path", path)
//
// Creating a logger for another writer:
//
//	logger := logging.NewLogger(os.Stdout, logging.FormatText, "macromix", "v2.0.0", "debug")
//	logger.Info("search starting", "steps", 2000)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug macromix mix target.yaml oats.yaml milk.yaml
//	LOG_LEVEL=error macromix inspect target.yaml oats.yaml
//
// An explicit level (--log-level or the log-level setting) wins over
// LOG_LEVEL. If neither is set, the level is INFO.
//
// # Output Format
//
// Logs are written to stderr in JSON format unless the text format is selected:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "search complete",
//	    "module": "macromix",
//	    "version": "v1.0.0",
//	    "steps": 2000
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "optimizer.(*Optimizer).Optimize",
//	        "file": "optimizer.go",
//	        "line": 45
//	    },
//	    "msg": "iteration committed",
//	    "module": "macromix",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set the default logger before any command work starts:
//
//	Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
//	    logging.SetDefaultLogger(logging.FormatJSON, "macromix", version, "")
//	    return ctx, nil
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("search complete",
//	    "steps", 2000,
//	    "cost", cost,
//	    "duration_ms", 125,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("trial evaluated", "ingredient", name)  // Development/troubleshooting
//	slog.Info("search complete")                     // Normal operations
//	slog.Warn("unknown extension, assuming yaml")    // Potential issues
//	slog.Error("constraints do not fit budget")      // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to load ingredient",
//	    "error", err,
//	    "path", path,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/serializer - Document loading logging
//   - pkg/optimizer - Search progress logging
//
// All components share consistent logging format and configuration.
package logging
