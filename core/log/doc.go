// Package log provides structured, leveled logging for textx.
//
// Package: log
// Title: Structured Logging for textx
// Description: A small structured logger with persistent fields, JSON, text
//              and console formatters, and severity-aware logging of
//              *mdwerror.Error values. The string engine itself never logs;
//              the command-line tool and the configuration loader do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-14 v0.2.0: Reduced feature set for textx
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON})
//	logger = logger.WithName("textx").WithField("command", "between")
//	logger.Debug("extracting", log.Int("subject_len", len(s)))
//	logger.LogError(err)
package log
