// Package log provides structured logging for the sro tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with contextual fields, JSON and
//              text output and integration with the mdwerror error type.
//              The validation core never logs; collaborators such as the
//              intake pipeline, the report store and the gRPC service do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Reduced to levels, fields, JSON/text formats and timers
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatText,
//		Name:   "intake",
//	})
//
//	logger.WithField("entity", "documento").Info("batch decoded", log.Int("records", 12))
//
//	timer := logger.StartTimer("validate_batch")
//	// ... validate
//	timer.Stop()
package log
