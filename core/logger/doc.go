// Package logger provides a structured logging facility based on Zap.
//
// Operational messages (loading progress, warnings about optional subsystems,
// request logs) go through the logger on stderr, leaving stdout to the audit
// report itself.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Gearset loaded", zap.Int("references", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
