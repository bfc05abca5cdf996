// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request ID) from a Fiber context and attaches it to the
// log entry, so that all logs related to a specific request can be correlated.
//
// # Run Log
//
// OpenRunLog creates the plain text log that mirrors a comparison report
// (diff_results.log by default). It is an explicit object: opened before the
// run, closed after it, never installed as a global logger.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//   - File: path of the run log
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	run, err := logger.OpenRunLog(cfg.Log.File)
//	defer run.Close()
//	run.Info("No discrepancies found between the two files.")
package logger
