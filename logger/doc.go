// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration, component-scoped
// loggers and run-scoped loggers that carry the recipe run ID and the active
// trace/span IDs.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("recipe")
//	log.Info("run finished", logger.Fields(logger.FieldElements, 2))
package logger
