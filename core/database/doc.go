// Package database handles the optional audit history database.
//
// It wraps GORM to configure a MySQL connection from the application
// configuration. Persistence is optional: callers log a warning and carry on
// when Connect fails.
//
// # Schema Inspection
//
// GetTableColumns backs the schema integrity check, comparing the live
// audit tables against the GORM models in feature/audit/models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "audit_runs")
package database
