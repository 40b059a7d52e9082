// Package integrity provides health checks for the optional infrastructure
// the auditor writes to.
//
// # Checks Provided
//
//   - Structure: Checks if the backups/ and reports/ folders exist in the storage bucket.
//   - Schema: Validates that the audit history tables match the GORM models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check (supports ?fix=true, which migrates first).
package integrity
