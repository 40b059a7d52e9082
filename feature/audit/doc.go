// Package audit ties the catalog, inventory and gearset parsers together.
//
// The Service resolves which files to read (configured defaults or explicit
// overrides), runs the cross-reference, applies corrections and records
// every run. Object storage and the history database are optional: without
// them uploads fail with ErrNoStorage, history with ErrNoDatabase, and audits
// and fixes still work.
//
// # Endpoints
//
//   - GET  /audit?character=        classify every gear reference
//   - POST /audit/fix?dry_run=      rewrite wrong bag fields
//   - GET  /audit/runs?limit=       recorded runs
//
// Fixes on the same gearset are serialised. A remote copy of the local
// backup is stored under backups/<run-id>/ when storage is configured; a
// failed upload is logged and does not block the fix.
package audit
