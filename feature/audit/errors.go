package audit

import "errors"

var (
	// ErrNoDatabase is returned by history operations when no database is configured.
	ErrNoDatabase = errors.New("audit history database is not configured")

	// ErrNoStorage is returned by upload operations when no object storage is configured.
	ErrNoStorage = errors.New("object storage is not configured")

	// ErrPlanChanged is returned by Fix when the files changed after the caller
	// approved a plan.
	ErrPlanChanged = errors.New("corrections changed since they were planned, run fix again")
)
