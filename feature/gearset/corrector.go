package gearset

import (
	"fmt"
	"os"

	"gear-auditor/core/files"
	"gear-auditor/core/reconcile"
)

// CorrectOptions tunes a correction run.
type CorrectOptions struct {
	// DryRun computes the rewrite without touching any file.
	DryRun bool

	// OnBackup runs after the backup exists and before the gearset is
	// replaced. An error aborts the run with the gearset untouched.
	OnBackup func(backupPath string) error
}

// CorrectResult describes what a correction run did.
type CorrectResult struct {
	// Changed counts rewritten bag fields.
	Changed int `json:"changed"`

	// BackupPath is the .bak copy, empty when nothing was written.
	BackupPath string `json:"backup_path,omitempty"`

	// Written is true when the gearset file was replaced.
	Written bool `json:"written"`
}

// Correct rewrites the bag fields of the gearset at path according to
// corrections. An empty set is a no-op: no backup, no write. Otherwise the
// file is copied to path+".bak" first and only replaced once that succeeded.
func Correct(path string, corrections *reconcile.CorrectionSet, opts CorrectOptions) (*CorrectResult, error) {
	result := &CorrectResult{}
	if corrections == nil || corrections.Len() == 0 {
		return result, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gearset: %w", err)
	}

	rewritten, changed := Rewrite(content, corrections)
	result.Changed = changed

	if opts.DryRun {
		return result, nil
	}

	backup, err := files.Backup(path)
	if err != nil {
		return nil, err
	}
	result.BackupPath = backup

	if opts.OnBackup != nil {
		if err := opts.OnBackup(backup); err != nil {
			return nil, fmt.Errorf("backup hook failed: %w", err)
		}
	}

	if err := files.WriteAtomic(path, rewritten); err != nil {
		return nil, fmt.Errorf("failed to write gearset: %w", err)
	}
	result.Written = true

	return result, nil
}
