package audit

import (
	"context"
	"fmt"

	"gear-auditor/feature/audit/models"

	"gorm.io/gorm"
)

// DefaultHistoryLimit caps history listings when no limit is given.
const DefaultHistoryLimit = 20

// Repository persists audit runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db. A nil db yields a repository
// whose every call fails with ErrNoDatabase.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Enabled reports whether a database is attached.
func (r *Repository) Enabled() bool {
	return r != nil && r.db != nil
}

// Save inserts run together with its corrections.
func (r *Repository) Save(ctx context.Context, run *models.AuditRun) error {
	if !r.Enabled() {
		return ErrNoDatabase
	}
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save audit run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]models.AuditRun, error) {
	if !r.Enabled() {
		return nil, ErrNoDatabase
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var runs []models.AuditRun
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit runs: %w", err)
	}
	return runs, nil
}
