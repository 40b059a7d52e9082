package integrity

import (
	"context"
	"errors"

	"gear-auditor/core/storage"
	"gear-auditor/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoStorage is returned by structure checks when no object storage is configured.
	ErrNoStorage = errors.New("object storage is not configured")
	// ErrNoDatabase is returned by schema checks when no database is configured.
	ErrNoDatabase = errors.New("database is not configured")
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// SetRegion sets the region used when the bucket has to be created.
func (s *Service) SetRegion(region string) {
	s.region = region
}

// CreateBucket creates the configured bucket.
func (s *Service) CreateBucket(ctx context.Context) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.CreateBucket(ctx, s.client, s.bucket, s.region, s.logger)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrNoStorage
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSchema compares the audit history tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db)
}

// FixSchema migrates the audit history tables.
func (s *Service) FixSchema() error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return checks.FixSchema(s.db)
}
