package audit

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"gear-auditor/core/config"
	"gear-auditor/core/reconcile"
	"gear-auditor/core/storage"
	"gear-auditor/core/utils"
	"gear-auditor/feature/audit/models"
	"gear-auditor/feature/catalog"
	"gear-auditor/feature/gearset"
	"gear-auditor/feature/inventory"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Object name prefixes inside the storage bucket.
const (
	BackupPrefix = "backups"
	ReportPrefix = "reports"
)

// Request selects the files of one audit. Empty fields fall back to the
// configured defaults.
type Request struct {
	Character     string
	CatalogPath   string
	InventoryPath string
	GearsetPath   string
}

// Target is a fully resolved Request.
type Target struct {
	Character string
	Spec      reconcile.SourceSpec
}

// Stats counts what was loaded from each file.
type Stats struct {
	CatalogItems     int `json:"catalog_items" yaml:"catalog_items"`
	InventoryItems   int `json:"inventory_items" yaml:"inventory_items"`
	Bags             int `json:"bags" yaml:"bags"`
	References       int `json:"references" yaml:"references"`
	UniqueReferences int `json:"unique_references" yaml:"unique_references"`
}

// Audit is the outcome of a check run.
type Audit struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Character string            `json:"character" yaml:"character"`
	Gearset   string            `json:"gearset" yaml:"gearset"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
	Stats     Stats             `json:"stats" yaml:"stats"`
	Report    *reconcile.Report `json:"report" yaml:"report"`
}

// Plan lists the corrections a fix would apply.
type Plan struct {
	Character   string                 `json:"character"`
	Gearset     string                 `json:"gearset"`
	Corrections []reconcile.Correction `json:"corrections"`
	Conflicts   []reconcile.Conflict   `json:"conflicts,omitempty"`
}

// Empty reports whether there is nothing to fix.
func (p *Plan) Empty() bool {
	return len(p.Corrections) == 0
}

// FixOptions tunes a fix run.
type FixOptions struct {
	DryRun bool

	// Approved, when non-nil, holds the corrections the caller confirmed.
	// Fix fails with ErrPlanChanged if the reloaded files plan anything else.
	Approved []reconcile.Correction
}

// FixResult is the outcome of a fix run.
type FixResult struct {
	Plan
	RunID        string `json:"run_id"`
	DryRun       bool   `json:"dry_run"`
	Changed      int    `json:"changed"`
	Written      bool   `json:"written"`
	BackupPath   string `json:"backup_path,omitempty"`
	RemoteBackup string `json:"remote_backup,omitempty"`
}

// Service runs audits and fixes against the configured files.
type Service struct {
	files  config.Files
	client storage.Client
	bucket string
	repo   *Repository
	cache  *reconcile.SourceCache
	load   reconcile.LoadFunc
	logger *zap.Logger

	// One mutex per gearset path serialises fixes on the same file.
	locks sync.Map
}

// NewService creates a new audit service. client and db are optional; nil
// disables remote uploads and history respectively.
func NewService(files config.Files, client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		files:  files,
		client: client,
		bucket: bucket,
		repo:   NewRepository(db),
		cache:  reconcile.NewSourceCache(files.CacheTTL()),
		load:   LoadSources,
		logger: logger,
	}
}

// StorageEnabled reports whether uploads are possible.
func (s *Service) StorageEnabled() bool {
	return s.client != nil
}

// HistoryEnabled reports whether runs are recorded.
func (s *Service) HistoryEnabled() bool {
	return s.repo.Enabled()
}

// Resolve fills req with the configured defaults.
func (s *Service) Resolve(req Request) (Target, error) {
	target := Target{Character: req.Character}
	if target.Character == "" {
		target.Character = s.files.Character
	}

	target.Spec = reconcile.SourceSpec{
		CatalogPath:   orDefault(req.CatalogPath, s.files.Catalog),
		InventoryPath: req.InventoryPath,
		GearsetPath:   orDefault(req.GearsetPath, s.files.Gearset),
	}
	if target.Spec.InventoryPath == "" {
		p, err := inventory.PathFor(s.files.InventoryDir, target.Character)
		if err != nil {
			return Target{}, err
		}
		target.Spec.InventoryPath = p
	}

	return target, nil
}

// Check loads the three files and classifies every gear reference.
func (s *Service) Check(ctx context.Context, req Request) (*Audit, error) {
	target, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}

	sources, err := s.cache.Get(ctx, target.Spec, s.load)
	if err != nil {
		return nil, err
	}

	audit := &Audit{
		RunID:     uuid.NewString(),
		Character: target.Character,
		Gearset:   target.Spec.GearsetPath,
		CreatedAt: time.Now(),
		Stats:     statsOf(sources),
		Report:    reconcile.Analyze(sources),
	}

	s.logger.Info("Audit completed",
		zap.String("run_id", audit.RunID),
		zap.String("character", audit.Character),
		zap.Int("total", audit.Report.Summary.Total),
		zap.Int("wrong_bag", audit.Report.Summary.WrongBag),
		zap.Int("missing", audit.Report.Summary.Missing),
		zap.Int("unknown", audit.Report.Summary.Unknown))

	s.record(ctx, &models.AuditRun{
		ID:        audit.RunID,
		Character: audit.Character,
		Gearset:   audit.Gearset,
		Mode:      models.ModeCheck,
		Total:     audit.Report.Summary.Total,
		OK:        audit.Report.Summary.OK,
		WrongBag:  audit.Report.Summary.WrongBag,
		Missing:   audit.Report.Summary.Missing,
		Unknown:   audit.Report.Summary.Unknown,
		CreatedAt: audit.CreatedAt,
	})

	return audit, nil
}

// Plan computes the corrections for req without touching any file.
// The files are always re-read.
func (s *Service) Plan(ctx context.Context, req Request) (*Plan, error) {
	target, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}
	plan, _, err := s.plan(ctx, target)
	return plan, err
}

// Fix rewrites the bag fields of the gearset so every mismatched reference
// points to the first bag actually holding the item. Fixes on the same
// gearset never run concurrently.
func (s *Service) Fix(ctx context.Context, req Request, opts FixOptions) (*FixResult, error) {
	target, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(target.Spec.GearsetPath)
	defer unlock()

	plan, set, err := s.plan(ctx, target)
	if err != nil {
		return nil, err
	}
	if opts.Approved != nil && !slices.Equal(opts.Approved, plan.Corrections) {
		s.logger.Warn("Plan changed after approval, nothing written",
			zap.String("gearset", plan.Gearset),
			zap.Int("approved", len(opts.Approved)),
			zap.Int("planned", len(plan.Corrections)))
		return nil, ErrPlanChanged
	}

	result := &FixResult{
		Plan:   *plan,
		RunID:  uuid.NewString(),
		DryRun: opts.DryRun,
	}
	l := s.logger.With(zap.String("run_id", result.RunID), zap.String("gearset", plan.Gearset))

	if plan.Empty() {
		l.Info("Nothing to fix")
		return result, nil
	}

	for _, c := range plan.Conflicts {
		l.Warn("Conflicting bags for item, last one wins",
			zap.String("item", c.Name),
			zap.Strings("expected", c.Expected),
			zap.String("chosen", c.Chosen))
	}

	corrected, err := gearset.Correct(target.Spec.GearsetPath, set, gearset.CorrectOptions{
		DryRun: opts.DryRun,
		OnBackup: func(backupPath string) error {
			result.RemoteBackup = s.uploadBackup(ctx, l, result.RunID, target.Spec.GearsetPath, backupPath)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	result.Changed = corrected.Changed
	result.Written = corrected.Written
	result.BackupPath = corrected.BackupPath

	if corrected.Written {
		s.cache.Invalidate(target.Spec)
		l.Info("Gearset corrected",
			zap.Int("changed", corrected.Changed),
			zap.String("backup", corrected.BackupPath))
	} else {
		l.Info("Dry run, gearset left untouched", zap.Int("changed", corrected.Changed))
	}

	s.record(ctx, fixRun(target, result))

	return result, nil
}

// UploadReport stores a rendered report as reports/<run-id>.<ext>.
func (s *Service) UploadReport(ctx context.Context, runID string, format Format, data []byte) (string, error) {
	if !s.StorageEnabled() {
		return "", ErrNoStorage
	}
	name := path.Join(ReportPrefix, runID+"."+format.Extension())
	if err := storage.PutBytes(ctx, s.client, s.bucket, name, data, format.ContentType()); err != nil {
		return "", err
	}
	s.logger.Info("Report uploaded", zap.String("object", name))
	return name, nil
}

// History returns the most recent recorded runs.
func (s *Service) History(ctx context.Context, limit int) ([]models.AuditRun, error) {
	return s.repo.List(ctx, limit)
}

func (s *Service) plan(ctx context.Context, target Target) (*Plan, *reconcile.CorrectionSet, error) {
	sources, err := s.load(ctx, target.Spec)
	if err != nil {
		return nil, nil, err
	}

	set := reconcile.BuildCorrections(sources.Catalog, sources.Inventory, sources.References)
	return &Plan{
		Character:   target.Character,
		Gearset:     target.Spec.GearsetPath,
		Corrections: set.Sorted(),
		Conflicts:   set.Conflicts(),
	}, set, nil
}

func (s *Service) uploadBackup(ctx context.Context, l *zap.Logger, runID, gearsetPath, backupPath string) string {
	if !s.StorageEnabled() {
		return ""
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		l.Warn("Failed to read backup for upload", zap.Error(err))
		return ""
	}

	name := path.Join(BackupPrefix, runID, filepath.Base(gearsetPath))
	if err := storage.PutBytes(ctx, s.client, s.bucket, name, data, "text/plain"); err != nil {
		l.Warn("Remote backup failed, local backup kept", zap.Error(err))
		return ""
	}

	l.Info("Remote backup stored", zap.String("object", name))
	return name
}

func (s *Service) record(ctx context.Context, run *models.AuditRun) {
	if !s.repo.Enabled() {
		return
	}
	if err := s.repo.Save(ctx, run); err != nil {
		s.logger.Warn("Failed to record audit run", zap.String("run_id", run.ID), zap.Error(err))
	}
}

func (s *Service) lock(gearsetPath string) func() {
	v, _ := s.locks.LoadOrStore(filepath.Clean(gearsetPath), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func fixRun(target Target, result *FixResult) *models.AuditRun {
	conflicted := make(map[string]bool, len(result.Conflicts))
	for _, c := range result.Conflicts {
		conflicted[utils.NameKey(c.Name)] = true
	}

	run := &models.AuditRun{
		ID:         result.RunID,
		Character:  target.Character,
		Gearset:    target.Spec.GearsetPath,
		Mode:       models.ModeFix,
		DryRun:     result.DryRun,
		Changed:    result.Changed,
		BackupPath: result.BackupPath,
		CreatedAt:  time.Now(),
	}
	for _, c := range result.Corrections {
		run.Corrections = append(run.Corrections, models.AuditCorrection{
			RunID:    result.RunID,
			Name:     c.Name,
			Location: c.Location,
			Conflict: conflicted[utils.NameKey(c.Name)],
		})
	}
	return run
}

// LoadSources parses the catalog, inventory and gearset named by spec.
func LoadSources(ctx context.Context, spec reconcile.SourceSpec) (*reconcile.Sources, error) {
	cat, err := catalog.Load(spec.CatalogPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inv, err := inventory.Load(spec.InventoryPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	refs, err := gearset.Load(spec.GearsetPath)
	if err != nil {
		return nil, err
	}

	return &reconcile.Sources{Catalog: cat, Inventory: inv, References: refs}, nil
}

func statsOf(src *reconcile.Sources) Stats {
	type counter interface{ Len() int }
	type sectioned interface{ Sections() []string }

	stats := Stats{
		References:       len(src.References),
		UniqueReferences: len(reconcile.Dedupe(src.References)),
	}
	if c, ok := src.Catalog.(counter); ok {
		stats.CatalogItems = c.Len()
	}
	if c, ok := src.Inventory.(counter); ok {
		stats.InventoryItems = c.Len()
	}
	if s, ok := src.Inventory.(sectioned); ok {
		stats.Bags = len(s.Sections())
	}
	return stats
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
