package cmd

import (
	"fmt"

	"gear-auditor/core/config"
	"gear-auditor/core/database"
	"gear-auditor/core/logger"
	"gear-auditor/core/storage"
	"gear-auditor/feature/audit"
	"gear-auditor/feature/audit/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var configDir string

// session bundles what every command needs. store and db are nil when the
// optional subsystem is disabled or unreachable.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
	db     *gorm.DB
}

func setup() (*session, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	sess := &session{cfg: cfg, logger: logg}

	// Storage (Optional)
	if cfg.Storage.Enabled {
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client failed", zap.Error(err))
		} else {
			sess.store = client
		}
	}

	// Database (Optional)
	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			sess.db = conn
			logg.Debug("Connected to history database", zap.String("database", cfg.Database.Name))

			if cfg.Database.AutoMigrate {
				if err := database.Migrate(conn, models.All()...); err != nil {
					logg.Warn("History schema migration failed", zap.Error(err))
				}
			}
		}
	}

	return sess, nil
}

func (s *session) close() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = s.logger.Sync()
}

func (s *session) auditService() *audit.Service {
	return audit.NewService(s.cfg.Files, s.store, s.cfg.Storage.Bucket, s.db, s.logger)
}

// addSourceFlags registers the file override flags shared by check and fix.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog", "", "Item catalog (items.lua), overrides files.catalog")
	cmd.Flags().String("inventory", "", "findAll dump, overrides <files.inventory_dir>/<character>.lua")
	cmd.Flags().String("gearset", "", "GearSwap file, overrides files.gearset")
}

func requestFrom(cmd *cobra.Command, args []string) audit.Request {
	req := audit.Request{}
	if len(args) > 0 {
		req.Character = args[0]
	}
	req.CatalogPath, _ = cmd.Flags().GetString("catalog")
	req.InventoryPath, _ = cmd.Flags().GetString("inventory")
	req.GearsetPath, _ = cmd.Flags().GetString("gearset")
	return req
}
