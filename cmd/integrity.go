package cmd

import (
	"context"
	"errors"

	"gear-auditor/feature/integrity"
	"gear-auditor/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage bucket and history database the auditor writes to",
	Long:  `Checks that the storage bucket has the backups/ and reports/ folders and that the audit history tables match their models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and migrate the audit history schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate missing tables and columns")
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema bool) error {
	sess, err := setup()
	if err != nil {
		return err
	}
	defer sess.close()

	logg := sess.logger
	svc := integrity.NewService(sess.store, sess.cfg.Storage.Bucket, logg, sess.db)
	svc.SetRegion(sess.cfg.Storage.Region)
	only := runStructure != runSchema

	if runStructure {
		logg.Info("Checking folder structure...", zap.String("bucket", sess.cfg.Storage.Bucket))
		missing, err := svc.CheckStructure(ctx)
		if err != nil && only && fixFlag && errors.Is(err, checks.ErrBucketMissing) {
			logg.Info("Creating bucket...")
			if err := svc.CreateBucket(ctx); err != nil {
				return err
			}
			missing, err = svc.CheckStructure(ctx)
		}
		if err != nil {
			if !only {
				logg.Error("Structure check failed", zap.Error(err))
			} else {
				return err
			}
		} else if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if only && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return err
				}
				logg.Info("Structure fixed successfully.")
			} else if only {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runSchema {
		if only && fixFlag {
			logg.Info("Migrating history schema...")
			if err := svc.FixSchema(); err != nil {
				return err
			}
		}

		logg.Info("Checking history schema integrity...", zap.String("database", sess.cfg.Database.Name))
		report, err := svc.CheckSchema()
		if err != nil {
			if only {
				return err
			}
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("History schema matches expected definition.")
		} else {
			logg.Warn("History schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			if only {
				logg.Info("Run with --fix to migrate the schema.")
			}
		}
	}

	return nil
}
