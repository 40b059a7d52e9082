package cmd

import (
	"bytes"
	"fmt"
	"io"

	"gear-auditor/core/files"
	"gear-auditor/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [character]",
	Short: "Report gear set items that are missing or in the wrong bag",
	Long: `Loads the item catalog, the character's findAll dump and the GearSwap file,
then lists every gear reference as OK, WRONG BAG, MISSING or UNKNOWN NAME.
The character defaults to files.character.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		upload, _ := cmd.Flags().GetBool("upload")

		format, err := audit.ParseFormat(formatName)
		if err != nil {
			return err
		}

		sess, err := setup()
		if err != nil {
			return err
		}
		defer sess.close()

		svc := sess.auditService()
		result, err := svc.Check(cmd.Context(), requestFrom(cmd, args))
		if err != nil {
			return err
		}

		var rendered bytes.Buffer
		if err := audit.Render(&rendered, result, format); err != nil {
			return err
		}

		if output != "" {
			if err := files.WriteAtomic(output, rendered.Bytes()); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			sess.logger.Info("Report saved", zap.String("file", output))
		} else {
			out := cmd.OutOrStdout()
			if format == audit.FormatText {
				writeProgress(out, result.Stats)
			}
			if _, err := out.Write(rendered.Bytes()); err != nil {
				return err
			}
		}

		if upload {
			name, err := svc.UploadReport(cmd.Context(), result.RunID, format, rendered.Bytes())
			if err != nil {
				return fmt.Errorf("failed to upload report: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Report uploaded to: %s\n", name)
		}

		return nil
	},
}

func writeProgress(w io.Writer, stats audit.Stats) {
	fmt.Fprintln(w, "Loading items database...")
	fmt.Fprintf(w, "  %d items loaded.\n", stats.CatalogItems)
	fmt.Fprintln(w, "Loading findAll inventory...")
	fmt.Fprintf(w, "  %d unique item IDs found across all bags (%d bags).\n", stats.InventoryItems, stats.Bags)
	fmt.Fprintln(w, "Loading GearSwap file...")
	fmt.Fprintf(w, "  %d unique gear references found.\n\n", stats.UniqueReferences)
}

func init() {
	RootCmd.AddCommand(checkCmd)
	addSourceFlags(checkCmd)
	checkCmd.Flags().String("format", "text", "Report format: text, json or yaml")
	checkCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	checkCmd.Flags().Bool("upload", false, "Store the report in the storage bucket")
}
