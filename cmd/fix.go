package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gear-auditor/core/utils"
	"gear-auditor/feature/audit"

	"github.com/spf13/cobra"
)

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix [character]",
	Short: "Point wrong bag fields at the bag actually holding the item",
	Long: `Computes a correction for every gear reference whose bag does not hold the
item, backs the GearSwap file up to <file>.bak and rewrites only the bag values.
Items that are unknown, missing, or referenced without a bag are left alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		sess, err := setup()
		if err != nil {
			return err
		}
		defer sess.close()

		svc := sess.auditService()
		req := requestFrom(cmd, args)

		fmt.Fprintln(out, "Loading data...")
		plan, err := svc.Plan(cmd.Context(), req)
		if err != nil {
			return err
		}

		if plan.Empty() {
			fmt.Fprintln(out, "Nothing to fix - all bag assignments are correct.")
			return nil
		}

		writePlan(out, plan)

		if dryRun {
			result, err := svc.Fix(cmd.Context(), req, audit.FixOptions{DryRun: true, Approved: plan.Corrections})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nDry run: %d occurrence(s) would be updated.\n", result.Changed)
			return nil
		}

		if !yes && !confirm(cmd.InOrStdin(), out, "\nApply these corrections? [y/N] ") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}

		result, err := svc.Fix(cmd.Context(), req, audit.FixOptions{Approved: plan.Corrections})
		if err != nil {
			return err
		}
		if result.Empty() {
			fmt.Fprintln(out, "Nothing to fix - all bag assignments are correct.")
			return nil
		}

		fmt.Fprintf(out, "\nBackup written to: %s\n", result.BackupPath)
		if result.RemoteBackup != "" {
			fmt.Fprintf(out, "Remote backup: %s\n", result.RemoteBackup)
		}
		fmt.Fprintf(out, "Lines updated: %d\n", result.Changed)
		fmt.Fprintln(out, "Done.")
		return nil
	},
}

func writePlan(w io.Writer, plan *audit.Plan) {
	fmt.Fprintf(w, "\nItems to fix (%d):\n", len(plan.Corrections))
	for _, c := range plan.Corrections {
		fmt.Fprintf(w, "  %-35s -> bag=%s\n", utils.Quote(c.Name), utils.Quote(c.Location))
	}

	for _, c := range plan.Conflicts {
		fmt.Fprintf(w, "  warning: %s is listed with bags %s, every occurrence will use %s\n",
			utils.Quote(c.Name), utils.JoinLocations(c.Expected), utils.Quote(c.Chosen))
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func init() {
	RootCmd.AddCommand(fixCmd)
	addSourceFlags(fixCmd)
	fixCmd.Flags().Bool("dry-run", false, "Show what would change without writing")
	fixCmd.Flags().BoolP("yes", "y", false, "Apply without asking for confirmation")
}
