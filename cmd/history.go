package cmd

import (
	"fmt"
	"text/tabwriter"

	"gear-auditor/feature/audit"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded audit and fix runs",
	Long:  `Reads the audit history database (database.enabled must be true) and lists the most recent runs.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		sess, err := setup()
		if err != nil {
			return err
		}
		defer sess.close()

		runs, err := sess.auditService().History(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "RUN\tWHEN\tMODE\tCHARACTER\tTOTAL\tWRONG BAG\tMISSING\tUNKNOWN\tCHANGED")
		for _, r := range runs {
			mode := r.Mode
			if r.DryRun {
				mode += " (dry run)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), mode, r.Character,
				r.Total, r.WrongBag, r.Missing, r.Unknown, r.Changed)
		}
		return tw.Flush()
	},
}

func init() {
	RootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", audit.DefaultHistoryLimit, "Maximum number of runs to list")
}
