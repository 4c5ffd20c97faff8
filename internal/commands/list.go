package commands

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/report"
)

func newListCommand(home *string) *cobra.Command {
	var category string
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			snap := app.store.Snapshot()
			txs := report.Filter(snap, category, date)
			if len(txs) == 0 {
				cmd.Println("No transactions to show")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			if _, err := w.Write([]byte("DATE\tTYPE\tCATEGORY\tAMOUNT\tNOTES\tID\n")); err != nil {
				return err
			}
			for _, tx := range txs {
				notes := tx.Notes
				if notes == "" {
					notes = "-"
				}
				if _, err := w.Write([]byte(
					tx.Date.Format("2006-01-02") + "\t" +
						string(tx.Type) + "\t" +
						tx.Category + "\t" +
						formatAmount(snap.Settings.Currency, tx.Amount) + "\t" +
						notes + "\t" +
						tx.ID + "\n")); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show one category")
	cmd.Flags().StringVar(&date, "date", "", "only show one day (YYYY-MM-DD)")

	return cmd
}
