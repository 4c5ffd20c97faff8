package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/ledger"
	"github.com/finanztrack-dev/finanztrack/internal/report"
)

func newChartCommand(home *string) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the trailing daily balance series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return ledger.ValidationError{Field: "days", Reason: "must be at least 1"}
			}

			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			snap := app.store.Snapshot()
			series := report.DailyBalanceSeries(snap, days, time.Now())

			for _, p := range series {
				cmd.Printf("%-8s %s%s\n", p.Label, snap.Settings.Currency, p.Balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of trailing days")

	return cmd
}
