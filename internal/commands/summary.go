package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/report"
)

func newSummaryCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the balance and this month's totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			snap := app.store.Snapshot()
			now := time.Now()
			currency := snap.Settings.Currency

			totals := report.MonthlyTotals(snap, now.Year(), now.Month())

			cmd.Printf("Balance:        %s%s\n", currency, snap.Balance.StringFixed(2))
			cmd.Printf("Month income:   %s%s\n", currency, totals.Income.StringFixed(2))
			cmd.Printf("Month expenses: %s%s\n", currency, totals.Expense.StringFixed(2))

			breakdown := report.CategoryBreakdown(snap, now.Year(), now.Month())
			if len(breakdown) > 0 {
				cmd.Println()
				cmd.Println("Expenses by category:")
				for _, ct := range breakdown {
					cmd.Printf("  %-16s %s%s\n", ct.Category, currency, ct.Amount.StringFixed(2))
				}
			}

			warnLowBalance(cmd, snap)
			return nil
		},
	}
}
