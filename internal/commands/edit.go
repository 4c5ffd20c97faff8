package commands

import (
	"github.com/spf13/cobra"
)

func newEditCommand(home *string) *cobra.Command {
	var amount string
	var notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a transaction's amount and notes",
		Long: `Change a transaction's amount and optionally its notes. The transaction
type is fixed at creation: editing an expense keeps it an expense.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			value, err := parseAmount(amount)
			if err != nil {
				return err
			}

			var newNotes *string
			if cmd.Flags().Changed("notes") {
				newNotes = &notes
			}

			tx, err := app.store.Edit(args[0], value, newNotes)
			if err != nil {
				return err
			}

			snap := app.store.Snapshot()
			cmd.Printf("Updated transaction %s: %s\n", tx.ID, formatAmount(snap.Settings.Currency, tx.Amount))
			cmd.Printf("Balance: %s%s\n", snap.Settings.Currency, snap.Balance.StringFixed(2))
			warnLowBalance(cmd, snap)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "new amount, always positive (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes (omit to keep current notes)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
