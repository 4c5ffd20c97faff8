package commands

import (
	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/model"
)

func newAddCommand(home *string) *cobra.Command {
	var typ string
	var amount string
	var category string
	var notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new income or expense transaction",
		Args:  cobra.NoArgs,
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

			tx, err := app.store.Add(model.TransactionType(typ), value, category, notes)
			if err != nil {
				return err
			}

			snap := app.store.Snapshot()
			cmd.Printf("Added %s %s (%s) id=%s\n",
				tx.Type, formatAmount(snap.Settings.Currency, tx.Amount), tx.Category, tx.ID)
			cmd.Printf("Balance: %s%s\n", snap.Settings.Currency, snap.Balance.StringFixed(2))
			warnLowBalance(cmd, snap)
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", string(model.TypeExpense), "transaction type (income or expense)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount, always positive (required)")
	cmd.Flags().StringVar(&category, "category", "", "category name (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
