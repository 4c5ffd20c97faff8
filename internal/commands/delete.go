package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/ledger"
)

func newDeleteCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction and restore its amount to the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.store.Delete(args[0]); err != nil {
				var nferr ledger.NotFoundError
				if errors.As(err, &nferr) {
					cmd.Printf("Transaction %s not found\n", nferr.ID)
					return nil
				}
				return err
			}

			snap := app.store.Snapshot()
			cmd.Printf("Deleted transaction %s\n", args[0])
			cmd.Printf("Balance: %s%s\n", snap.Settings.Currency, snap.Balance.StringFixed(2))
			warnLowBalance(cmd, snap)
			return nil
		},
	}
}
