package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the ledger with a previously exported snapshot",
		Long: `Replace the ledger with a previously exported snapshot. The file must
contain balance, transactions, and categories at the top level; anything else
is rejected before the current ledger is touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			data, err := app.gateway.Import(f)
			if err != nil {
				return err
			}
			if err := app.store.ReplaceAll(data); err != nil {
				return err
			}

			snap := app.store.Snapshot()
			cmd.Printf("Imported %d transactions, balance %s%s\n",
				len(snap.Transactions), snap.Settings.Currency, snap.Balance.StringFixed(2))
			return nil
		},
	}
}
