package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newExportCommand(home *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full ledger to a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			path, err := app.gateway.ExportToFile(app.store.Snapshot(), out, time.Now())
			if err != nil {
				return err
			}
			cmd.Printf("Exported ledger to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", ".", "directory to write the snapshot into")

	return cmd
}
