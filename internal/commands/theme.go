package commands

import (
	"github.com/spf13/cobra"
)

func newThemeCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(*home)
			if err != nil {
				return err
			}
			defer app.Close()

			next, err := app.store.ToggleTheme()
			if err != nil {
				return err
			}
			cmd.Printf("Theme set to %s\n", next)
			return nil
		},
	}
}
