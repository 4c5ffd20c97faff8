package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var home string

	rootCmd := &cobra.Command{
		Use:     "finanztrack",
		Short:   "Personal income and expense tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&home, "home", "", "finanztrack home directory (default ~/.finanztrack)")

	rootCmd.AddCommand(newInitCommand(&home))
	rootCmd.AddCommand(newAddCommand(&home))
	rootCmd.AddCommand(newDeleteCommand(&home))
	rootCmd.AddCommand(newEditCommand(&home))
	rootCmd.AddCommand(newListCommand(&home))
	rootCmd.AddCommand(newSummaryCommand(&home))
	rootCmd.AddCommand(newChartCommand(&home))
	rootCmd.AddCommand(newExportCommand(&home))
	rootCmd.AddCommand(newImportCommand(&home))
	rootCmd.AddCommand(newThemeCommand(&home))

	return rootCmd
}
