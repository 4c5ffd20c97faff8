package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/config"
	"github.com/finanztrack-dev/finanztrack/internal/model"
	"github.com/finanztrack-dev/finanztrack/internal/storage"
)

func newInitCommand(home *string) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the finanztrack home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, *home, backend)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", storage.BackendFile, "storage backend (file or sqlite)")

	return cmd
}

func runInit(cmd *cobra.Command, home, backend string) error {
	dir, err := resolveHome(home)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating home directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(dir)
	cfg.Storage.Backend = backend
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// Seed the ledger blob so the first data command starts from a saved
	// default state.
	blobs, err := storage.Open(cfg.Storage.Backend, cfg.DataDir, cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	defer blobs.Close()

	gateway := storage.NewGateway(blobs, newLogger(cfg.Log.Level))
	if err := gateway.Save(model.NewLedger()); err != nil {
		return err
	}

	cmd.Printf("Initialized finanztrack at %s (backend: %s)\n", dir, backend)
	return nil
}
