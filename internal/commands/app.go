package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finanztrack-dev/finanztrack/internal/config"
	"github.com/finanztrack-dev/finanztrack/internal/ledger"
	"github.com/finanztrack-dev/finanztrack/internal/model"
	"github.com/finanztrack-dev/finanztrack/internal/storage"
)

// app wires the configured blob store, persistence gateway, and ledger
// store together for one command invocation.
type app struct {
	cfg     *config.Config
	store   *ledger.Store
	gateway *storage.Gateway
	blobs   storage.BlobStore
	log     zerolog.Logger
}

// openApp loads config from the home directory, opens the storage backend,
// loads the ledger, and rolls the daily balance snapshot if due.
func openApp(home string) (*app, error) {
	dir, err := resolveHome(home)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(filepath.Join(dir, config.FileName), dir)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log.Level)

	blobs, err := storage.Open(cfg.Storage.Backend, cfg.DataDir, cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}

	gateway := storage.NewGateway(blobs, logger)
	data, err := gateway.Load()
	if err != nil {
		blobs.Close()
		return nil, err
	}
	if _, err := gateway.RollDailySnapshot(data, time.Now()); err != nil {
		blobs.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		store:   ledger.NewStore(data, gateway),
		gateway: gateway,
		blobs:   blobs,
		log:     logger,
	}, nil
}

func (a *app) Close() error {
	return a.blobs.Close()
}

func resolveHome(home string) (string, error) {
	if home != "" {
		return filepath.Abs(home)
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(userHome, ".finanztrack"), nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// parseAmount converts user input to a decimal, mapping anything that is not
// a number to the same validation error bad amounts get.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ledger.ValidationError{Field: "amount", Reason: "must be a positive number"}
	}
	return d, nil
}

// formatAmount renders a signed amount as the tracker displays it,
// e.g. "+$50.00" or "-$19.99".
func formatAmount(currency string, d decimal.Decimal) string {
	sign := "-"
	if d.Sign() >= 0 {
		sign = "+"
	}
	return sign + currency + d.Abs().StringFixed(2)
}

var lowBalanceThreshold = decimal.NewFromInt(100)

// warnLowBalance prints the tracker's balance warnings after a mutation.
func warnLowBalance(cmd *cobra.Command, l *model.Ledger) {
	switch {
	case l.Balance.IsNegative():
		cmd.Println("Warning: your balance is negative")
	case l.Balance.LessThan(lowBalanceThreshold):
		cmd.Println("Your balance is low, consider cutting expenses")
	}
}
