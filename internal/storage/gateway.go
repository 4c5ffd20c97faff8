package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/finanztrack-dev/finanztrack/internal/ledger"
	"github.com/finanztrack-dev/finanztrack/internal/model"
)

// ExportPrefix is the filename prefix for export snapshots, giving names of
// the form finanzTrack-2025-03-14.json.
const ExportPrefix = "finanzTrack"

const dayFormat = "2006-01-02"

// Gateway serializes the ledger to and from a BlobStore and to and from
// export snapshots. It satisfies ledger.Saver.
type Gateway struct {
	store BlobStore
	key   string
	log   zerolog.Logger
}

// NewGateway creates a Gateway over a blob store using DefaultKey.
func NewGateway(store BlobStore, log zerolog.Logger) *Gateway {
	return &Gateway{store: store, key: DefaultKey, log: log}
}

// Load reads the persisted ledger. An absent blob yields a fresh default
// ledger; a present one gets the default category taxonomy merged in so
// upgrades never lose built-in categories and user-added ones survive.
func (g *Gateway) Load() (*model.Ledger, error) {
	data, ok, err := g.store.Get(g.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		g.log.Debug().Msg("no stored ledger, starting fresh")
		return model.NewLedger(), nil
	}

	var l model.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, ledger.SchemaError{Reason: err.Error()}
	}
	l.MergeDefaultCategories()

	g.log.Debug().Int("transactions", len(l.Transactions)).Msg("ledger loaded")
	return &l, nil
}

// Save serializes the full ledger and overwrites the stored blob.
func (g *Gateway) Save(l *model.Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := g.store.Put(g.key, data); err != nil {
		return err
	}
	g.log.Debug().Int("bytes", len(data)).Msg("ledger saved")
	return nil
}

// Export writes a self-contained indented snapshot of the ledger.
func (g *Gateway) Export(l *model.Ledger, w io.Writer) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ExportToFile writes an export snapshot into dir and returns its path.
func (g *Gateway) ExportToFile(l *model.Ledger, dir string, today time.Time) (string, error) {
	name := fmt.Sprintf("%s-%s.json", ExportPrefix, today.Format(dayFormat))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := g.Export(l, f); err != nil {
		return "", err
	}
	g.log.Info().Str("path", path).Msg("ledger exported")
	return path, nil
}

// Import parses an export snapshot and returns the decoded ledger. The
// top-level fields balance, transactions, and categories must be present;
// any other shape fails with SchemaError before any state is touched. The
// caller hands the result to the store's ReplaceAll.
func (g *Gateway) Import(r io.Reader) (*model.Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ledger.SchemaError{Reason: err.Error()}
	}

	var missing []string
	for _, field := range []string{"balance", "transactions", "categories"} {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, ledger.SchemaError{Missing: missing}
	}

	var l model.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, ledger.SchemaError{Reason: err.Error()}
	}
	if err := ledger.CheckShape(&l); err != nil {
		return nil, err
	}

	g.log.Info().Int("transactions", len(l.Transactions)).Msg("ledger imported")
	return &l, nil
}

// RollDailySnapshot captures the current balance as the last-day baseline at
// most once per calendar day. No snapshot is taken when the stored date is
// already today (this run is not the first of the day) or yesterday (the
// baseline is current). Persists and reports whether it rolled.
func (g *Gateway) RollDailySnapshot(l *model.Ledger, today time.Time) (bool, error) {
	todayStr := today.Format(dayFormat)
	yesterdayStr := today.AddDate(0, 0, -1).Format(dayFormat)

	stored := l.Settings.LastDayBalanceDate
	if stored == todayStr || stored == yesterdayStr {
		return false, nil
	}

	balance := l.Balance
	l.Settings.LastDayBalance = &balance
	l.Settings.LastDayBalanceDate = todayStr
	if err := g.Save(l); err != nil {
		return false, err
	}

	g.log.Debug().Str("date", todayStr).Str("balance", balance.String()).Msg("daily balance snapshot rolled")
	return true, nil
}
