package storage

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanztrack-dev/finanztrack/internal/ledger"
	"github.com/finanztrack-dev/finanztrack/internal/model"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(NewMemoryStore(), zerolog.Nop())
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLoad_AbsentBlobDefaults(t *testing.T) {
	g := newTestGateway(t)

	l, err := g.Load()
	require.NoError(t, err)

	assert.True(t, l.Balance.IsZero())
	assert.Empty(t, l.Transactions)
	assert.Equal(t, model.DefaultCategories(), l.Categories)
	assert.Equal(t, "$", l.Settings.Currency)
	assert.Equal(t, model.ThemeLight, l.Settings.Theme)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	g := newTestGateway(t)

	l := model.NewLedger()
	l.Balance = dec("123.45")
	l.Transactions = []model.Transaction{{
		ID:       "1700000000000",
		Type:     model.TypeIncome,
		Amount:   dec("123.45"),
		Category: "Salario",
		Notes:    "march",
		Date:     time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}}
	require.NoError(t, g.Save(l))

	got, err := g.Load()
	require.NoError(t, err)

	assert.True(t, got.Balance.Equal(l.Balance))
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "1700000000000", got.Transactions[0].ID)
	assert.True(t, got.Transactions[0].Amount.Equal(dec("123.45")))
	assert.True(t, got.Transactions[0].Date.Equal(l.Transactions[0].Date))
}

func TestSave_NumericWireFormat(t *testing.T) {
	store := NewMemoryStore()
	g := NewGateway(store, zerolog.Nop())

	l := model.NewLedger()
	l.Balance = dec("123.45")
	l.Transactions = []model.Transaction{{
		ID:       "1",
		Type:     model.TypeIncome,
		Amount:   dec("123.45"),
		Category: "Salario",
		Date:     time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, g.Save(l))

	blob, ok, err := store.Get(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(blob), `"balance":123.45`, "stored blob carries numbers, not quoted strings")
	assert.Contains(t, string(blob), `"amount":123.45`)
}

func TestLoad_MergesDefaultCategories(t *testing.T) {
	g := newTestGateway(t)

	l := model.NewLedger()
	l.Categories = model.Categories{
		Income:  []string{"Rent from flat"}, // user-added, defaults missing
		Expense: []string{"Comida"},
	}
	require.NoError(t, g.Save(l))

	got, err := g.Load()
	require.NoError(t, err)

	assert.Equal(t, "Rent from flat", got.Categories.Income[0], "user categories keep their position")
	assert.Contains(t, got.Categories.Income, "Salario")
	assert.Contains(t, got.Categories.Expense, "Transporte")

	// Save and load again: the merge must not duplicate anything.
	require.NoError(t, g.Save(got))
	again, err := g.Load()
	require.NoError(t, err)
	assert.Equal(t, got.Categories, again.Categories)
}

func TestLoad_CorruptBlob(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(DefaultKey, []byte("{not json")))
	g := NewGateway(store, zerolog.Nop())

	_, err := g.Load()
	var serr ledger.SchemaError
	require.ErrorAs(t, err, &serr)
}

func TestExportImport_RoundTrip(t *testing.T) {
	g := newTestGateway(t)

	l := model.NewLedger()
	l.Balance = dec("60")
	baseline := dec("10")
	l.Settings.LastDayBalance = &baseline
	l.Settings.LastDayBalanceDate = "2025-03-14"
	l.Settings.Theme = model.ThemeDark
	l.Transactions = []model.Transaction{
		{
			ID:       "2",
			Type:     model.TypeExpense,
			Amount:   dec("-40"),
			Category: "Comida",
			Date:     time.Date(2025, 3, 13, 20, 0, 0, 0, time.UTC),
		},
		{
			ID:       "1",
			Type:     model.TypeIncome,
			Amount:   dec("100"),
			Category: "Salario",
			Notes:    "march",
			Date:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, g.Export(l, &buf))

	got, err := g.Import(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// Re-exporting the imported ledger must reproduce the snapshot exactly.
	var buf2 bytes.Buffer
	require.NoError(t, g.Export(got, &buf2))
	assert.JSONEq(t, buf.String(), buf2.String())

	assert.True(t, got.Balance.Equal(l.Balance))
	require.Len(t, got.Transactions, 2)
	assert.Equal(t, model.ThemeDark, got.Settings.Theme)
	require.NotNil(t, got.Settings.LastDayBalance)
	assert.True(t, got.Settings.LastDayBalance.Equal(baseline))
}

func TestExportToFile_Name(t *testing.T) {
	g := newTestGateway(t)
	dir := t.TempDir()

	path, err := g.ExportToFile(model.NewLedger(), dir, time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "finanzTrack-2025-03-14.json"), "got %s", path)
}

func TestImport_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		missing string
	}{
		{"no categories", `{"balance":10,"transactions":[]}`, "categories"},
		{"no transactions", `{"balance":10,"categories":{"income":[],"expense":[]}}`, "transactions"},
		{"no balance", `{"transactions":[],"categories":{"income":[],"expense":[]}}`, "balance"},
		{"empty object", `{}`, "balance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(t)

			_, err := g.Import(strings.NewReader(tt.payload))
			var serr ledger.SchemaError
			require.ErrorAs(t, err, &serr)
			assert.Contains(t, serr.Missing, tt.missing)
		})
	}
}

func TestImport_ZeroBalanceIsValid(t *testing.T) {
	g := newTestGateway(t)

	payload := `{"balance":0,"transactions":[],"categories":{"income":["Salario"],"expense":["Comida"]}}`
	got, err := g.Import(strings.NewReader(payload))
	require.NoError(t, err)
	assert.True(t, got.Balance.IsZero())
}

func TestImport_MalformedJSON(t *testing.T) {
	g := newTestGateway(t)

	_, err := g.Import(strings.NewReader("not json at all"))
	var serr ledger.SchemaError
	require.ErrorAs(t, err, &serr)
	assert.NotEmpty(t, serr.Reason)
}

func TestRollDailySnapshot(t *testing.T) {
	g := newTestGateway(t)
	today := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	l := model.NewLedger()
	l.Balance = dec("250")

	// First ever run: snapshot taken.
	rolled, err := g.RollDailySnapshot(l, today)
	require.NoError(t, err)
	assert.True(t, rolled)
	require.NotNil(t, l.Settings.LastDayBalance)
	assert.True(t, l.Settings.LastDayBalance.Equal(dec("250")))
	assert.Equal(t, "2025-03-14", l.Settings.LastDayBalanceDate)

	// Same day again: guarded.
	l.Balance = dec("300")
	rolled, err = g.RollDailySnapshot(l, today)
	require.NoError(t, err)
	assert.False(t, rolled)
	assert.True(t, l.Settings.LastDayBalance.Equal(dec("250")))

	// Next day: stored date is yesterday, baseline is current, still guarded.
	rolled, err = g.RollDailySnapshot(l, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, rolled)

	// Two days later: rolls again.
	rolled, err = g.RollDailySnapshot(l, today.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.True(t, rolled)
	assert.True(t, l.Settings.LastDayBalance.Equal(dec("300")))
	assert.Equal(t, "2025-03-16", l.Settings.LastDayBalanceDate)
}

func TestRollDailySnapshot_BaselineNotAliased(t *testing.T) {
	g := newTestGateway(t)

	l := model.NewLedger()
	l.Balance = dec("100")
	_, err := g.RollDailySnapshot(l, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	l.Balance = l.Balance.Add(dec("50"))
	assert.True(t, l.Settings.LastDayBalance.Equal(dec("100")), "snapshot keeps the captured value")
}
