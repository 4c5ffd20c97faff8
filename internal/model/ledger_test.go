package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	fifty := decimal.NewFromInt(50)

	assert.True(t, SignedAmount(TypeIncome, fifty).Equal(fifty))
	assert.True(t, SignedAmount(TypeExpense, fifty).Equal(fifty.Neg()))
}

func TestCategoriesContains(t *testing.T) {
	cats := DefaultCategories()

	assert.True(t, cats.Contains(TypeIncome, "Salario"))
	assert.True(t, cats.Contains(TypeExpense, "Comida"))
	assert.False(t, cats.Contains(TypeIncome, "Comida"), "taxonomy is per type")
	assert.False(t, cats.Contains(TypeExpense, "Lottery"))
}

func TestMergeDefaultCategories(t *testing.T) {
	l := NewLedger()
	l.Categories = Categories{
		Income:  []string{"Alquiler", "Salario"},
		Expense: []string{"Mascotas"},
	}

	l.MergeDefaultCategories()

	assert.Equal(t, "Alquiler", l.Categories.Income[0], "user order preserved")
	assert.Contains(t, l.Categories.Income, "Freelance")
	assert.Contains(t, l.Categories.Expense, "Comida")
	assert.Contains(t, l.Categories.Expense, "Mascotas")

	// Idempotent: merging again changes nothing.
	before := l.Clone().Categories
	l.MergeDefaultCategories()
	assert.Equal(t, before, l.Categories)

	// No duplicates even though "Salario" was already present.
	count := 0
	for _, c := range l.Categories.Income {
		if c == "Salario" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClone_Independent(t *testing.T) {
	l := NewLedger()
	baseline := decimal.NewFromInt(10)
	l.Settings.LastDayBalance = &baseline
	l.Transactions = []Transaction{{
		ID:     "1",
		Type:   TypeIncome,
		Amount: decimal.NewFromInt(10),
		Date:   time.Now(),
	}}

	c := l.Clone()
	c.Transactions[0].ID = "changed"
	c.Categories.Income[0] = "changed"
	*c.Settings.LastDayBalance = decimal.NewFromInt(999)

	assert.Equal(t, "1", l.Transactions[0].ID)
	assert.Equal(t, "Salario", l.Categories.Income[0])
	assert.True(t, l.Settings.LastDayBalance.Equal(baseline))
}

func TestLedgerJSONWireFormat(t *testing.T) {
	l := NewLedger()
	l.Balance = decimal.RequireFromString("123.45")
	l.Transactions = []Transaction{{
		ID:       "1700000000000",
		Type:     TypeExpense,
		Amount:   decimal.RequireFromString("-40.25"),
		Category: "Comida",
		Date:     time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}}

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "123.45", string(raw["balance"]), "balance is a JSON number, not a string")
	assert.Contains(t, string(data), `"amount":-40.25`, "amounts are JSON numbers")
	assert.Contains(t, string(data), `"notes":""`, "notes key always written, even when empty")
}

func TestLedgerJSONShape(t *testing.T) {
	l := NewLedger()
	data, err := json.Marshal(l)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"balance", "transactions", "categories", "settings"} {
		assert.Contains(t, raw, field)
	}

	var settings map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["settings"], &settings))
	assert.Contains(t, settings, "currency")
	assert.Contains(t, settings, "theme")
	assert.Equal(t, "null", string(settings["lastDayBalance"]), "never-captured baseline persists as null")
}
