package model

import "github.com/shopspring/decimal"

// Theme is the UI color scheme stored alongside the ledger.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Categories is the taxonomy of allowed category names per transaction type.
type Categories struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// ForType returns the category list for the given transaction type.
func (c Categories) ForType(typ TransactionType) []string {
	if typ == TypeExpense {
		return c.Expense
	}
	return c.Income
}

// Contains reports whether name is in the taxonomy for typ.
func (c Categories) Contains(typ TransactionType, name string) bool {
	for _, cat := range c.ForType(typ) {
		if cat == name {
			return true
		}
	}
	return false
}

// Settings holds per-ledger display preferences and the daily balance snapshot.
type Settings struct {
	Currency           string           `json:"currency"`
	Theme              Theme            `json:"theme"`
	LastDayBalance     *decimal.Decimal `json:"lastDayBalance"`
	LastDayBalanceDate string           `json:"lastDayBalanceDate,omitempty"` // "YYYY-MM-DD"
}

// Ledger is the full persisted state: running balance, transactions
// (newest first), category taxonomy, and settings.
type Ledger struct {
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
	Categories   Categories      `json:"categories"`
	Settings     Settings        `json:"settings"`
}

// DefaultCategories returns the built-in taxonomy.
func DefaultCategories() Categories {
	return Categories{
		Income:  []string{"Salario", "Freelance", "Inversiones", "Regalo", "Otros ingresos"},
		Expense: []string{"Comida", "Transporte", "Vivienda", "Entretenimiento", "Salud", "Educación", "Ropa", "Otros gastos"},
	}
}

// NewLedger returns an empty ledger with the default taxonomy and settings.
func NewLedger() *Ledger {
	return &Ledger{
		Balance:      decimal.Zero,
		Transactions: []Transaction{},
		Categories:   DefaultCategories(),
		Settings: Settings{
			Currency: "$",
			Theme:    ThemeLight,
		},
	}
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	out := *l
	out.Transactions = make([]Transaction, len(l.Transactions))
	copy(out.Transactions, l.Transactions)
	out.Categories.Income = append([]string(nil), l.Categories.Income...)
	out.Categories.Expense = append([]string(nil), l.Categories.Expense...)
	if l.Settings.LastDayBalance != nil {
		v := *l.Settings.LastDayBalance
		out.Settings.LastDayBalance = &v
	}
	return &out
}

// MergeDefaultCategories unions the default taxonomy into the ledger's
// categories, preserving existing order and any user-added names. Calling it
// repeatedly never duplicates an entry.
func (l *Ledger) MergeDefaultCategories() {
	defaults := DefaultCategories()
	l.Categories.Income = mergeUnique(l.Categories.Income, defaults.Income)
	l.Categories.Expense = mergeUnique(l.Categories.Expense, defaults.Expense)
}

func mergeUnique(existing, defaults []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(defaults))
	for _, c := range existing {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range defaults {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
