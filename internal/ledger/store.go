package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanztrack-dev/finanztrack/internal/id"
	"github.com/finanztrack-dev/finanztrack/internal/model"
)

// Saver persists the full ledger. The Store calls it after every successful
// mutation; a persistence gateway satisfies it in production and an in-memory
// stub in tests.
type Saver interface {
	Save(l *model.Ledger) error
}

// Store owns the in-memory ledger and is its only mutation path. The balance
// is maintained incrementally alongside each transaction change, never
// recomputed by summation, so every operation adjusts both under one lock.
type Store struct {
	mu    sync.Mutex
	data  *model.Ledger
	saver Saver
	ids   *id.Generator
	now   func() time.Time
}

// NewStore wraps an existing ledger (typically the one the gateway loaded).
func NewStore(data *model.Ledger, saver Saver) *Store {
	return &Store{
		data:  data,
		saver: saver,
		ids:   id.NewGenerator(),
		now:   time.Now,
	}
}

// Add validates and records a new transaction at the head of the sequence,
// adjusting the balance by its signed amount. The returned transaction is a
// copy.
func (s *Store) Add(typ model.TransactionType, amount decimal.Decimal, category, notes string) (model.Transaction, error) {
	if !typ.Valid() {
		return model.Transaction{}, ValidationError{Field: "type", Reason: string(typ) + " is not a transaction type"}
	}
	if !amount.IsPositive() {
		return model.Transaction{}, ValidationError{Field: "amount", Reason: "must be a positive number"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.data.Categories.Contains(typ, category) {
		return model.Transaction{}, ValidationError{Field: "category", Reason: category + " is not a " + string(typ) + " category"}
	}

	tx := model.Transaction{
		ID:       s.ids.Next(),
		Type:     typ,
		Amount:   model.SignedAmount(typ, amount),
		Category: category,
		Notes:    notes,
		Date:     s.now(),
	}

	s.data.Transactions = append([]model.Transaction{tx}, s.data.Transactions...)
	s.data.Balance = s.data.Balance.Add(tx.Amount)

	if err := s.saver.Save(s.data); err != nil {
		s.data.Transactions = s.data.Transactions[1:]
		s.data.Balance = s.data.Balance.Sub(tx.Amount)
		return model.Transaction{}, err
	}
	return tx, nil
}

// Delete removes the transaction with the given ID and subtracts its signed
// amount from the balance.
func (s *Store) Delete(txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(txID)
	if idx < 0 {
		return NotFoundError{ID: txID}
	}

	removed := s.data.Transactions[idx]
	s.data.Transactions = append(s.data.Transactions[:idx:idx], s.data.Transactions[idx+1:]...)
	s.data.Balance = s.data.Balance.Sub(removed.Amount)

	if err := s.saver.Save(s.data); err != nil {
		rest := s.data.Transactions
		s.data.Transactions = append(append(append([]model.Transaction{}, rest[:idx]...), removed), rest[idx:]...)
		s.data.Balance = s.data.Balance.Add(removed.Amount)
		return err
	}
	return nil
}

// Edit replaces a transaction's amount (sign follows its existing type, which
// is immutable) and optionally its notes. The old amount is reversed and the
// new one applied under the store lock, so no reader observes the
// intermediate balance.
func (s *Store) Edit(txID string, newAmount decimal.Decimal, newNotes *string) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(txID)
	if idx < 0 {
		return model.Transaction{}, NotFoundError{ID: txID}
	}
	if !newAmount.IsPositive() {
		return model.Transaction{}, ValidationError{Field: "amount", Reason: "must be a positive number"}
	}

	tx := &s.data.Transactions[idx]
	oldAmount := tx.Amount
	oldNotes := tx.Notes

	tx.Amount = model.SignedAmount(tx.Type, newAmount)
	if newNotes != nil {
		tx.Notes = *newNotes
	}
	s.data.Balance = s.data.Balance.Sub(oldAmount).Add(tx.Amount)

	if err := s.saver.Save(s.data); err != nil {
		s.data.Balance = s.data.Balance.Sub(tx.Amount).Add(oldAmount)
		tx.Amount = oldAmount
		tx.Notes = oldNotes
		return model.Transaction{}, err
	}
	return *tx, nil
}

// ReplaceAll swaps in an imported ledger wholesale. The imported balance is
// trusted as stated; it is not cross-checked against the transaction sum.
func (s *Store) ReplaceAll(data *model.Ledger) error {
	if err := CheckShape(data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.data
	s.data = data
	if err := s.saver.Save(s.data); err != nil {
		s.data = prev
		return err
	}
	return nil
}

// CheckShape verifies that a decoded ledger has the structural minimum:
// a transaction sequence and a category taxonomy.
func CheckShape(data *model.Ledger) error {
	if data == nil {
		return SchemaError{Missing: []string{"balance", "transactions", "categories"}}
	}
	var missing []string
	if data.Transactions == nil {
		missing = append(missing, "transactions")
	}
	if data.Categories.Income == nil && data.Categories.Expense == nil {
		missing = append(missing, "categories")
	}
	if len(missing) > 0 {
		return SchemaError{Missing: missing}
	}
	return nil
}

// ToggleTheme flips the stored color scheme and persists it.
func (s *Store) ToggleTheme() (model.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.data.Settings.Theme
	next := model.ThemeDark
	if prev == model.ThemeDark {
		next = model.ThemeLight
	}
	s.data.Settings.Theme = next

	if err := s.saver.Save(s.data); err != nil {
		s.data.Settings.Theme = prev
		return prev, err
	}
	return next, nil
}

// Snapshot returns a deep copy of the ledger for aggregation and rendering.
func (s *Store) Snapshot() *model.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Balance returns the current running balance.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Balance
}

func (s *Store) indexOf(txID string) int {
	for i, tx := range s.data.Transactions {
		if tx.ID == txID {
			return i
		}
	}
	return -1
}
