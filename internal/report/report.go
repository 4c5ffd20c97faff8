// Package report derives display aggregates from a ledger snapshot. All
// functions are pure: they read the snapshot and return fresh values.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanztrack-dev/finanztrack/internal/model"
)

// MonthTotals is the income/expense summary for one calendar month.
// Expense is reported as a positive magnitude.
type MonthTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyTotals sums income and expense for transactions whose local calendar
// date falls in the given year/month.
func MonthlyTotals(l *model.Ledger, year int, month time.Month) MonthTotals {
	totals := MonthTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range l.Transactions {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		switch tx.Type {
		case model.TypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case model.TypeExpense:
			totals.Expense = totals.Expense.Add(tx.Amount.Abs())
		}
	}
	return totals
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown sums absolute expense amounts per category for the given
// month, in first-seen category order. Categories without matching
// transactions do not appear.
func CategoryBreakdown(l *model.Ledger, year int, month time.Month) []CategoryTotal {
	idx := make(map[string]int)
	var out []CategoryTotal
	for _, tx := range l.Transactions {
		if tx.Type != model.TypeExpense || tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		i, ok := idx[tx.Category]
		if !ok {
			i = len(out)
			idx[tx.Category] = i
			out = append(out, CategoryTotal{Category: tx.Category})
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount.Abs())
	}
	return out
}

// DailyPoint is one day in the trailing balance series.
type DailyPoint struct {
	Label   string // short weekday + day of month, e.g. "Sat 14"
	Date    time.Time
	Balance decimal.Decimal
}

// DailyBalanceSeries returns numDays points ending on ref's calendar day,
// ascending. Each day's balance is the last-day baseline (zero when never
// captured) plus every transaction dated on or before that day, regardless of
// when it was recorded. That makes the series cumulative-to-date rather than
// a true historical reconstruction; the original tracker behaves the same
// way and displays depend on it.
func DailyBalanceSeries(l *model.Ledger, numDays int, ref time.Time) []DailyPoint {
	if numDays < 1 {
		return nil
	}

	baseline := decimal.Zero
	if l.Settings.LastDayBalance != nil {
		baseline = *l.Settings.LastDayBalance
	}

	points := make([]DailyPoint, 0, numDays)
	for i := numDays - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		cutoff := day.Format("2006-01-02")

		balance := baseline
		for _, tx := range l.Transactions {
			if tx.Day() <= cutoff {
				balance = balance.Add(tx.Amount)
			}
		}

		points = append(points, DailyPoint{
			Label:   day.Format("Mon 2"),
			Date:    day,
			Balance: balance,
		})
	}
	return points
}

// Filter returns the transactions matching an optional category and an
// optional calendar day ("YYYY-MM-DD"), preserving ledger order. Empty
// arguments match everything.
func Filter(l *model.Ledger, category, day string) []model.Transaction {
	var out []model.Transaction
	for _, tx := range l.Transactions {
		if category != "" && tx.Category != category {
			continue
		}
		if day != "" && tx.Day() != day {
			continue
		}
		out = append(out, tx)
	}
	return out
}
