package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthKey identifies a calendar month. Chronological ordering is integer
// comparison on (Year, Month); the "YYYY-MM" string form exists only at the
// serialization boundary.
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthKeyOf builds the key for the calendar month containing t
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: int(t.Month())}
}

// Before reports whether k is chronologically before other
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// String renders the chronologically sortable "YYYY-MM" wire form
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// MonthlyExpense is the receipt-level spend total for one calendar month
type MonthlyExpense struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// Key returns the month key for the entry
func (m MonthlyExpense) Key() MonthKey {
	return MonthKey{Year: m.Year, Month: m.Month}
}

// CategoryBreakdown is the item-level spend total for one category
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryStat extends the breakdown with counts and averages for the
// percentage-of-total table
type CategoryStat struct {
	Category    string          `json:"category"`
	ItemCount   int             `json:"item_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AvgAmount   decimal.Decimal `json:"avg_amount"`
}

// Analytics is the aggregate computed over one trailing window
type Analytics struct {
	TotalExpenses     decimal.Decimal     `json:"total_expenses"`
	MonthlyExpenses   []MonthlyExpense    `json:"monthly_expenses"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	RecentReceipts    []Receipt           `json:"recent_receipts"`
}

// CategoryTrendMatrix is the sparse month-by-category spend table used for
// multi-series charting. A missing (month, category) cell means zero spend,
// not missing data.
type CategoryTrendMatrix map[MonthKey]map[string]decimal.Decimal

// Add accumulates amount into the (month, category) cell
func (m CategoryTrendMatrix) Add(key MonthKey, category string, amount decimal.Decimal) {
	row, ok := m[key]
	if !ok {
		row = make(map[string]decimal.Decimal)
		m[key] = row
	}
	row[category] = row[category].Add(amount)
}

// Months returns the observed month keys in chronological order
func (m CategoryTrendMatrix) Months() []MonthKey {
	keys := make([]MonthKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// Categories returns the union of categories observed across all months,
// alphabetically sorted. Chart consumers use this as the series set and
// default absent cells to zero.
func (m CategoryTrendMatrix) Categories() []string {
	seen := make(map[string]bool)
	for _, row := range m {
		for category := range row {
			seen[category] = true
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Cell returns the amount for (month, category) with absence read as zero
func (m CategoryTrendMatrix) Cell(key MonthKey, category string) decimal.Decimal {
	row, ok := m[key]
	if !ok {
		return decimal.Zero
	}
	return row[category]
}

// WindowSummary carries the dashboard tile figures for one window. All
// counts come from the full windowed set, never from a recent-receipts
// slice.
type WindowSummary struct {
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	ReceiptsProcessed  int             `json:"receipts_processed"`
	ThisMonthTotal     decimal.Decimal `json:"this_month_total"`
	AvgPerReceipt      decimal.Decimal `json:"avg_per_receipt"`
	UncategorizedItems int             `json:"uncategorized_items"`
}
