package dto

import (
	"receipt-insights/internal/models"
)

// MonthlyExpenseEntry is one month of receipt-level spend on the wire.
// Months serialize as "YYYY-MM" so clients can sort them lexically.
type MonthlyExpenseEntry struct {
	Month string `json:"month"`
	Total string `json:"total"`
}

// CategoryBreakdownEntry is one category of item-level spend on the wire
type CategoryBreakdownEntry struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// ExpenseAnalyticsResponse is the dashboard aggregate payload
type ExpenseAnalyticsResponse struct {
	TotalExpenses     string                   `json:"total_expenses"`
	MonthlyExpenses   []MonthlyExpenseEntry    `json:"monthly_expenses"`
	CategoryBreakdown []CategoryBreakdownEntry `json:"category_breakdown"`
	RecentReceipts    []ReceiptResponse        `json:"recent_receipts"`
}

// CategoryStatEntry is one row of the per-category statistics table
type CategoryStatEntry struct {
	Category    string `json:"category"`
	ItemCount   int    `json:"item_count"`
	TotalAmount string `json:"total_amount"`
	AvgAmount   string `json:"avg_amount"`
}

// CategoryStatsResponse is the category statistics payload
type CategoryStatsResponse struct {
	Stats []CategoryStatEntry `json:"stats"`
}

// MonthlyTrendsResponse is the month-by-category spend matrix payload.
// Every month row carries every category column; absent cells render as
// "0.00" so chart consumers never need to default missing series.
type MonthlyTrendsResponse struct {
	Months     []string                     `json:"months"`
	Categories []string                     `json:"categories"`
	Series     map[string]map[string]string `json:"series"`
}

// SummaryResponse carries the dashboard tile figures
type SummaryResponse struct {
	TotalExpenses      string `json:"total_expenses"`
	ReceiptsProcessed  int    `json:"receipts_processed"`
	ThisMonthTotal     string `json:"this_month_total"`
	AvgPerReceipt      string `json:"avg_per_receipt"`
	UncategorizedItems int    `json:"uncategorized_items"`
}

// DashboardResponse bundles the aggregates the dashboard fetches in one
// round trip
type DashboardResponse struct {
	Analytics ExpenseAnalyticsResponse `json:"analytics"`
	Stats     []CategoryStatEntry      `json:"stats"`
	Trends    MonthlyTrendsResponse    `json:"trends"`
	Summary   SummaryResponse          `json:"summary"`
}

// SeedRequest is the dev endpoint payload for generating sample receipts
type SeedRequest struct {
	Count  int `json:"count" validate:"required,gte=1,lte=10000"`
	Months int `json:"months" validate:"omitempty,gte=1,lte=60"`
}

// SeedResponse reports the outcome of a seeding run
type SeedResponse struct {
	ReceiptsCreated int   `json:"receipts_created"`
	TotalReceipts   int64 `json:"total_receipts"`
}

// ToExpenseAnalyticsResponse converts the analytics aggregate to wire form
func ToExpenseAnalyticsResponse(analytics *models.Analytics) ExpenseAnalyticsResponse {
	response := ExpenseAnalyticsResponse{
		TotalExpenses:     analytics.TotalExpenses.StringFixed(2),
		MonthlyExpenses:   make([]MonthlyExpenseEntry, 0, len(analytics.MonthlyExpenses)),
		CategoryBreakdown: make([]CategoryBreakdownEntry, 0, len(analytics.CategoryBreakdown)),
		RecentReceipts:    ToReceiptResponses(analytics.RecentReceipts),
	}

	for _, monthly := range analytics.MonthlyExpenses {
		response.MonthlyExpenses = append(response.MonthlyExpenses, MonthlyExpenseEntry{
			Month: monthly.Key().String(),
			Total: monthly.Total.StringFixed(2),
		})
	}

	for _, breakdown := range analytics.CategoryBreakdown {
		response.CategoryBreakdown = append(response.CategoryBreakdown, CategoryBreakdownEntry{
			Category: breakdown.Category,
			Total:    breakdown.Total.StringFixed(2),
		})
	}

	return response
}

// ToCategoryStatEntries converts the per-category statistics to wire form
func ToCategoryStatEntries(stats []models.CategoryStat) []CategoryStatEntry {
	entries := make([]CategoryStatEntry, 0, len(stats))
	for _, stat := range stats {
		entries = append(entries, CategoryStatEntry{
			Category:    stat.Category,
			ItemCount:   stat.ItemCount,
			TotalAmount: stat.TotalAmount.StringFixed(2),
			AvgAmount:   stat.AvgAmount.StringFixed(2),
		})
	}
	return entries
}

// ToMonthlyTrendsResponse converts the sparse trend matrix to a dense wire
// form keyed by "YYYY-MM"
func ToMonthlyTrendsResponse(matrix models.CategoryTrendMatrix) MonthlyTrendsResponse {
	months := matrix.Months()
	categories := matrix.Categories()

	response := MonthlyTrendsResponse{
		Months:     make([]string, 0, len(months)),
		Categories: categories,
		Series:     make(map[string]map[string]string, len(months)),
	}

	for _, month := range months {
		row := make(map[string]string, len(categories))
		for _, category := range categories {
			row[category] = matrix.Cell(month, category).StringFixed(2)
		}
		key := month.String()
		response.Months = append(response.Months, key)
		response.Series[key] = row
	}

	return response
}

// ToSummaryResponse converts the window summary to wire form
func ToSummaryResponse(summary *models.WindowSummary) SummaryResponse {
	return SummaryResponse{
		TotalExpenses:      summary.TotalExpenses.StringFixed(2),
		ReceiptsProcessed:  summary.ReceiptsProcessed,
		ThisMonthTotal:     summary.ThisMonthTotal.StringFixed(2),
		AvgPerReceipt:      summary.AvgPerReceipt.StringFixed(2),
		UncategorizedItems: summary.UncategorizedItems,
	}
}
