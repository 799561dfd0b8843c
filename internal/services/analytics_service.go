package services

import (
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"receipt-insights/internal/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultAnalyticsMonths = 6
	DefaultRecentReceipts  = 10
)

var (
	ErrInvalidWindow = errors.New("analytics window must be a positive number of months")
	ErrInvalidLimit  = errors.New("recent receipts limit must be a positive number")
)

type analyticsService struct {
	snapshot SnapshotServiceInterface
	metrics  MetricsRecorderInterface
	now      func() time.Time
}

// NewAnalyticsService creates the aggregation engine over the snapshot
func NewAnalyticsService(snapshot SnapshotServiceInterface, metrics MetricsRecorderInterface) AnalyticsServiceInterface {
	return &analyticsService{
		snapshot: snapshot,
		metrics:  metrics,
		now:      time.Now,
	}
}

// NewAnalyticsServiceWithClock creates the engine with a fixed clock for
// deterministic window computation in tests
func NewAnalyticsServiceWithClock(snapshot SnapshotServiceInterface, metrics MetricsRecorderInterface, now func() time.Time) AnalyticsServiceInterface {
	return &analyticsService{
		snapshot: snapshot,
		metrics:  metrics,
		now:      now,
	}
}

func (s *analyticsService) GetExpenseAnalytics(months, recentLimit int) (*models.Analytics, error) {
	if months <= 0 {
		return nil, ErrInvalidWindow
	}
	if recentLimit == 0 {
		recentLimit = DefaultRecentReceipts
	}
	if recentLimit < 0 {
		return nil, ErrInvalidLimit
	}

	started := time.Now()
	bucketed, undated, err := s.windowReceipts(months)
	if err != nil {
		return nil, err
	}

	analytics := &models.Analytics{
		TotalExpenses:     decimal.Zero,
		MonthlyExpenses:   []models.MonthlyExpense{},
		CategoryBreakdown: []models.CategoryBreakdown{},
		RecentReceipts:    []models.Receipt{},
	}

	monthly := make(map[models.MonthKey]decimal.Decimal)
	for i := range bucketed {
		receipt := &bucketed[i]
		analytics.TotalExpenses = analytics.TotalExpenses.Add(receipt.Amount())

		anchor, _ := receipt.AnchorDate()
		key := models.MonthKeyOf(anchor)
		monthly[key] = monthly[key].Add(receipt.Amount())
	}
	analytics.MonthlyExpenses = sortedMonthly(monthly)
	analytics.CategoryBreakdown = categoryTotals(bucketed)
	analytics.RecentReceipts = recentReceipts(bucketed, undated, recentLimit)

	s.recordTiming("analytics_expenses", started)
	s.recordWindowGauge(months, len(bucketed))

	slog.Info("expense analytics computed",
		"months", months,
		"receipts_in_window", len(bucketed),
		"monthly_buckets", len(analytics.MonthlyExpenses),
		"categories", len(analytics.CategoryBreakdown))

	return analytics, nil
}

func (s *analyticsService) GetCategoryStats(months int) ([]models.CategoryStat, error) {
	if months <= 0 {
		return nil, ErrInvalidWindow
	}

	started := time.Now()
	bucketed, _, err := s.windowReceipts(months)
	if err != nil {
		return nil, err
	}

	type acc struct {
		count int
		total decimal.Decimal
	}
	byCategory := make(map[string]*acc)
	for i := range bucketed {
		for j := range bucketed[i].Items {
			item := &bucketed[i].Items[j]
			if !item.HasCategory() {
				continue
			}
			entry, ok := byCategory[*item.Category]
			if !ok {
				entry = &acc{total: decimal.Zero}
				byCategory[*item.Category] = entry
			}
			entry.count++
			entry.total = entry.total.Add(item.TotalPrice)
		}
	}

	stats := make([]models.CategoryStat, 0, len(byCategory))
	for category, entry := range byCategory {
		avg := decimal.Zero
		if entry.count > 0 {
			avg = entry.total.Div(decimal.NewFromInt(int64(entry.count)))
		}
		stats = append(stats, models.CategoryStat{
			Category:    category,
			ItemCount:   entry.count,
			TotalAmount: entry.total,
			AvgAmount:   avg,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if !stats[i].TotalAmount.Equal(stats[j].TotalAmount) {
			return stats[i].TotalAmount.GreaterThan(stats[j].TotalAmount)
		}
		return stats[i].Category < stats[j].Category
	})

	s.recordTiming("analytics_category_stats", started)
	return stats, nil
}

func (s *analyticsService) GetMonthlyTrends(months int) (models.CategoryTrendMatrix, error) {
	if months <= 0 {
		return nil, ErrInvalidWindow
	}

	started := time.Now()
	bucketed, _, err := s.windowReceipts(months)
	if err != nil {
		return nil, err
	}

	matrix := make(models.CategoryTrendMatrix)
	for i := range bucketed {
		anchor, _ := bucketed[i].AnchorDate()
		key := models.MonthKeyOf(anchor)
		for j := range bucketed[i].Items {
			item := &bucketed[i].Items[j]
			if !item.HasCategory() {
				continue
			}
			matrix.Add(key, *item.Category, item.TotalPrice)
		}
	}

	s.recordTiming("analytics_monthly_trends", started)
	return matrix, nil
}

func (s *analyticsService) GetWindowSummary(months int) (*models.WindowSummary, error) {
	if months <= 0 {
		return nil, ErrInvalidWindow
	}

	bucketed, _, err := s.windowReceipts(months)
	if err != nil {
		return nil, err
	}

	summary := &models.WindowSummary{
		TotalExpenses:  decimal.Zero,
		ThisMonthTotal: decimal.Zero,
		AvgPerReceipt:  decimal.Zero,
	}

	currentMonth := models.MonthKeyOf(s.now())
	for i := range bucketed {
		receipt := &bucketed[i]

		// Receipts with a missing total still count as processed
		summary.ReceiptsProcessed++
		summary.TotalExpenses = summary.TotalExpenses.Add(receipt.Amount())

		anchor, _ := receipt.AnchorDate()
		if models.MonthKeyOf(anchor) == currentMonth {
			summary.ThisMonthTotal = summary.ThisMonthTotal.Add(receipt.Amount())
		}

		for j := range receipt.Items {
			if !receipt.Items[j].HasCategory() {
				summary.UncategorizedItems++
			}
		}
	}

	if summary.ReceiptsProcessed > 0 {
		summary.AvgPerReceipt = summary.TotalExpenses.Div(decimal.NewFromInt(int64(summary.ReceiptsProcessed)))
	}

	return summary, nil
}

// windowReceipts splits the snapshot into receipts whose anchor date falls
// inside the trailing whole-calendar-months window and receipts that have
// no usable date at all. The undated remainder is kept only for the
// recent-receipts view.
func (s *analyticsService) windowReceipts(months int) (bucketed, undated []models.Receipt, err error) {
	receipts, err := s.snapshot.Receipts()
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	windowEnd := windowStart.AddDate(0, months, 0)

	for i := range receipts {
		anchor, ok := receipts[i].AnchorDate()
		if !ok {
			undated = append(undated, receipts[i])
			continue
		}
		if anchor.Before(windowStart) || !anchor.Before(windowEnd) {
			continue
		}
		bucketed = append(bucketed, receipts[i])
	}
	return bucketed, undated, nil
}

func sortedMonthly(monthly map[models.MonthKey]decimal.Decimal) []models.MonthlyExpense {
	expenses := make([]models.MonthlyExpense, 0, len(monthly))
	for key, total := range monthly {
		expenses = append(expenses, models.MonthlyExpense{Year: key.Year, Month: key.Month, Total: total})
	}
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Key().Before(expenses[j].Key())
	})
	return expenses
}

func categoryTotals(receipts []models.Receipt) []models.CategoryBreakdown {
	totals := make(map[string]decimal.Decimal)
	for i := range receipts {
		for j := range receipts[i].Items {
			item := &receipts[i].Items[j]
			if !item.HasCategory() {
				continue
			}
			totals[*item.Category] = totals[*item.Category].Add(item.TotalPrice)
		}
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(totals))
	for category, total := range totals {
		breakdown = append(breakdown, models.CategoryBreakdown{Category: category, Total: total})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// recentReceipts picks the newest-created receipts from the windowed set.
// Undated receipts sort last; they are still eligible for the list because
// creation order, not anchor date, drives recency.
func recentReceipts(bucketed, undated []models.Receipt, limit int) []models.Receipt {
	pool := make([]models.Receipt, 0, len(bucketed)+len(undated))
	pool = append(pool, bucketed...)
	pool = append(pool, undated...)

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].CreatedAt.After(pool[j].CreatedAt)
	})

	if limit < len(pool) {
		pool = pool[:limit]
	}
	return pool
}

func (s *analyticsService) recordTiming(name string, started time.Time) {
	if s.metrics != nil {
		s.metrics.RecordProcessingTime(name, time.Since(started))
	}
}

func (s *analyticsService) recordWindowGauge(months, count int) {
	if s.metrics != nil {
		s.metrics.RecordGauge("analytics_window_receipts", float64(count), map[string]string{
			"months": strconv.Itoa(months),
		})
	}
}
