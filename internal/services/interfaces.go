package services

import (
	"context"
	"time"

	"receipt-insights/internal/models"
)

// ReceiptQueryServiceInterface produces filtered, sorted views of the
// receipt collection for interactive browsing
type ReceiptQueryServiceInterface interface {
	// ListReceipts applies the search/category/sort parameters to the
	// current snapshot and returns the page plus the total match count
	ListReceipts(filters models.ReceiptFilters) ([]models.Receipt, int, error)

	// GetReceipt returns a single receipt from the current snapshot
	GetReceipt(id uint) (*models.Receipt, error)

	// CategoryUniverse returns the distinct, alphabetically sorted set of
	// categories across all items of the full unfiltered collection
	CategoryUniverse() ([]string, error)
}

// AnalyticsServiceInterface computes windowed aggregates over the receipt
// collection
type AnalyticsServiceInterface interface {
	// GetExpenseAnalytics computes the analytics aggregate for the trailing
	// months window; recentLimit caps the recent receipts list
	GetExpenseAnalytics(months, recentLimit int) (*models.Analytics, error)

	// GetCategoryStats computes per-category counts, totals and averages
	GetCategoryStats(months int) ([]models.CategoryStat, error)

	// GetMonthlyTrends computes the sparse month-by-category spend matrix
	GetMonthlyTrends(months int) (models.CategoryTrendMatrix, error)

	// GetWindowSummary computes the dashboard tile figures from the full
	// windowed set
	GetWindowSummary(months int) (*models.WindowSummary, error)
}

// SnapshotServiceInterface owns the in-memory receipt collection snapshot.
// Refresh replaces the snapshot wholesale; readers never observe a
// partially loaded collection.
type SnapshotServiceInterface interface {
	// Refresh loads the full collection from the receipt source and
	// installs it unless a newer refresh has been issued in the meantime
	Refresh(ctx context.Context) error

	// Receipts returns the current snapshot; ErrSnapshotNotReady before
	// the first successful refresh
	Receipts() ([]models.Receipt, error)

	// LastRefreshed reports when the current snapshot was installed
	LastRefreshed() (time.Time, bool)
}

// ReceiptMutationServiceInterface forwards mutations to the receipt source
// and refreshes the snapshot so derived views are recomputed
type ReceiptMutationServiceInterface interface {
	UpdateReceipt(ctx context.Context, id uint, update *models.ReceiptUpdate) (*models.Receipt, error)
	DeleteReceipt(ctx context.Context, id uint) error
}

// ReceiptGeneratorInterface generates realistic receipt data for seeding
// the local store and for tests
type ReceiptGeneratorInterface interface {
	GenerateReceipts(count int, startDate, endDate time.Time) []*models.Receipt
	GenerateReceipt(createdAt time.Time) *models.Receipt
	SelectRandomMerchant() string
	GenerateItems(merchant string) []models.ReceiptItem
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards calls against a failing upstream
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
