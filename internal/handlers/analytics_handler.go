package handlers

import (
	"errors"
	"net/http"

	"receipt-insights/internal/dto"
	apierrors "receipt-insights/internal/errors"
	"receipt-insights/internal/models"
	"receipt-insights/internal/services"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const (
	maxWindowMonths = 60
	maxRecentLimit  = 100
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
	defaultMonths    int
	defaultRecent    int
}

func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface, defaultMonths, defaultRecent int) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		defaultMonths:    defaultMonths,
		defaultRecent:    defaultRecent,
	}
}

// GetExpenseAnalytics returns the windowed expense aggregate
//
// Method: GET /api/v1/analytics/expenses
//
// Query parameters:
//   - months: Trailing window size in whole calendar months including the
//     current one (optional, default 6, max 60)
//   - recent: Number of most recently uploaded receipts to include
//     (optional, default 10, max 100)
//
// Success Response: 200 OK
//   - total_expenses: Decimal string sum over the window
//   - monthly_expenses: Chronological array of per-month totals, observed
//     months only
//   - category_breakdown: Per-category item spend, largest first
//   - recent_receipts: Most recently uploaded receipts
//
// Error Responses:
//   - 400: Invalid months or recent parameter
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *AnalyticsHandler) GetExpenseAnalytics(c echo.Context) error {
	months, recent, err := h.windowParams(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if months > maxWindowMonths {
		return SendError(c, apierrors.AnalyticsInvalidWindow, apierrors.WithDetails("months must be at most 60"))
	}
	if recent > maxRecentLimit {
		return SendError(c, apierrors.AnalyticsInvalidLimit, apierrors.WithDetails("recent must be at most 100"))
	}

	analytics, err := h.analyticsService.GetExpenseAnalytics(months, recent)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToExpenseAnalyticsResponse(analytics),
	})
}

// GetCategoryStats returns per-category counts, totals and averages
//
// Method: GET /api/v1/analytics/categories
//
// Query parameters:
//   - months: Trailing window size (optional, default 6, max 60)
//
// Success Response: 200 OK
//   - stats: Array of category rows with item_count, total_amount and
//     avg_amount, largest total first
//
// Error Responses:
//   - 400: Invalid months parameter
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *AnalyticsHandler) GetCategoryStats(c echo.Context) error {
	months, err := getIntParam(c, "months", h.defaultMonths)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if months > maxWindowMonths {
		return SendError(c, apierrors.AnalyticsInvalidWindow, apierrors.WithDetails("months must be at most 60"))
	}

	stats, err := h.analyticsService.GetCategoryStats(months)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.CategoryStatsResponse{Stats: dto.ToCategoryStatEntries(stats)},
	})
}

// GetMonthlyTrends returns the month-by-category spend matrix
//
// Method: GET /api/v1/analytics/monthly-trends
//
// Query parameters:
//   - months: Trailing window size (optional, default 6, max 60)
//
// Success Response: 200 OK
//   - months: Chronological array of observed "YYYY-MM" keys
//   - categories: Alphabetical array of observed categories
//   - series: Map of month key to per-category totals, absent spend as "0.00"
//
// Error Responses:
//   - 400: Invalid months parameter
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *AnalyticsHandler) GetMonthlyTrends(c echo.Context) error {
	months, err := getIntParam(c, "months", h.defaultMonths)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if months > maxWindowMonths {
		return SendError(c, apierrors.AnalyticsInvalidWindow, apierrors.WithDetails("months must be at most 60"))
	}

	trends, err := h.analyticsService.GetMonthlyTrends(months)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToMonthlyTrendsResponse(trends),
	})
}

// GetSummary returns the dashboard tile figures for the window
//
// Method: GET /api/v1/analytics/summary
//
// Query parameters:
//   - months: Trailing window size (optional, default 6, max 60)
//
// Success Response: 200 OK
//   - total_expenses: Decimal string sum over the window
//   - receipts_processed: Count of windowed receipts
//   - this_month_total: Decimal string spend in the current month
//   - avg_per_receipt: Decimal string average over windowed receipts
//   - uncategorized_items: Count of windowed items without a category
//
// Error Responses:
//   - 400: Invalid months parameter
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	months, err := getIntParam(c, "months", h.defaultMonths)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if months > maxWindowMonths {
		return SendError(c, apierrors.AnalyticsInvalidWindow, apierrors.WithDetails("months must be at most 60"))
	}

	summary, err := h.analyticsService.GetWindowSummary(months)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToSummaryResponse(summary),
	})
}

// GetDashboard returns every dashboard aggregate in one response. The four
// computations run concurrently and the response renders only after all of
// them finish.
//
// Method: GET /api/v1/analytics/dashboard
//
// Query parameters:
//   - months: Trailing window size (optional, default 6, max 60)
//   - recent: Number of recent receipts in the analytics block
//     (optional, default 10, max 100)
//
// Success Response: 200 OK
//   - analytics: Expense analytics block
//   - stats: Per-category statistics rows
//   - trends: Month-by-category spend matrix
//   - summary: Dashboard tile figures
//
// Error Responses:
//   - 400: Invalid months or recent parameter
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	months, recent, err := h.windowParams(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if months > maxWindowMonths {
		return SendError(c, apierrors.AnalyticsInvalidWindow, apierrors.WithDetails("months must be at most 60"))
	}
	if recent > maxRecentLimit {
		return SendError(c, apierrors.AnalyticsInvalidLimit, apierrors.WithDetails("recent must be at most 100"))
	}

	var (
		analytics *models.Analytics
		stats     []models.CategoryStat
		trends    models.CategoryTrendMatrix
		summary   *models.WindowSummary
	)

	group, _ := errgroup.WithContext(c.Request().Context())
	group.Go(func() error {
		var err error
		analytics, err = h.analyticsService.GetExpenseAnalytics(months, recent)
		return err
	})
	group.Go(func() error {
		var err error
		stats, err = h.analyticsService.GetCategoryStats(months)
		return err
	})
	group.Go(func() error {
		var err error
		trends, err = h.analyticsService.GetMonthlyTrends(months)
		return err
	})
	group.Go(func() error {
		var err error
		summary, err = h.analyticsService.GetWindowSummary(months)
		return err
	})

	if err := group.Wait(); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DashboardResponse{
			Analytics: dto.ToExpenseAnalyticsResponse(analytics),
			Stats:     dto.ToCategoryStatEntries(stats),
			Trends:    dto.ToMonthlyTrendsResponse(trends),
			Summary:   dto.ToSummaryResponse(summary),
		},
	})
}

// windowParams reads the shared months and recent query parameters
func (h *AnalyticsHandler) windowParams(c echo.Context) (months, recent int, err error) {
	months, err = getIntParam(c, "months", h.defaultMonths)
	if err != nil {
		return 0, 0, err
	}
	recent, err = getIntParam(c, "recent", h.defaultRecent)
	if err != nil {
		return 0, 0, err
	}
	return months, recent, nil
}

func (h *AnalyticsHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidWindow) {
		return SendError(c, apierrors.AnalyticsInvalidWindow)
	}

	if errors.Is(err, services.ErrInvalidLimit) {
		return SendError(c, apierrors.AnalyticsInvalidLimit)
	}

	if errors.Is(err, services.ErrSnapshotNotReady) {
		return SendError(c, apierrors.AnalyticsNotReady)
	}

	return SendSystemError(c, err)
}
