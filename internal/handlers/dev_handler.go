package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"receipt-insights/internal/dto"
	apierrors "receipt-insights/internal/errors"
	"receipt-insights/internal/repositories"
	"receipt-insights/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSeedMonths = 6

// DevHandler handles development-only endpoints for seeding and clearing
// the local receipt store. The routes are only registered in development
// environments.
type DevHandler struct {
	receiptRepo repositories.ReceiptRepositoryInterface
	snapshot    services.SnapshotServiceInterface
	generator   services.ReceiptGeneratorInterface
	metrics     services.MetricsRecorderInterface
	logger      *slog.Logger
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	receiptRepo repositories.ReceiptRepositoryInterface,
	snapshot services.SnapshotServiceInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *DevHandler {
	return &DevHandler{
		receiptRepo: receiptRepo,
		snapshot:    snapshot,
		generator:   services.NewReceiptGenerator(),
		metrics:     metrics,
		logger:      logger,
	}
}

// SeedReceipts generates realistic sample receipts into the local store
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Request body:
//   - count: Number of receipts to generate (required, 1-10000)
//   - months: How many months of history to spread them over
//     (optional, default 6, max 60)
//
// Success Response: 200 OK
//   - receipts_created: Number of receipts created
//   - total_receipts: Receipts in the store after seeding
//
// Error Responses:
//   - 400: Malformed body or out-of-range parameters
//   - 500: Internal server error
func (h *DevHandler) SeedReceipts(c echo.Context) error {
	var request dto.SeedRequest
	if err := c.Bind(&request); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&request); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	months := request.Months
	if months == 0 {
		months = defaultSeedMonths
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, -months, 0)

	receipts := h.generator.GenerateReceipts(request.Count, startDate, endDate)
	if err := h.receiptRepo.CreateBatch(c.Request().Context(), receipts); err != nil {
		return SendSystemError(c, err)
	}

	for range receipts {
		h.metrics.IncrementCounter("receipts_seeded", nil)
	}

	if err := h.snapshot.Refresh(c.Request().Context()); err != nil {
		h.logger.Warn("snapshot refresh after seeding failed", "error", err)
	}

	total, err := h.receiptRepo.Count(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	h.logger.Info("seeded sample receipts",
		"count", len(receipts),
		"months", months,
		"client_ip", getClientIP(c),
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SeedResponse{
			ReceiptsCreated: len(receipts),
			TotalReceipts:   total,
		},
		Message: "sample receipts generated",
	})
}

// ResetReceipts clears every receipt from the local store
//
// Method: POST /api/v1/dev/reset
// Environment: Development only
//
// Success Response: 200 OK
//   - message: Confirmation message
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) ResetReceipts(c echo.Context) error {
	if err := h.receiptRepo.DeleteAll(c.Request().Context()); err != nil {
		return SendSystemError(c, err)
	}

	if err := h.snapshot.Refresh(c.Request().Context()); err != nil {
		h.logger.Warn("snapshot refresh after reset failed", "error", err)
	}

	h.logger.Info("cleared receipt store", "client_ip", getClientIP(c))

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "receipt store cleared",
	})
}
