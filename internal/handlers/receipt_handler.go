package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"receipt-insights/internal/dto"
	apierrors "receipt-insights/internal/errors"
	"receipt-insights/internal/models"
	"receipt-insights/internal/services"
	"receipt-insights/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type ReceiptHandler struct {
	queryService    services.ReceiptQueryServiceInterface
	mutationService services.ReceiptMutationServiceInterface
}

func NewReceiptHandler(
	queryService services.ReceiptQueryServiceInterface,
	mutationService services.ReceiptMutationServiceInterface,
) *ReceiptHandler {
	return &ReceiptHandler{
		queryService:    queryService,
		mutationService: mutationService,
	}
}

// ListReceipts returns the filtered, sorted receipt list
//
// Method: GET /api/v1/receipts
//
// Query parameters:
//   - search: Substring matched against merchant name, filename and raw
//     text (optional, case-insensitive, surrounding whitespace ignored)
//   - category: Exact item category to filter by (optional, case-sensitive)
//   - sort: One of newest, oldest, amount_high, amount_low, merchant
//     (optional, defaults to newest)
//   - offset: Number of matches to skip (optional, default 0)
//   - limit: Page size (optional, default 50, max 500)
//
// Success Response: 200 OK
//   - receipts: Array of receipts with line items
//   - meta: Object with total match count, offset and limit
//
// Error Responses:
//   - 400: Unsupported sort key
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *ReceiptHandler) ListReceipts(c echo.Context) error {
	params := dto.ReceiptListParams{Limit: defaultListLimit}
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}

	if params.Offset < 0 {
		params.Offset = 0
	}
	if params.Limit <= 0 {
		params.Limit = defaultListLimit
	}
	if params.Limit > maxListLimit {
		params.Limit = maxListLimit
	}

	receipts, total, err := h.queryService.ListReceipts(models.ReceiptFilters{
		Search:   params.Search,
		Category: params.Category,
		SortKey:  params.Sort,
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListReceiptsResponse{
			Receipts: dto.ToReceiptResponses(receipts),
			Meta: dto.ListMeta{
				Total:  total,
				Offset: params.Offset,
				Limit:  params.Limit,
			},
		},
	})
}

// GetReceipt returns a single receipt with its line items
//
// Method: GET /api/v1/receipts/:id
//
// Path parameters:
//   - id: Numeric receipt ID
//
// Success Response: 200 OK
//   - Receipt object with line items
//
// Error Responses:
//   - 400: Invalid receipt ID
//   - 404: Receipt not found
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *ReceiptHandler) GetReceipt(c echo.Context) error {
	id, err := parseReceiptID(c)
	if err != nil {
		return SendError(c, apierrors.ReceiptInvalidID)
	}

	receipt, err := h.queryService.GetReceipt(id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ToReceiptResponse(receipt),
	})
}

// UpdateReceipt applies a partial edit to a receipt
//
// Method: PUT /api/v1/receipts/:id
//
// Path parameters:
//   - id: Numeric receipt ID
//
// Request body (all fields optional, at least one required):
//   - merchant_name: New merchant name
//   - total_amount: New receipt total, non-negative
//   - purchase_date: New purchase date in YYYY-MM-DD form
//
// Success Response: 200 OK
//   - Updated receipt object with line items
//
// Error Responses:
//   - 400: Invalid receipt ID, malformed body or empty update
//   - 404: Receipt not found
//   - 422: Validation failure on a field
//   - 500: Internal server error
func (h *ReceiptHandler) UpdateReceipt(c echo.Context) error {
	id, err := parseReceiptID(c)
	if err != nil {
		return SendError(c, apierrors.ReceiptInvalidID)
	}

	var request dto.UpdateReceiptRequest
	if err := c.Bind(&request); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}

	if err := c.Validate(&request); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if request.IsEmpty() {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("update must change at least one field"))
	}

	update, err := request.ToModel()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("purchase_date must be YYYY-MM-DD"))
	}

	receipt, err := h.mutationService.UpdateReceipt(c.Request().Context(), id, update)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.ToReceiptResponse(receipt),
		Message: "receipt updated",
	})
}

// DeleteReceipt removes a receipt and its line items
//
// Method: DELETE /api/v1/receipts/:id
//
// Path parameters:
//   - id: Numeric receipt ID
//
// Success Response: 200 OK
//   - message: Confirmation message
//
// Error Responses:
//   - 400: Invalid receipt ID
//   - 404: Receipt not found
//   - 500: Internal server error
func (h *ReceiptHandler) DeleteReceipt(c echo.Context) error {
	id, err := parseReceiptID(c)
	if err != nil {
		return SendError(c, apierrors.ReceiptInvalidID)
	}

	if err := h.mutationService.DeleteReceipt(c.Request().Context(), id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "receipt deleted",
	})
}

// ListCategories returns the distinct item categories across the full
// collection
//
// Method: GET /api/v1/receipts/categories
//
// Success Response: 200 OK
//   - categories: Alphabetically sorted array of category names
//
// Error Responses:
//   - 503: Receipt snapshot not loaded yet
//   - 500: Internal server error
func (h *ReceiptHandler) ListCategories(c echo.Context) error {
	categories, err := h.queryService.CategoryUniverse()
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.CategoriesResponse{Categories: categories},
	})
}

func (h *ReceiptHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrReceiptNotFound) {
		return SendError(c, apierrors.ReceiptNotFound)
	}

	if errors.Is(err, services.ErrInvalidSortKey) {
		return SendError(c, apierrors.ValidationInvalidSort, apierrors.WithDetails("sort must be one of newest, oldest, amount_high, amount_low, merchant"))
	}

	if errors.Is(err, services.ErrSnapshotNotReady) {
		return SendError(c, apierrors.AnalyticsNotReady)
	}

	if errors.Is(err, services.ErrEmptyUpdate) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("update must change at least one field"))
	}

	if errors.Is(err, store.ErrCircuitOpen) {
		return SendError(c, apierrors.StoreCircuitOpen)
	}

	if errors.Is(err, store.ErrStoreUnavailable) {
		return SendError(c, apierrors.StoreUnavailable)
	}

	if errors.Is(err, store.ErrBadResponse) {
		return SendError(c, apierrors.StoreBadResponse)
	}

	if errors.Is(err, store.ErrStoreTimeout) {
		return SendError(c, apierrors.StoreTimeout)
	}

	return SendSystemError(c, err)
}

func parseReceiptID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
