package store

import (
	"context"
	"errors"

	"receipt-insights/internal/models"
)

var (
	ErrReceiptNotFound  = errors.New("receipt not found in store")
	ErrStoreUnavailable = errors.New("receipt store unavailable")
	ErrStoreTimeout     = errors.New("receipt store request timed out")
	ErrBadResponse      = errors.New("receipt store returned a malformed response")
	ErrCircuitOpen      = errors.New("receipt store circuit breaker is open")
)

// Breaker is the slice of the circuit breaker the client needs. The
// concrete breaker lives in the services package.
type Breaker interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
}

// ReceiptSource is the boundary with the receipt store. The remote HTTP
// client and the local database store both satisfy it, so the rest of the
// service does not care where receipts live.
type ReceiptSource interface {
	// FetchReceipts returns one page of receipts in store order
	FetchReceipts(ctx context.Context, offset, limit int) ([]models.Receipt, error)

	// UpdateReceipt applies a partial edit and returns the updated receipt
	UpdateReceipt(ctx context.Context, id uint, update *models.ReceiptUpdate) (*models.Receipt, error)

	// DeleteReceipt removes a receipt and its line items
	DeleteReceipt(ctx context.Context, id uint) error
}
