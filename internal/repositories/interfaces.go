package repositories

import (
	"context"

	"receipt-insights/internal/models"
)

// ReceiptRepositoryInterface defines the contract for receipt persistence.
// It covers the store.ReceiptSource surface used by the snapshot plus the
// batch operations the seeding endpoints need.
type ReceiptRepositoryInterface interface {
	FetchReceipts(ctx context.Context, offset, limit int) ([]models.Receipt, error)
	UpdateReceipt(ctx context.Context, id uint, update *models.ReceiptUpdate) (*models.Receipt, error)
	DeleteReceipt(ctx context.Context, id uint) error

	Create(ctx context.Context, receipt *models.Receipt) error
	CreateBatch(ctx context.Context, receipts []*models.Receipt) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
