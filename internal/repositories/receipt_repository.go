package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"receipt-insights/internal/models"
	"receipt-insights/internal/store"

	"gorm.io/gorm"
)

// receiptRepository is the local receipt store backed by GORM. It satisfies
// store.ReceiptSource, so the snapshot service cannot tell it apart from the
// remote HTTP client.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) ReceiptRepositoryInterface {
	return &receiptRepository{
		db: db,
	}
}

// FetchReceipts returns one page of receipts with their line items in
// stable store order
func (r *receiptRepository) FetchReceipts(ctx context.Context, offset, limit int) ([]models.Receipt, error) {
	var receipts []models.Receipt
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch receipts: %w", err)
	}
	return receipts, nil
}

// UpdateReceipt applies a partial edit and returns the updated receipt
func (r *receiptRepository) UpdateReceipt(ctx context.Context, id uint, update *models.ReceiptUpdate) (*models.Receipt, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.MerchantName != nil {
		fields["merchant_name"] = *update.MerchantName
	}
	if update.TotalAmount != nil {
		fields["total_amount"] = *update.TotalAmount
	}
	if update.PurchaseDate != nil {
		fields["purchase_date"] = *update.PurchaseDate
	}

	result := r.db.WithContext(ctx).
		Model(&models.Receipt{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update receipt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrReceiptNotFound
	}

	return r.getByID(ctx, id)
}

// DeleteReceipt removes a receipt; line items cascade
func (r *receiptRepository) DeleteReceipt(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Receipt{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete receipt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrReceiptNotFound
	}
	return nil
}

// Create persists a new receipt with its items
func (r *receiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	if err := r.db.WithContext(ctx).Create(receipt).Error; err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}
	return nil
}

// CreateBatch persists receipts in a single database transaction
func (r *receiptRepository) CreateBatch(ctx context.Context, receipts []*models.Receipt) error {
	if len(receipts) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&receipts).Error; err != nil {
			return fmt.Errorf("failed to create batch receipts: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored receipts
func (r *receiptRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Receipt{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count receipts: %w", err)
	}
	return total, nil
}

// DeleteAll clears the store; used by the dev reset endpoint
func (r *receiptRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM receipt_items").Error; err != nil {
		return fmt.Errorf("failed to clear receipt items: %w", err)
	}
	if err := r.db.WithContext(ctx).Exec("DELETE FROM receipts").Error; err != nil {
		return fmt.Errorf("failed to clear receipts: %w", err)
	}
	return nil
}

func (r *receiptRepository) getByID(ctx context.Context, id uint) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.db.WithContext(ctx).Preload("Items").First(&receipt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return &receipt, nil
}
