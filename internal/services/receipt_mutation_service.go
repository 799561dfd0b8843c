package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"receipt-insights/internal/models"
	"receipt-insights/internal/store"
)

var (
	ErrEmptyUpdate = errors.New("receipt update changes nothing")
)

// receiptMutationService forwards mutations to the receipt source. The
// engines never patch the snapshot in place; after a successful mutation
// the snapshot is refreshed so every derived view is recomputed from the
// new collection.
type receiptMutationService struct {
	source   store.ReceiptSource
	snapshot SnapshotServiceInterface
}

func NewReceiptMutationService(source store.ReceiptSource, snapshot SnapshotServiceInterface) ReceiptMutationServiceInterface {
	return &receiptMutationService{
		source:   source,
		snapshot: snapshot,
	}
}

func (s *receiptMutationService) UpdateReceipt(ctx context.Context, id uint, update *models.ReceiptUpdate) (*models.Receipt, error) {
	if update == nil || update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	receipt, err := s.source.UpdateReceipt(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrReceiptNotFound) {
			return nil, ErrReceiptNotFound
		}
		slog.Error("receipt update failed", "receipt_id", id, "error", err)
		return nil, fmt.Errorf("failed to update receipt: %w", err)
	}

	s.refreshAfterMutation(ctx, "update", id)
	return receipt, nil
}

func (s *receiptMutationService) DeleteReceipt(ctx context.Context, id uint) error {
	if err := s.source.DeleteReceipt(ctx, id); err != nil {
		if errors.Is(err, store.ErrReceiptNotFound) {
			return ErrReceiptNotFound
		}
		slog.Error("receipt delete failed", "receipt_id", id, "error", err)
		return fmt.Errorf("failed to delete receipt: %w", err)
	}

	s.refreshAfterMutation(ctx, "delete", id)
	return nil
}

func (s *receiptMutationService) refreshAfterMutation(ctx context.Context, op string, id uint) {
	if err := s.snapshot.Refresh(ctx); err != nil {
		// The mutation itself succeeded; the snapshot catches up on the
		// next refresh.
		slog.Warn("snapshot refresh after mutation failed",
			"operation", op,
			"receipt_id", id,
			"error", err)
	}
}
