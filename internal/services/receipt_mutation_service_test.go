package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"receipt-insights/internal/models"
	"receipt-insights/internal/store"

	"github.com/stretchr/testify/suite"
)

// mutableSource records mutation calls and returns scripted results
type mutableSource struct {
	updated   *models.Receipt
	updateErr error
	deleteErr error

	updateCalls int
	deleteCalls int
	lastID      uint
}

func (s *mutableSource) FetchReceipts(ctx context.Context, offset, limit int) ([]models.Receipt, error) {
	return []models.Receipt{}, nil
}

func (s *mutableSource) UpdateReceipt(ctx context.Context, id uint, update *models.ReceiptUpdate) (*models.Receipt, error) {
	s.updateCalls++
	s.lastID = id
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

func (s *mutableSource) DeleteReceipt(ctx context.Context, id uint) error {
	s.deleteCalls++
	s.lastID = id
	return s.deleteErr
}

// refreshSpy counts refreshes and optionally fails them
type refreshSpy struct {
	refreshes  int
	refreshErr error
}

func (s *refreshSpy) Refresh(ctx context.Context) error {
	s.refreshes++
	return s.refreshErr
}

func (s *refreshSpy) Receipts() ([]models.Receipt, error) {
	return []models.Receipt{}, nil
}

func (s *refreshSpy) LastRefreshed() (time.Time, bool) {
	return time.Now(), true
}

type ReceiptMutationServiceTestSuite struct {
	suite.Suite
	source   *mutableSource
	snapshot *refreshSpy
	service  ReceiptMutationServiceInterface
}

func TestReceiptMutationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReceiptMutationServiceTestSuite))
}

func (s *ReceiptMutationServiceTestSuite) SetupTest() {
	s.source = &mutableSource{}
	s.snapshot = &refreshSpy{}
	s.service = NewReceiptMutationService(s.source, s.snapshot)
}

func (s *ReceiptMutationServiceTestSuite) TestUpdateReceipt_ForwardsAndRefreshes() {
	merchant := "Trader Joe's"
	s.source.updated = &models.Receipt{ID: 4, Filename: "receipt.jpg", MerchantName: &merchant}

	receipt, err := s.service.UpdateReceipt(context.Background(), 4, &models.ReceiptUpdate{MerchantName: &merchant})

	s.NoError(err)
	s.Equal(uint(4), receipt.ID)
	s.Equal(uint(4), s.source.lastID)
	s.Equal(1, s.snapshot.refreshes, "derived views recompute from the refreshed snapshot")
}

func (s *ReceiptMutationServiceTestSuite) TestUpdateReceipt_EmptyUpdateRejected() {
	_, err := s.service.UpdateReceipt(context.Background(), 4, &models.ReceiptUpdate{})

	s.ErrorIs(err, ErrEmptyUpdate)
	s.Zero(s.source.updateCalls)
	s.Zero(s.snapshot.refreshes)
}

func (s *ReceiptMutationServiceTestSuite) TestUpdateReceipt_NilUpdateRejected() {
	_, err := s.service.UpdateReceipt(context.Background(), 4, nil)

	s.ErrorIs(err, ErrEmptyUpdate)
}

func (s *ReceiptMutationServiceTestSuite) TestUpdateReceipt_NotFoundMapped() {
	merchant := "Aldi"
	s.source.updateErr = store.ErrReceiptNotFound

	_, err := s.service.UpdateReceipt(context.Background(), 99, &models.ReceiptUpdate{MerchantName: &merchant})

	s.ErrorIs(err, ErrReceiptNotFound)
	s.Zero(s.snapshot.refreshes, "failed mutations never trigger a refresh")
}

func (s *ReceiptMutationServiceTestSuite) TestUpdateReceipt_StoreErrorWrapped() {
	merchant := "Aldi"
	s.source.updateErr = store.ErrStoreUnavailable

	_, err := s.service.UpdateReceipt(context.Background(), 4, &models.ReceiptUpdate{MerchantName: &merchant})

	s.ErrorIs(err, store.ErrStoreUnavailable)
}

func (s *ReceiptMutationServiceTestSuite) TestUpdateReceipt_RefreshFailureDoesNotFailTheMutation() {
	merchant := "Aldi"
	s.source.updated = &models.Receipt{ID: 4, Filename: "receipt.jpg"}
	s.snapshot.refreshErr = errors.New("upstream down")

	receipt, err := s.service.UpdateReceipt(context.Background(), 4, &models.ReceiptUpdate{MerchantName: &merchant})

	s.NoError(err, "the mutation already landed; the snapshot catches up later")
	s.NotNil(receipt)
}

func (s *ReceiptMutationServiceTestSuite) TestDeleteReceipt_ForwardsAndRefreshes() {
	err := s.service.DeleteReceipt(context.Background(), 12)

	s.NoError(err)
	s.Equal(1, s.source.deleteCalls)
	s.Equal(uint(12), s.source.lastID)
	s.Equal(1, s.snapshot.refreshes)
}

func (s *ReceiptMutationServiceTestSuite) TestDeleteReceipt_NotFoundMapped() {
	s.source.deleteErr = store.ErrReceiptNotFound

	err := s.service.DeleteReceipt(context.Background(), 99)

	s.ErrorIs(err, ErrReceiptNotFound)
	s.Zero(s.snapshot.refreshes)
}
