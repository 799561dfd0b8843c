package repositories

import (
	"context"
	"testing"
	"time"

	"receipt-insights/internal/database"
	"receipt-insights/internal/models"
	"receipt-insights/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReceiptRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo ReceiptRepositoryInterface
	ctx  context.Context
}

func TestReceiptRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReceiptRepositoryTestSuite))
}

func (s *ReceiptRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReceiptRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *ReceiptRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ReceiptRepositoryTestSuite) newReceipt(merchant string, amount float64) *models.Receipt {
	total := decimal.NewFromFloat(amount)
	category := models.CategoryGroceries
	return &models.Receipt{
		Filename:     gofakeit.Word() + ".jpg",
		MerchantName: &merchant,
		TotalAmount:  &total,
		CreatedAt:    time.Now().UTC(),
		Items: []models.ReceiptItem{
			{
				ItemName:   gofakeit.ProductName(),
				Quantity:   decimal.NewFromInt(1),
				UnitPrice:  total,
				TotalPrice: total,
				Category:   &category,
			},
		},
	}
}

func (s *ReceiptRepositoryTestSuite) TestCreateAndFetch() {
	receipt := s.newReceipt("Whole Foods Market", 42.50)
	s.NoError(s.repo.Create(s.ctx, receipt))
	s.NotZero(receipt.ID)

	receipts, err := s.repo.FetchReceipts(s.ctx, 0, 10)

	s.NoError(err)
	s.Len(receipts, 1)
	s.Equal("Whole Foods Market", *receipts[0].MerchantName)
	s.Len(receipts[0].Items, 1, "line items come preloaded")
}

func (s *ReceiptRepositoryTestSuite) TestFetchReceipts_Pagination() {
	for i := 0; i < 5; i++ {
		s.NoError(s.repo.Create(s.ctx, s.newReceipt("Aldi", float64(10+i))))
	}

	first, err := s.repo.FetchReceipts(s.ctx, 0, 2)
	s.NoError(err)
	s.Len(first, 2)

	rest, err := s.repo.FetchReceipts(s.ctx, 4, 2)
	s.NoError(err)
	s.Len(rest, 1)

	past, err := s.repo.FetchReceipts(s.ctx, 10, 2)
	s.NoError(err)
	s.Empty(past)
}

func (s *ReceiptRepositoryTestSuite) TestFetchReceipts_StableOrder() {
	a := s.newReceipt("Shell", 20)
	b := s.newReceipt("IKEA", 30)
	s.NoError(s.repo.Create(s.ctx, a))
	s.NoError(s.repo.Create(s.ctx, b))

	receipts, err := s.repo.FetchReceipts(s.ctx, 0, 10)

	s.NoError(err)
	s.Equal(a.ID, receipts[0].ID)
	s.Equal(b.ID, receipts[1].ID)
}

func (s *ReceiptRepositoryTestSuite) TestUpdateReceipt_PartialFields() {
	receipt := s.newReceipt("Shel", 20)
	s.NoError(s.repo.Create(s.ctx, receipt))

	merchant := "Shell"
	amount := decimal.NewFromFloat(21.75)
	updated, err := s.repo.UpdateReceipt(s.ctx, receipt.ID, &models.ReceiptUpdate{
		MerchantName: &merchant,
		TotalAmount:  &amount,
	})

	s.NoError(err)
	s.Equal("Shell", *updated.MerchantName)
	s.True(updated.TotalAmount.Equal(amount))
	s.NotNil(updated.UpdatedAt)
	s.Len(updated.Items, 1, "untouched fields and items survive the edit")
}

func (s *ReceiptRepositoryTestSuite) TestUpdateReceipt_NotFound() {
	merchant := "Aldi"
	_, err := s.repo.UpdateReceipt(s.ctx, 9999, &models.ReceiptUpdate{MerchantName: &merchant})

	s.ErrorIs(err, store.ErrReceiptNotFound)
}

func (s *ReceiptRepositoryTestSuite) TestDeleteReceipt() {
	receipt := s.newReceipt("CVS Pharmacy", 15)
	s.NoError(s.repo.Create(s.ctx, receipt))

	s.NoError(s.repo.DeleteReceipt(s.ctx, receipt.ID))

	receipts, err := s.repo.FetchReceipts(s.ctx, 0, 10)
	s.NoError(err)
	s.Empty(receipts)
}

func (s *ReceiptRepositoryTestSuite) TestDeleteReceipt_NotFound() {
	s.ErrorIs(s.repo.DeleteReceipt(s.ctx, 9999), store.ErrReceiptNotFound)
}

func (s *ReceiptRepositoryTestSuite) TestCreateBatchAndCount() {
	batch := []*models.Receipt{
		s.newReceipt("Aldi", 10),
		s.newReceipt("Shell", 20),
		s.newReceipt("IKEA", 30),
	}

	s.NoError(s.repo.CreateBatch(s.ctx, batch))

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(3), total)
}

func (s *ReceiptRepositoryTestSuite) TestCreateBatch_EmptyIsNoop() {
	s.NoError(s.repo.CreateBatch(s.ctx, nil))

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(total)
}

func (s *ReceiptRepositoryTestSuite) TestDeleteAll() {
	s.NoError(s.repo.Create(s.ctx, s.newReceipt("Aldi", 10)))
	s.NoError(s.repo.Create(s.ctx, s.newReceipt("Shell", 20)))

	s.NoError(s.repo.DeleteAll(s.ctx))

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(total)
}
