package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"receipt-insights/internal/models"
)

// ReceiptListParams carries the query engine parameters from the list
// endpoint. Sort defaults to newest when empty.
type ReceiptListParams struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Sort     string `query:"sort"`
	Offset   int    `query:"offset"`
	Limit    int    `query:"limit"`
}

// ReceiptItemResponse is one extracted line item on the wire
type ReceiptItemResponse struct {
	ID          uint    `json:"id"`
	ItemName    string  `json:"item_name"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	TotalPrice  string  `json:"total_price"`
	Category    *string `json:"category"`
	Description *string `json:"description,omitempty"`
}

// ReceiptResponse is one receipt on the wire. Amounts serialize as decimal
// strings; absent fields serialize as null so clients can tell "missing"
// from "zero".
type ReceiptResponse struct {
	ID           uint                  `json:"id"`
	Filename     string                `json:"filename"`
	TotalAmount  *string               `json:"total_amount"`
	MerchantName *string               `json:"merchant_name"`
	PurchaseDate *time.Time            `json:"purchase_date"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    *time.Time            `json:"updated_at,omitempty"`
	Items        []ReceiptItemResponse `json:"items"`
}

// ListMeta carries pagination metadata for list responses
type ListMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit,omitempty"`
}

// ListReceiptsResponse is the list endpoint payload
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Meta     ListMeta          `json:"meta"`
}

// CategoriesResponse lists the distinct categories across the collection
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// UpdateReceiptRequest is the partial edit payload. Absent fields stay
// untouched.
type UpdateReceiptRequest struct {
	MerchantName *string  `json:"merchant_name" validate:"omitempty,min=1,max=255"`
	TotalAmount  *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	PurchaseDate *string  `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

// ToModel converts the request to the domain update struct. The purchase
// date is already format-validated by the time this runs.
func (r *UpdateReceiptRequest) ToModel() (*models.ReceiptUpdate, error) {
	update := &models.ReceiptUpdate{
		MerchantName: r.MerchantName,
	}

	if r.TotalAmount != nil {
		amount := decimal.NewFromFloat(*r.TotalAmount)
		update.TotalAmount = &amount
	}

	if r.PurchaseDate != nil {
		purchaseDate, err := time.Parse("2006-01-02", *r.PurchaseDate)
		if err != nil {
			return nil, err
		}
		update.PurchaseDate = &purchaseDate
	}

	return update, nil
}

// IsEmpty reports whether the request carries no fields to change
func (r *UpdateReceiptRequest) IsEmpty() bool {
	return r.MerchantName == nil && r.TotalAmount == nil && r.PurchaseDate == nil
}

// ToReceiptResponse converts a receipt model to its wire form
func ToReceiptResponse(receipt *models.Receipt) ReceiptResponse {
	response := ReceiptResponse{
		ID:           receipt.ID,
		Filename:     receipt.Filename,
		MerchantName: receipt.MerchantName,
		PurchaseDate: receipt.PurchaseDate,
		CreatedAt:    receipt.CreatedAt,
		UpdatedAt:    receipt.UpdatedAt,
		Items:        make([]ReceiptItemResponse, 0, len(receipt.Items)),
	}

	if receipt.TotalAmount != nil {
		amount := receipt.TotalAmount.StringFixed(2)
		response.TotalAmount = &amount
	}

	for i := range receipt.Items {
		item := &receipt.Items[i]
		response.Items = append(response.Items, ReceiptItemResponse{
			ID:          item.ID,
			ItemName:    item.ItemName,
			Quantity:    item.Quantity.String(),
			UnitPrice:   item.UnitPrice.StringFixed(2),
			TotalPrice:  item.TotalPrice.StringFixed(2),
			Category:    item.Category,
			Description: item.Description,
		})
	}

	return response
}

// ToReceiptResponses converts a receipt slice to wire form
func ToReceiptResponses(receipts []models.Receipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		responses = append(responses, ToReceiptResponse(&receipts[i]))
	}
	return responses
}
