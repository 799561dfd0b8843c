package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptUpdate carries a partial receipt edit forwarded to the store.
// Nil fields are left untouched.
type ReceiptUpdate struct {
	MerchantName *string          `json:"merchant_name,omitempty"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
	PurchaseDate *time.Time       `json:"purchase_date,omitempty"`
}

// IsEmpty reports whether the update changes nothing
func (u *ReceiptUpdate) IsEmpty() bool {
	return u.MerchantName == nil && u.TotalAmount == nil && u.PurchaseDate == nil
}
