package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMissingFilename  = errors.New("receipt filename is required")
	ErrNegativeQuantity = errors.New("item quantity must not be negative")
	ErrMissingItemName  = errors.New("item name is required")
)

// ReceiptItem represents a single extracted line item on a receipt.
// TotalPrice is the authoritative line total for aggregation; it is not
// required to equal Quantity * UnitPrice because extraction noise is
// tolerated upstream.
type ReceiptItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ReceiptID   uint            `gorm:"not null;index" json:"receipt_id"`
	ItemName    string          `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,3);not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_price"`
	Category    *string         `gorm:"type:varchar(50)" json:"category"`
	Description *string         `gorm:"type:text" json:"description"`
}

// Receipt represents one uploaded purchase record with its extracted fields.
// TotalAmount may be absent (extraction failure) and may diverge from the
// sum of item totals; receipt-level metrics use TotalAmount, item-level
// metrics use the items' TotalPrice.
type Receipt struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename     string           `gorm:"type:varchar(255);not null" json:"filename"`
	FilePath     string           `gorm:"type:varchar(512)" json:"file_path"`
	TotalAmount  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_amount"`
	MerchantName *string          `gorm:"type:varchar(255)" json:"merchant_name"`
	PurchaseDate *time.Time       `json:"purchase_date"`
	CreatedAt    time.Time        `gorm:"not null;index" json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at"`
	RawText      *string          `gorm:"type:text" json:"raw_text"`
	Items        []ReceiptItem    `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeCreate hook for Receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r.Validate()
}

// Validate validates the receipt fields
func (r *Receipt) Validate() error {
	if r.Filename == "" {
		return ErrMissingFilename
	}
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the line item fields
func (it *ReceiptItem) Validate() error {
	if it.ItemName == "" {
		return ErrMissingItemName
	}
	if it.Quantity.IsNegative() {
		return ErrNegativeQuantity
	}
	return nil
}

// TableName returns the table name for Receipt
func (r *Receipt) TableName() string {
	return "receipts"
}

// TableName returns the table name for ReceiptItem
func (it *ReceiptItem) TableName() string {
	return "receipt_items"
}

// AnchorDate returns the date used for time-bucketed metrics: the purchase
// date when present, otherwise the creation timestamp. The second return is
// false when the receipt has neither and must be excluded from buckets.
func (r *Receipt) AnchorDate() (time.Time, bool) {
	if r.PurchaseDate != nil && !r.PurchaseDate.IsZero() {
		return *r.PurchaseDate, true
	}
	if !r.CreatedAt.IsZero() {
		return r.CreatedAt, true
	}
	return time.Time{}, false
}

// Amount returns the receipt total with a missing amount treated as zero
func (r *Receipt) Amount() decimal.Decimal {
	if r.TotalAmount == nil {
		return decimal.Zero
	}
	return *r.TotalAmount
}

// Merchant returns the merchant name with a missing name treated as empty
func (r *Receipt) Merchant() string {
	if r.MerchantName == nil {
		return ""
	}
	return *r.MerchantName
}

// HasCategory reports whether the line item carries a non-empty category
func (it *ReceiptItem) HasCategory() bool {
	return it.Category != nil && *it.Category != ""
}

// CategoryOrEmpty returns the item category with absence treated as empty
func (it *ReceiptItem) CategoryOrEmpty() string {
	if it.Category == nil {
		return ""
	}
	return *it.Category
}

// ItemTotal sums the authoritative line totals across all items
func (r *Receipt) ItemTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range r.Items {
		total = total.Add(r.Items[i].TotalPrice)
	}
	return total
}
