package models

// Sort keys accepted by the receipt list view
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortAmountHigh = "amount_high"
	SortAmountLow  = "amount_low"
	SortMerchant   = "merchant"
)

// IsValidSortKey checks if the sort key is one of the supported orders
func IsValidSortKey(key string) bool {
	switch key {
	case SortNewest, SortOldest, SortAmountHigh, SortAmountLow, SortMerchant:
		return true
	default:
		return false
	}
}

// ReceiptFilters contains the query parameters of the receipt list view.
// Search and Category compose as a conjunction; an empty Search matches all
// receipts and an empty Category disables the category predicate.
type ReceiptFilters struct {
	Search   string
	Category string
	SortKey  string
	Offset   int
	Limit    int
}
