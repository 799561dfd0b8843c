package services

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"receipt-insights/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrInvalidSortKey  = errors.New("invalid sort key")
)

type receiptQueryService struct {
	snapshot SnapshotServiceInterface
	locale   language.Tag
}

// NewReceiptQueryService creates the query engine over the snapshot.
// The locale drives merchant-name collation.
func NewReceiptQueryService(snapshot SnapshotServiceInterface, locale language.Tag) ReceiptQueryServiceInterface {
	return &receiptQueryService{
		snapshot: snapshot,
		locale:   locale,
	}
}

func (s *receiptQueryService) ListReceipts(filters models.ReceiptFilters) ([]models.Receipt, int, error) {
	sortKey := filters.SortKey
	if sortKey == "" {
		sortKey = models.SortNewest
	}
	if !models.IsValidSortKey(sortKey) {
		return nil, 0, ErrInvalidSortKey
	}

	receipts, err := s.snapshot.Receipts()
	if err != nil {
		return nil, 0, err
	}

	filtered := s.filterReceipts(receipts, filters.Search, filters.Category)
	s.sortReceipts(filtered, sortKey)

	total := len(filtered)
	page := paginate(filtered, filters.Offset, filters.Limit)

	slog.Info("receipt list computed",
		"search", filters.Search,
		"category", filters.Category,
		"sort", sortKey,
		"matched", total,
		"returned", len(page))

	return page, total, nil
}

func (s *receiptQueryService) GetReceipt(id uint) (*models.Receipt, error) {
	receipts, err := s.snapshot.Receipts()
	if err != nil {
		return nil, err
	}

	for i := range receipts {
		if receipts[i].ID == id {
			receipt := receipts[i]
			return &receipt, nil
		}
	}
	return nil, ErrReceiptNotFound
}

// CategoryUniverse reflects the full collection even while a filter is
// active, so the filter control always lists every category in use.
func (s *receiptQueryService) CategoryUniverse() ([]string, error) {
	receipts, err := s.snapshot.Receipts()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for i := range receipts {
		for j := range receipts[i].Items {
			item := &receipts[i].Items[j]
			if item.HasCategory() {
				seen[*item.Category] = true
			}
		}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// filterReceipts applies the search and category predicates as a
// conjunction, preserving collection order
func (s *receiptQueryService) filterReceipts(receipts []models.Receipt, search, category string) []models.Receipt {
	term := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Receipt, 0, len(receipts))
	for i := range receipts {
		if !matchesSearch(&receipts[i], term) {
			continue
		}
		if !matchesCategory(&receipts[i], category) {
			continue
		}
		filtered = append(filtered, receipts[i])
	}
	return filtered
}

// matchesSearch checks the case-insensitive substring predicate against
// merchant name, filename and raw text. Absent fields never match; an
// empty term matches everything.
func matchesSearch(r *models.Receipt, term string) bool {
	if term == "" {
		return true
	}
	if r.MerchantName != nil && strings.Contains(strings.ToLower(*r.MerchantName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Filename), term) {
		return true
	}
	if r.RawText != nil && strings.Contains(strings.ToLower(*r.RawText), term) {
		return true
	}
	return false
}

// matchesCategory checks for at least one item with the exact category.
// Categories are a closed taxonomy, so the comparison is case-sensitive.
func matchesCategory(r *models.Receipt, category string) bool {
	if category == "" {
		return true
	}
	for i := range r.Items {
		if r.Items[i].Category != nil && *r.Items[i].Category == category {
			return true
		}
	}
	return false
}

// sortReceipts orders the slice in place. The sort is stable so ties keep
// their original collection order.
func (s *receiptQueryService) sortReceipts(receipts []models.Receipt, sortKey string) {
	switch sortKey {
	case models.SortNewest:
		sort.SliceStable(receipts, func(i, j int) bool {
			return receipts[i].CreatedAt.After(receipts[j].CreatedAt)
		})
	case models.SortOldest:
		sort.SliceStable(receipts, func(i, j int) bool {
			return receipts[i].CreatedAt.Before(receipts[j].CreatedAt)
		})
	case models.SortAmountHigh:
		sort.SliceStable(receipts, func(i, j int) bool {
			return receipts[i].Amount().GreaterThan(receipts[j].Amount())
		})
	case models.SortAmountLow:
		sort.SliceStable(receipts, func(i, j int) bool {
			return receipts[i].Amount().LessThan(receipts[j].Amount())
		})
	case models.SortMerchant:
		// A fresh collator per sort: collators carry internal buffers and
		// are not safe for concurrent use.
		collator := collate.New(s.locale)
		sort.SliceStable(receipts, func(i, j int) bool {
			return collator.CompareString(receipts[i].Merchant(), receipts[j].Merchant()) < 0
		})
	}
}

func paginate(receipts []models.Receipt, offset, limit int) []models.Receipt {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(receipts) {
		return []models.Receipt{}
	}
	end := len(receipts)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return receipts[offset:end]
}
