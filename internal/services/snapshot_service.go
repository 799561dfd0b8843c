package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"receipt-insights/internal/models"
	"receipt-insights/internal/store"
)

const (
	DefaultSnapshotPageSize = 200
	maxSnapshotPages        = 5000
)

var (
	ErrSnapshotNotReady = errors.New("receipt snapshot has not been loaded yet")
)

// snapshotService owns the in-memory receipt collection. Every refresh
// replaces the collection wholesale under a write lock; readers always see
// either the previous complete snapshot or the new one, never a partial
// load. Each refresh carries a monotonically increasing sequence number so
// a slow response that was superseded by a newer refresh is discarded
// instead of overwriting newer data.
type snapshotService struct {
	source   store.ReceiptSource
	metrics  MetricsRecorderInterface
	pageSize int

	issued atomic.Uint64

	mu           sync.RWMutex
	receipts     []models.Receipt
	loaded       bool
	loadedAt     time.Time
	installedSeq uint64
}

func NewSnapshotService(source store.ReceiptSource, metrics MetricsRecorderInterface, pageSize int) SnapshotServiceInterface {
	if pageSize <= 0 {
		pageSize = DefaultSnapshotPageSize
	}
	return &snapshotService{
		source:   source,
		metrics:  metrics,
		pageSize: pageSize,
	}
}

func (s *snapshotService) Refresh(ctx context.Context) error {
	seq := s.issued.Add(1)
	started := time.Now()

	receipts, err := s.fetchAll(ctx)
	if err != nil {
		s.incrementCounter("snapshot_refresh", map[string]string{"result": "error"})
		slog.Error("snapshot refresh failed", "seq", seq, "error", err)
		return err
	}

	normalizeCategories(receipts)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Discard responses that lost the race to a newer refresh. Silently
	// dropping them is a correctness requirement, not an optimization.
	if seq <= s.installedSeq {
		s.incrementCounter("snapshot_refresh", map[string]string{"result": "stale_discarded"})
		slog.Info("stale snapshot response discarded",
			"seq", seq,
			"installed_seq", s.installedSeq)
		return nil
	}

	s.receipts = receipts
	s.loaded = true
	s.loadedAt = time.Now()
	s.installedSeq = seq

	s.incrementCounter("snapshot_refresh", map[string]string{"result": "installed"})
	s.recordGauge("snapshot_receipts", float64(len(receipts)))

	slog.Info("receipt snapshot installed",
		"seq", seq,
		"receipts", len(receipts),
		"duration_ms", time.Since(started).Milliseconds())

	return nil
}

func (s *snapshotService) Receipts() ([]models.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrSnapshotNotReady
	}

	// Callers sort and filter their own copy; the snapshot stays immutable
	receipts := make([]models.Receipt, len(s.receipts))
	copy(receipts, s.receipts)
	return receipts, nil
}

func (s *snapshotService) LastRefreshed() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt, s.loaded
}

func (s *snapshotService) fetchAll(ctx context.Context) ([]models.Receipt, error) {
	var all []models.Receipt
	for page := 0; page < maxSnapshotPages; page++ {
		batch, err := s.source.FetchReceipts(ctx, page*s.pageSize, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch receipts page %d: %w", page, err)
		}
		all = append(all, batch...)
		if len(batch) < s.pageSize {
			return all, nil
		}
	}
	return nil, fmt.Errorf("receipt store returned more than %d pages", maxSnapshotPages)
}

// normalizeCategories maps item categories onto the closed taxonomy at the
// store boundary so downstream grouping never sees stray labels
func normalizeCategories(receipts []models.Receipt) {
	for i := range receipts {
		for j := range receipts[i].Items {
			item := &receipts[i].Items[j]
			if item.Category == nil {
				continue
			}
			normalized := models.NormalizeCategory(*item.Category)
			if normalized == "" {
				item.Category = nil
				continue
			}
			item.Category = &normalized
		}
	}
}

func (s *snapshotService) incrementCounter(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

func (s *snapshotService) recordGauge(name string, value float64) {
	if s.metrics != nil {
		s.metrics.RecordGauge(name, value, nil)
	}
}
