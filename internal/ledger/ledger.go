// Package ledger keeps the durable sales history and builds the monthly report.
//
// The whole history is one JSON array stored under a single key. Every sale
// is a read-modify-write of the full array. Writers in other processes are
// not coordinated with: the last whole-array write wins.
//
// A write that fails from the ledger's point of view may still have reached
// the store (a timed-out Redis SET, for instance). Pending sales that show up
// in the stored history are therefore dropped from the pending set instead of
// being written again.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/billdesk/internal/calculator"
	"github.com/mmynk/billdesk/internal/models"
	"github.com/mmynk/billdesk/internal/storage"
)

// DefaultKey is the store key the browser version of the tool used.
const DefaultKey = "starFurnitureSales"

// createdAtLayout matches JavaScript's Date.prototype.toISOString.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

var ErrNonPositiveTotal = errors.New("sale total must be greater than zero")

// Durability tells the caller whether a recorded sale reached the store.
type Durability string

const (
	// Persisted means the full history including the sale was written.
	Persisted Durability = "persisted"
	// InMemoryOnly means the write failed; the sale is held for this session
	// and retried with the next sale's write.
	InMemoryOnly Durability = "in_memory_only"
)

// Ledger appends sales to the history in a storage.Store.
type Ledger struct {
	store  storage.Store
	key    string
	now    func() time.Time
	logger *slog.Logger

	mu      sync.Mutex
	pending []models.SaleRecord
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger sets the logger used for degraded-persistence warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New creates a ledger over store. An empty key selects DefaultKey.
func New(store storage.Store, key string, opts ...Option) *Ledger {
	if key == "" {
		key = DefaultKey
	}
	l := &Ledger{
		store:  store,
		key:    key,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadHistory returns every recorded sale, oldest first. It never fails:
// a missing, unreadable or malformed history reads as empty. Sales that
// could not be written this session are included at the end.
func (l *Ledger) LoadHistory(ctx context.Context) []models.SaleRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	history, err := l.loadPersisted(ctx)
	if err == nil {
		l.reconcile(history)
	}
	return append(history, l.pending...)
}

// RecordSale appends a sale dated date with the given total and writes the
// whole history back. A failed write is not an error: the sale is kept in
// memory and InMemoryOnly is returned. Only a non-positive or non-finite
// total is refused.
func (l *Ledger) RecordSale(ctx context.Context, date string, total float64) (models.SaleRecord, Durability, error) {
	if !(total > 0) || math.IsInf(total, 1) {
		return models.SaleRecord{}, "", ErrNonPositiveTotal
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	sale := models.SaleRecord{
		Date:      date,
		Total:     total,
		CreatedAt: l.now().UTC().Format(createdAtLayout),
	}

	history, err := l.loadPersisted(ctx)
	if err != nil {
		// Writing now would replace a history we could not read.
		l.pending = append(l.pending, sale)
		l.logger.Warn("Sale kept in memory only: history unreadable",
			"key", l.key, "pending", len(l.pending), "error", err)
		return sale, InMemoryOnly, nil
	}
	l.reconcile(history)

	next := make([]models.SaleRecord, 0, len(history)+len(l.pending)+1)
	next = append(next, history...)
	next = append(next, l.pending...)
	next = append(next, sale)

	if err := l.save(ctx, next); err != nil {
		l.pending = append(l.pending, sale)
		l.logger.Warn("Sale kept in memory only: history write failed",
			"key", l.key, "pending", len(l.pending), "error", err)
		return sale, InMemoryOnly, nil
	}

	if len(l.pending) > 0 {
		l.logger.Info("Flushed in-memory sales", "key", l.key, "count", len(l.pending))
	}
	l.pending = nil
	return sale, Persisted, nil
}

// BuildMonthlyReport sums the history by YYYY-MM month, ascending.
func (l *Ledger) BuildMonthlyReport(ctx context.Context) []models.MonthlyTotal {
	return calculator.MonthlyReport(l.LoadHistory(ctx))
}

// Degraded reports whether some sales of this session are not yet durable.
func (l *Ledger) Degraded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending) > 0
}

// reconcile removes pending sales that history already holds. Each stored
// record absorbs at most one pending sale, so identical sales are kept apart.
// Callers hold l.mu.
func (l *Ledger) reconcile(history []models.SaleRecord) {
	if len(l.pending) == 0 {
		return
	}
	stored := make(map[models.SaleRecord]int, len(history))
	for _, s := range history {
		stored[s]++
	}
	kept := l.pending[:0]
	for _, s := range l.pending {
		if stored[s] > 0 {
			stored[s]--
			continue
		}
		kept = append(kept, s)
	}
	if dropped := len(l.pending) - len(kept); dropped > 0 {
		l.logger.Info("Pending sales found in stored history", "key", l.key, "count", dropped)
	}
	l.pending = kept
}

// loadPersisted reads the stored history. A read error is returned so
// RecordSale can avoid overwriting; malformed data is logged and read as empty.
func (l *Ledger) loadPersisted(ctx context.Context) ([]models.SaleRecord, error) {
	raw, found, err := l.store.Get(ctx, l.key)
	if err != nil {
		l.logger.Warn("Failed to read sales history", "key", l.key, "error", err)
		return []models.SaleRecord{}, err
	}
	if !found || raw == "" {
		return []models.SaleRecord{}, nil
	}
	history, err := decodeHistory(raw)
	if err != nil {
		l.logger.Warn("Ignoring malformed sales history", "key", l.key, "error", err)
		return []models.SaleRecord{}, nil
	}
	return history, nil
}

func (l *Ledger) save(ctx context.Context, history []models.SaleRecord) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return l.store.Put(ctx, l.key, string(data))
}

// storedSale mirrors a history element loosely so hand-edited or older
// entries with odd field types still load.
type storedSale struct {
	Date      json.RawMessage `json:"date"`
	Total     json.RawMessage `json:"total"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

// decodeHistory parses a stored history. Anything but a JSON array is an
// error; array elements that are not objects are skipped.
func decodeHistory(raw string) ([]models.SaleRecord, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, err
	}

	history := make([]models.SaleRecord, 0, len(elems))
	for _, elem := range elems {
		if !strings.HasPrefix(strings.TrimSpace(string(elem)), "{") {
			continue
		}
		var s storedSale
		if err := json.Unmarshal(elem, &s); err != nil {
			continue
		}
		history = append(history, models.SaleRecord{
			Date:      rawString(s.Date),
			Total:     rawNumber(s.Total),
			CreatedAt: rawString(s.CreatedAt),
		})
	}
	return history, nil
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// rawNumber coerces a stored total: numbers and numeric strings are used,
// everything else counts as 0.
func rawNumber(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	n, ok := calculator.ParseNumber(s)
	if !ok {
		return 0
	}
	return n
}
