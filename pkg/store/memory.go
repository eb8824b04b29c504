package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lattice-store/lattice-go/pkg/log"
	"github.com/lattice-store/lattice-go/pkg/wire"
)

// Memory is an in-process Client for tests and local development.
// Items are deep-copied on the way in and out, so callers and the
// store never share value trees.
type Memory struct {
	mu       sync.RWMutex
	items    map[string]Item
	logger   *slog.Logger
	trace    log.Logger
	clientID string
}

var _ Client = (*Memory)(nil)

// NewMemory creates an empty in-memory client. logger may be nil to
// disable logging.
func NewMemory(logger *slog.Logger) *Memory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clientID := uuid.NewString()
	return &Memory{
		items:    make(map[string]Item),
		logger:   logger.With("client_id", clientID),
		trace:    log.NoopLogger{},
		clientID: clientID,
	}
}

// SetTrace attaches an operation trace logger. Pass nil to disable
// tracing. Not safe to call concurrently with operations.
func (m *Memory) SetTrace(trace log.Logger) {
	if trace == nil {
		trace = log.NoopLogger{}
	}
	m.trace = trace
}

// traceOp records one completed operation on the trace logger.
func (m *Memory) traceOp(op log.Op, key string, started time.Time, found bool, attrs int, err error) {
	event := log.Event{
		Timestamp:  time.Now(),
		ClientID:   m.clientID,
		Op:         op,
		Key:        key,
		Found:      found,
		Attributes: attrs,
		Elapsed:    time.Since(started),
	}
	if err != nil {
		event.Error = err.Error()
	}
	m.trace.Log(event)
}

func (m *Memory) GetItem(ctx context.Context, key string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		m.logger.Debug("get item", "key", key, "found", false)
		m.traceOp(log.OpGet, key, started, false, 0, ErrNotFound)
		return nil, ErrNotFound
	}
	out, err := cloneItem(item)
	if err != nil {
		return nil, fmt.Errorf("failed to copy item %q: %w", key, err)
	}
	m.logger.Debug("get item", "key", key, "found", true, "attributes", len(out))
	m.traceOp(log.OpGet, key, started, true, len(out), nil)
	return out, nil
}

func (m *Memory) PutItem(ctx context.Context, key string, item Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	started := time.Now()

	stored, err := cloneItem(item)
	if err != nil {
		return fmt.Errorf("failed to copy item %q: %w", key, err)
	}

	m.mu.Lock()
	m.items[key] = stored
	m.mu.Unlock()

	m.logger.Debug("put item", "key", key, "attributes", len(stored))
	m.traceOp(log.OpPut, key, started, false, len(stored), nil)
	return nil
}

func (m *Memory) DeleteItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	started := time.Now()

	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()

	m.logger.Debug("delete item", "key", key)
	m.traceOp(log.OpDelete, key, started, false, 0, nil)
	return nil
}

// Len reports the number of stored items.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// cloneItem deep-copies an item through the wire framing codec.
func cloneItem(item Item) (Item, error) {
	out := make(Item, len(item))
	for name, val := range item {
		copied, err := wire.Clone(val)
		if err != nil {
			return nil, err
		}
		out[name] = copied
	}
	return out, nil
}
