package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tipsplit/internal/models"
)

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps receipts in memory. Safe for concurrent access.
type MemoryStore struct {
	mu       sync.RWMutex
	receipts []*models.Receipt
	byID     map[string]*models.Receipt
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory receipt store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]*models.Receipt),
		now:  time.Now,
	}
}

// AddReceipt stores a copy of the receipt, assigning an ID and timestamp when
// unset. The caller's receipt is left untouched when the ID is already taken.
func (s *MemoryStore) AddReceipt(ctx context.Context, receipt *models.Receipt) error {
	id := receipt.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := receipt.CreatedAt
	if createdAt == 0 {
		createdAt = s.now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; exists {
		return fmt.Errorf("receipt already exists: %s", id)
	}
	receipt.ID = id
	receipt.CreatedAt = createdAt
	stored := *receipt
	s.receipts = append(s.receipts, &stored)
	s.byID[stored.ID] = &stored

	slog.Debug("Receipt stored", "receipt_id", stored.ID, "count", len(s.receipts))
	return nil
}

// GetReceipt retrieves a copy of a receipt by ID.
func (s *MemoryStore) GetReceipt(ctx context.Context, id string) (*models.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	out := *r
	return &out, nil
}

// ListReceipts returns copies of all receipts, newest first.
func (s *MemoryStore) ListReceipts(ctx context.Context) ([]*models.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Receipt, 0, len(s.receipts))
	for i := len(s.receipts) - 1; i >= 0; i-- {
		r := *s.receipts[i]
		out = append(out, &r)
	}
	return out, nil
}

// Close drops all receipts.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receipts = nil
	s.byID = make(map[string]*models.Receipt)
	return nil
}
