// Package storage provides abstractions for the session's receipt history.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tipsplit/internal/models"
)

// ErrNotFound is returned when a receipt ID is unknown to the store.
var ErrNotFound = errors.New("receipt not found")

// Store defines the interface for receipt history operations.
// Implementations hold receipts for the lifetime of the process only.
type Store interface {
	// AddReceipt records a confirmed bill.
	// The receipt.ID and receipt.CreatedAt fields are populated when empty.
	AddReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt by its ID.
	// Returns ErrNotFound if the receipt does not exist.
	GetReceipt(ctx context.Context, id string) (*models.Receipt, error)

	// ListReceipts returns all receipts, newest first.
	ListReceipts(ctx context.Context) ([]*models.Receipt, error)

	// Close releases any resources held by the store.
	Close() error
}
