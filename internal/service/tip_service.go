package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
)

// Recorder receives the outcome of every commit.
type Recorder interface {
	RecordCommit(receipt models.Receipt)
	RecordParseError(billText string, err error)
}

// TipService turns confirmed bills into receipts in the session history.
type TipService struct {
	store    storage.Store
	recorder Recorder
}

// NewTipService creates a TipService with the given storage backend.
// recorder may be nil.
func NewTipService(store storage.Store, recorder Recorder) *TipService {
	return &TipService{store: store, recorder: recorder}
}

// Commit computes the split for state and stores the resulting receipt.
// The bill is parsed exactly as the form parses it; the receipt keeps the
// trimmed text. Bills that do not parse are reported and returned as an
// error wrapping calculator.ErrInvalidBill; nothing is stored.
func (s *TipService) Commit(ctx context.Context, state form.State) (*models.Receipt, error) {
	billText := strings.TrimSpace(state.BillText)
	sum, err := state.Summarize()
	if err != nil {
		if s.recorder != nil {
			s.recorder.RecordParseError(billText, err)
		}
		return nil, err
	}

	slog.Debug("Committing bill",
		"bill", sum.Bill,
		"tip_percentage", sum.TipPercentage,
		"split_by", sum.SplitBy,
	)

	receipt := &models.Receipt{
		BillText:       billText,
		Bill:           sum.Bill,
		TipPercentage:  sum.TipPercentage,
		SplitBy:        sum.SplitBy,
		TotalTip:       sum.TotalTip,
		TotalPerPerson: sum.TotalPerPerson,
	}
	if err := s.store.AddReceipt(ctx, receipt); err != nil {
		slog.Error("Commit failed", "error", err)
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordCommit(*receipt)
	}
	return receipt, nil
}

// Recent returns up to limit receipts, newest first. A non-positive limit
// returns them all.
func (s *TipService) Recent(ctx context.Context, limit int) ([]*models.Receipt, error) {
	receipts, err := s.store.ListReceipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	if limit > 0 && len(receipts) > limit {
		receipts = receipts[:limit]
	}
	return receipts, nil
}
